package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

type Address struct {
	Metropolitan string `bson:"metropolitan" json:"metropolitan"`
	City         string `bson:"city" json:"city"`
	District     string `bson:"district" json:"district"`
	Detail       string `bson:"detail,omitempty" json:"detail,omitempty"`
}

type RestaurantCategory struct {
	MateType string `bson:"mateType" json:"mateType"`
	FoodType string `bson:"foodType" json:"foodType"`
}

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude] —
// geographic convention, reversed from the usual (lat, lon) reading order.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

type Restaurant struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name     string             `bson:"name" json:"name"`
	Address  Address            `bson:"address" json:"address"`
	Category RestaurantCategory `bson:"category" json:"category"`
	Location GeoPoint           `bson:"location" json:"location"`
	Views    int64              `bson:"views" json:"views"`
	Images   []string           `bson:"images,omitempty" json:"images,omitempty"`
}

// NearbyRestaurant is a restaurant returned by a proximity query, with the
// computed distance (meters) attached by the store.
type NearbyRestaurant struct {
	Restaurant `bson:",inline"`
	Distance   float64 `bson:"distance" json:"distance"`
}
