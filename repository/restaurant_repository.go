// repository/restaurant_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/chloeyeo/wswg-backend/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RestaurantSearch carries the filter parameters of a category-scoped
// restaurant search. Zero-valued optional fields add no constraint.
type RestaurantSearch struct {
	MateType     string
	FoodType     string
	Metropolitan string
	City         string
	Search       string
	Limit        int64 // 0 = unbounded
	Skip         int64
}

// NearbyQuery carries the parameters of a proximity search around a point.
type NearbyQuery struct {
	Longitude   float64
	Latitude    float64
	MaxDistance float64 // meters, strict cutoff
	MateType    string  // empty = no category constraint

	Metropolitan string
	City         string
	District     string

	Limit int64 // 0 = all matches
}

type RestaurantRepository interface {
	Search(ctx context.Context, q RestaurantSearch) ([]entity.Restaurant, error)
	Count(ctx context.Context, q RestaurantSearch) (int64, error)
	// FindOneInMateType scopes the lookup by id AND category label; a
	// restaurant outside the category yields (nil, nil), same as a missing
	// one. Found-nothing is not an error on this path.
	FindOneInMateType(ctx context.Context, id primitive.ObjectID, mateType string) (*entity.Restaurant, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Restaurant, error)
	// IncrementViews bumps the view counter by one atomically and returns
	// the updated document, or ErrNotFound.
	IncrementViews(ctx context.Context, id primitive.ObjectID) (*entity.Restaurant, error)
	FindNearby(ctx context.Context, q NearbyQuery) ([]entity.NearbyRestaurant, error)
}

type restaurantRepository struct {
	coll *mongo.Collection
}

func NewRestaurantRepository(db *mongo.Database) RestaurantRepository {
	return &restaurantRepository{coll: db.Collection("restaurants")}
}

// searchFilter translates search parameters into the restaurant filter
// document. MateType is always present; everything else only when supplied.
func searchFilter(q RestaurantSearch) bson.M {
	filter := bson.M{"category.mateType": q.MateType}
	if q.FoodType != "" {
		filter["category.foodType"] = q.FoodType
	}
	if q.Metropolitan != "" {
		filter["address.metropolitan"] = q.Metropolitan
	}
	if q.City != "" {
		filter["address.city"] = q.City
	}
	if q.Search != "" {
		filter["name"] = bson.M{"$regex": q.Search, "$options": "i"}
	}
	return filter
}

// nearbyPipeline builds the $geoNear aggregation for a proximity query.
// Coordinates go in as [longitude, latitude]. The extra distance match
// makes the radius cutoff strict; $geoNear's own maxDistance is inclusive.
func nearbyPipeline(q NearbyQuery) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$geoNear", Value: bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": bson.A{q.Longitude, q.Latitude},
			},
			"distanceField": "distance",
			"maxDistance":   q.MaxDistance,
			"spherical":     true,
		}}},
		bson.D{{Key: "$match", Value: bson.M{"distance": bson.M{"$lt": q.MaxDistance}}}},
	}

	match := bson.M{}
	if q.MateType != "" {
		match["category.mateType"] = q.MateType
	}
	if q.Metropolitan != "" {
		match["address.metropolitan"] = q.Metropolitan
	}
	if q.City != "" {
		match["address.city"] = q.City
	}
	if q.District != "" {
		match["address.district"] = q.District
	}
	if len(match) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}

	if q.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: q.Limit}})
	}
	return pipeline
}

func (r *restaurantRepository) Search(ctx context.Context, q RestaurantSearch) ([]entity.Restaurant, error) {
	opts := options.Find().SetLimit(q.Limit).SetSkip(q.Skip)
	cur, err := r.coll.Find(ctx, searchFilter(q), opts)
	if err != nil {
		return nil, err
	}
	restaurants := []entity.Restaurant{}
	if err := cur.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) Count(ctx context.Context, q RestaurantSearch) (int64, error) {
	return r.coll.CountDocuments(ctx, searchFilter(q))
}

func (r *restaurantRepository) FindOneInMateType(ctx context.Context, id primitive.ObjectID, mateType string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.coll.FindOne(ctx, bson.M{"_id": id, "category.mateType": mateType}).Decode(&rest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *restaurantRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *restaurantRepository) IncrementViews(ctx context.Context, id primitive.ObjectID) (*entity.Restaurant, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var rest entity.Restaurant
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		opts,
	).Decode(&rest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *restaurantRepository) FindNearby(ctx context.Context, q NearbyQuery) ([]entity.NearbyRestaurant, error) {
	cur, err := r.coll.Aggregate(ctx, nearbyPipeline(q))
	if err != nil {
		return nil, err
	}
	restaurants := []entity.NearbyRestaurant{}
	if err := cur.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}
