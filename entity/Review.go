package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Content string             `bson:"content" json:"content"`
	Rating  int                `bson:"rating" json:"rating"`
	Images  []string           `bson:"images,omitempty" json:"images,omitempty"`

	// References into the users / restaurants collections.
	User       primitive.ObjectID `bson:"user" json:"user"`
	Restaurant primitive.ObjectID `bson:"restaurant" json:"restaurant"`

	// Assigned by the server at creation time; client values are ignored.
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ReviewWithUser is the read-side shape of a review with the referenced
// user's name resolved. Only the name is ever exposed.
type ReviewWithUser struct {
	Review   `bson:",inline"`
	UserName string `bson:"-" json:"userName"`
}
