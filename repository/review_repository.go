// repository/review_repository.go
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

type ReviewRepository interface {
	Insert(ctx context.Context, review *entity.Review) error
	// FindByRestaurant lists a restaurant's reviews newest-first.
	FindByRestaurant(ctx context.Context, restID primitive.ObjectID, limit, skip int64) ([]entity.Review, error)
	// CountAll counts every review in the collection, not just the ones of
	// a single restaurant. The listing endpoint's hasMore is defined
	// against this global total.
	CountAll(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type reviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) ReviewRepository {
	return &reviewRepository{coll: db.Collection("reviews")}
}

func (r *reviewRepository) Insert(ctx context.Context, review *entity.Review) error {
	res, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("failed to convert inserted id to primitive.ObjectID")
	}
	review.ID = id
	return nil
}

func (r *reviewRepository) FindByRestaurant(ctx context.Context, restID primitive.ObjectID, limit, skip int64) ([]entity.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetSkip(skip)

	cur, err := r.coll.Find(ctx, bson.M{"restaurant": restID}, opts)
	if err != nil {
		return nil, err
	}
	reviews := []entity.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) CountAll(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *reviewRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Review, error) {
	var review entity.Review
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
