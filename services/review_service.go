// services/review_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chloeyeo/wswg-backend/entity"
	"github.com/chloeyeo/wswg-backend/repository"
	"github.com/chloeyeo/wswg-backend/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewService struct {
	Reviews     repository.ReviewRepository
	Users       repository.UserRepository
	Restaurants repository.RestaurantRepository
}

func NewReviewService(reviews repository.ReviewRepository, users repository.UserRepository, restaurants repository.RestaurantRepository) *ReviewService {
	return &ReviewService{Reviews: reviews, Users: users, Restaurants: restaurants}
}

type CreateReviewInput struct {
	Content string
	Rating  int
	Images  []string
}

// Create resolves both references before writing; a missing user or
// restaurant fails the request instead of persisting a dangling reference.
// CreatedAt is always assigned here, never taken from the client.
func (s *ReviewService) Create(ctx context.Context, userID, restID primitive.ObjectID, in CreateReviewInput) (*entity.ReviewWithUser, error) {
	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", userID.Hex(), err)
	}
	if _, err := s.Restaurants.FindByID(ctx, restID); err != nil {
		return nil, fmt.Errorf("restaurant %s: %w", restID.Hex(), err)
	}

	review := &entity.Review{
		Content:    in.Content,
		Rating:     in.Rating,
		Images:     in.Images,
		User:       user.ID,
		Restaurant: restID,
		CreatedAt:  time.Now(),
	}
	if err := s.Reviews.Insert(ctx, review); err != nil {
		return nil, err
	}
	return &entity.ReviewWithUser{Review: *review, UserName: user.Name}, nil
}

// List returns a restaurant's reviews newest-first with user names joined.
// hasMore is computed against the global review count, not the filtered
// one — long-standing API behavior clients already rely on.
func (s *ReviewService) List(ctx context.Context, restID primitive.ObjectID, limit, skip int64) ([]entity.ReviewWithUser, bool, error) {
	reviews, err := s.Reviews.FindByRestaurant(ctx, restID, limit, skip)
	if err != nil {
		return nil, false, err
	}
	total, err := s.Reviews.CountAll(ctx)
	if err != nil {
		return nil, false, err
	}

	ids := make([]primitive.ObjectID, 0, len(reviews))
	for _, rv := range reviews {
		ids = append(ids, rv.User)
	}
	names, err := s.Users.FindNamesByIDs(ctx, ids)
	if err != nil {
		return nil, false, err
	}

	result := make([]entity.ReviewWithUser, 0, len(reviews))
	for _, rv := range reviews {
		result = append(result, entity.ReviewWithUser{Review: rv, UserName: names[rv.User]})
	}
	return result, utils.HasMore(skip, limit, total), nil
}

// Get fetches one review with the user name joined. A review whose user
// reference no longer resolves keeps an empty name rather than failing.
func (s *ReviewService) Get(ctx context.Context, id primitive.ObjectID) (*entity.ReviewWithUser, error) {
	review, err := s.Reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := &entity.ReviewWithUser{Review: *review}
	user, err := s.Users.FindByID(ctx, review.User)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if user != nil {
		result.UserName = user.Name
	}
	return result, nil
}

func (s *ReviewService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.Reviews.Delete(ctx, id)
}
