// services/restaurant_service.go
package services

import (
	"context"

	"github.com/chloeyeo/wswg-backend/entity"
	"github.com/chloeyeo/wswg-backend/repository"
	"github.com/chloeyeo/wswg-backend/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RestaurantService struct {
	Repo repository.RestaurantRepository
}

func NewRestaurantService(repo repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

// Search runs the filtered page query plus the total count over the same
// filter. The two queries are not transactionally consistent with each
// other; the count may drift under concurrent writes.
func (s *RestaurantService) Search(ctx context.Context, q repository.RestaurantSearch) ([]entity.Restaurant, bool, error) {
	restaurants, err := s.Repo.Search(ctx, q)
	if err != nil {
		return nil, false, err
	}
	total, err := s.Repo.Count(ctx, q)
	if err != nil {
		return nil, false, err
	}
	return restaurants, utils.HasMore(q.Skip, q.Limit, total), nil
}

// Get fetches one restaurant scoped by id and category label. A nil result
// with nil error means nothing matched.
func (s *RestaurantService) Get(ctx context.Context, id primitive.ObjectID, mateType string) (*entity.Restaurant, error) {
	return s.Repo.FindOneInMateType(ctx, id, mateType)
}

// IncrementViews bumps the view counter by id only, with no category
// scoping. Returns repository.ErrNotFound for a missing restaurant.
func (s *RestaurantService) IncrementViews(ctx context.Context, id primitive.ObjectID) (*entity.Restaurant, error) {
	return s.Repo.IncrementViews(ctx, id)
}

// Nearby returns restaurants within the query radius, nearest first, with
// the computed distance attached.
func (s *RestaurantService) Nearby(ctx context.Context, q repository.NearbyQuery) ([]entity.NearbyRestaurant, error) {
	return s.Repo.FindNearby(ctx, q)
}
