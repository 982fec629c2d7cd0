package controllers_test

import (
	"context"
	"sort"

	"github.com/chloeyeo/wswg-backend/entity"
	"github.com/chloeyeo/wswg-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. Each counts store calls so tests can assert
// that rejected requests never touch the store.

type fakeRestaurantRepo struct {
	searchResult []entity.Restaurant
	total        int64
	byID         map[primitive.ObjectID]entity.Restaurant
	nearby       []entity.NearbyRestaurant

	calls      int
	lastSearch repository.RestaurantSearch
	lastNearby repository.NearbyQuery
}

func (f *fakeRestaurantRepo) Search(_ context.Context, q repository.RestaurantSearch) ([]entity.Restaurant, error) {
	f.calls++
	f.lastSearch = q
	return f.searchResult, nil
}

func (f *fakeRestaurantRepo) Count(_ context.Context, q repository.RestaurantSearch) (int64, error) {
	f.calls++
	return f.total, nil
}

func (f *fakeRestaurantRepo) FindOneInMateType(_ context.Context, id primitive.ObjectID, mateType string) (*entity.Restaurant, error) {
	f.calls++
	if r, ok := f.byID[id]; ok && r.Category.MateType == mateType {
		return &r, nil
	}
	return nil, nil
}

func (f *fakeRestaurantRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Restaurant, error) {
	f.calls++
	if r, ok := f.byID[id]; ok {
		return &r, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRestaurantRepo) IncrementViews(_ context.Context, id primitive.ObjectID) (*entity.Restaurant, error) {
	f.calls++
	r, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.Views++
	f.byID[id] = r
	return &r, nil
}

func (f *fakeRestaurantRepo) FindNearby(_ context.Context, q repository.NearbyQuery) ([]entity.NearbyRestaurant, error) {
	f.calls++
	f.lastNearby = q
	return f.nearby, nil
}

type fakeReviewRepo struct {
	reviews  []entity.Review
	countAll int64 // overrides len(reviews) when set

	calls               int
	lastLimit, lastSkip int64
}

func (f *fakeReviewRepo) Insert(_ context.Context, review *entity.Review) error {
	f.calls++
	review.ID = primitive.NewObjectID()
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviewRepo) FindByRestaurant(_ context.Context, restID primitive.ObjectID, limit, skip int64) ([]entity.Review, error) {
	f.calls++
	f.lastLimit, f.lastSkip = limit, skip

	matched := []entity.Review{}
	for _, rv := range f.reviews {
		if rv.Restaurant == restID {
			matched = append(matched, rv)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if skip >= int64(len(matched)) {
		return []entity.Review{}, nil
	}
	matched = matched[skip:]
	if limit > 0 && limit < int64(len(matched)) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeReviewRepo) CountAll(_ context.Context) (int64, error) {
	f.calls++
	if f.countAll > 0 {
		return f.countAll, nil
	}
	return int64(len(f.reviews)), nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Review, error) {
	f.calls++
	for _, rv := range f.reviews {
		if rv.ID == id {
			found := rv
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeReviewRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	f.calls++
	for i, rv := range f.reviews {
		if rv.ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]entity.User
	calls int
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	f.calls++
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindNamesByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	f.calls++
	names := map[primitive.ObjectID]string{}
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			names[id] = u.Name
		}
	}
	return names, nil
}
