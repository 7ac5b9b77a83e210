package service

import (
	"context"
	"fmt"
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
)

type favoriteService struct {
	catalog  Catalog
	store    StateStore
	observer UseCaseObserver
}

func NewFavoriteService(catalog Catalog, store StateStore, observers ...UseCaseObserver) FavoriteService {
	return &favoriteService{
		catalog:  catalog,
		store:    store,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Toggle flips membership of activityID. Only catalog activities can be
// added; a stale favorite can still be removed.
func (s *favoriteService) Toggle(ctx context.Context, activityID string) (now bool, err error) {
	startedAt := time.Now()
	fields := map[string]any{"activity": activityID}
	defer observe(ctx, s.observer, "toggle-favorite", startedAt, fields, &err)

	if _, ok := s.catalog.ByID(activityID); !ok && !s.store.IsFavorite(activityID) {
		err = fmt.Errorf("favorite %q: %w", activityID, ErrActivityNotFound)
		return false, err
	}
	now, err = s.store.ToggleFavorite(ctx, activityID)
	fields["favorite"] = now
	return now, err
}

// List returns favorite activities in the order they were added, skipping
// ids the catalog no longer knows.
func (s *favoriteService) List(ctx context.Context) ([]domain.Activity, error) {
	ids := s.store.Favorites()
	out := make([]domain.Activity, 0, len(ids))
	for _, id := range ids {
		if a, ok := s.catalog.ByID(id); ok {
			out = append(out, a)
		}
	}
	return out, nil
}
