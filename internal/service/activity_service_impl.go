package service

import (
	"context"
	"fmt"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
)

// MetaTables exposes the catalog's display metadata.
type MetaTables interface {
	Emotion(e domain.Emotion) domain.Meta
	Location(l domain.Location) domain.Meta
	Category(c domain.Category) domain.Meta
}

type activityService struct {
	catalog Catalog
}

func NewActivityService(catalog Catalog) ActivityService {
	return &activityService{catalog: catalog}
}

func (s *activityService) Get(ctx context.Context, id string) (*domain.Activity, error) {
	a, ok := s.catalog.ByID(id)
	if !ok {
		return nil, fmt.Errorf("activity %q: %w", id, ErrActivityNotFound)
	}
	return &a, nil
}

func (s *activityService) List(ctx context.Context, f ActivityFilter) ([]domain.Activity, error) {
	var list []domain.Activity
	switch {
	case f.Emotion != "" && f.Location != "":
		list = s.catalog.ForContext(f.Emotion, f.Location)
	case f.Emotion != "" || f.Location != "":
		return nil, fmt.Errorf("emotion and location must be given together")
	default:
		list = s.catalog.All()
	}

	out := list[:0]
	for _, a := range list {
		if f.Category != "" && a.Category != f.Category {
			continue
		}
		if f.SOSOnly && !a.IsSOS {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *activityService) Meta() MetaTables { return s.catalog }
