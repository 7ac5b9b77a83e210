package service

import (
	"context"

	"github.com/VolkofAndrey/micro-rest-app/internal/contract"
	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
)

type RecommendService interface {
	Recommend(ctx context.Context, req contract.RecommendRequest) (*contract.RecommendResponse, error)
}

type CompletionService interface {
	Complete(ctx context.Context, req contract.CompletionRequest) (*contract.CompletionResponse, error)
}

type HistoryService interface {
	List(ctx context.Context, req contract.HistoryRequest) (*contract.HistoryResponse, error)
	Remove(ctx context.Context, id string) (bool, error)
}

type FavoriteService interface {
	Toggle(ctx context.Context, activityID string) (bool, error)
	List(ctx context.Context) ([]domain.Activity, error)
}

type ProfileService interface {
	Get(ctx context.Context) (*contract.ProfileResponse, error)
}

type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	SetTheme(ctx context.Context, dark bool) error
	SetNotifications(ctx context.Context, enabled bool) error
	MarkOnboarded(ctx context.Context) error
}

// ActivityFilter narrows a catalog listing. Emotion and Location only apply
// together.
type ActivityFilter struct {
	Category domain.Category
	Emotion  domain.Emotion
	Location domain.Location
	SOSOnly  bool
}

type ActivityService interface {
	Get(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context, filter ActivityFilter) ([]domain.Activity, error)
	Meta() MetaTables
}
