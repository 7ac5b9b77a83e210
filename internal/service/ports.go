package service

import (
	"context"
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
)

// StateStore is the subset of the durable store the services use.
// *state.Store satisfies it.
type StateStore interface {
	AppendHistory(ctx context.Context, activityID string, emotion, location domain.ContextTag) (domain.HistoryEntry, error)
	RemoveHistory(ctx context.Context, id string) (bool, error)
	ToggleFavorite(ctx context.Context, activityID string) (bool, error)
	SetTheme(ctx context.Context, dark bool) error
	SetNotificationsEnabled(ctx context.Context, enabled bool) error
	MarkOnboarded(ctx context.Context) error

	History() []domain.HistoryEntry
	Favorites() []string
	IsFavorite(activityID string) bool
	RecentlyUsed() domain.RecencyQueue
	Streak() domain.StreakState
	Settings() domain.Settings
	Now() time.Time
	Location() *time.Location
}

// Catalog is the read-only activity catalog. *catalog.Catalog satisfies it.
type Catalog interface {
	ByID(id string) (domain.Activity, bool)
	All() []domain.Activity
	ForContext(e domain.Emotion, l domain.Location) []domain.Activity
	ByCategory(c domain.Category) []domain.Activity
	SOS() []domain.Activity
	Achievements() []domain.Achievement
	Challenges() []domain.DailyChallenge
	Emotion(e domain.Emotion) domain.Meta
	Location(l domain.Location) domain.Meta
	Category(c domain.Category) domain.Meta
}
