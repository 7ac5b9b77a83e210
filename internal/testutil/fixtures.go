package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/google/uuid"
)

var testActivityCounter atomic.Int64

// Activity options
type ActivityOption func(*domain.Activity)

func WithCategory(c domain.Category) ActivityOption {
	return func(a *domain.Activity) {
		a.Category = c
	}
}

func WithTitle(title string) ActivityOption {
	return func(a *domain.Activity) {
		a.Title = title
	}
}

func WithDuration(seconds int) ActivityOption {
	return func(a *domain.Activity) {
		a.DurationSeconds = seconds
	}
}

func WithSOS() ActivityOption {
	return func(a *domain.Activity) {
		a.IsSOS = true
	}
}

// WithContexts replaces the activity's tags.
func WithContexts(emotions []domain.Emotion, locations []domain.Location) ActivityOption {
	return func(a *domain.Activity) {
		a.Tags = domain.ActivityTags{Emotions: emotions, Locations: locations}
	}
}

// NewTestActivity returns a valid activity tagged for every emotion and
// location. An empty id gets a generated one.
func NewTestActivity(id string, opts ...ActivityOption) domain.Activity {
	if id == "" {
		id = fmt.Sprintf("test-%d", testActivityCounter.Add(1))
	}
	a := domain.Activity{
		ID:              id,
		Title:           "Activity " + id,
		Emoji:           "🧪",
		Steps:           []string{"Sit comfortably", "Breathe"},
		DurationSeconds: 60,
		Science:         "Short pauses lower arousal.",
		Category:        domain.CategoryBreathing,
		Tags: domain.ActivityTags{
			Emotions:  append([]domain.Emotion(nil), domain.Emotions...),
			Locations: append([]domain.Location(nil), domain.Locations...),
		},
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// HistoryEntry options
type HistoryOption func(*domain.HistoryEntry)

func WithCompletedAt(t time.Time) HistoryOption {
	return func(h *domain.HistoryEntry) {
		h.Timestamp = t.UnixMilli()
	}
}

func WithContext(ctx domain.CompletionContext) HistoryOption {
	return func(h *domain.HistoryEntry) {
		h.Emotion = ctx.Emotion
		h.Location = ctx.Location
	}
}

func NewTestHistoryEntry(activityID string, opts ...HistoryOption) domain.HistoryEntry {
	h := domain.HistoryEntry{
		ID:         uuid.NewString(),
		ActivityID: activityID,
		Timestamp:  time.Now().UnixMilli(),
		Emotion:    domain.ContextTag(domain.EmotionAnxious),
		Location:   domain.ContextTag(domain.LocationWork),
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// Clock is a settable time source for stores and services under test.
type Clock struct {
	t atomic.Int64
}

func NewClock(t time.Time) *Clock {
	c := &Clock{}
	c.Set(t)
	return c
}

func (c *Clock) Now() time.Time {
	return time.Unix(0, c.t.Load())
}

func (c *Clock) Set(t time.Time) {
	c.t.Store(t.UnixNano())
}

func (c *Clock) Advance(d time.Duration) {
	c.t.Add(int64(d))
}
