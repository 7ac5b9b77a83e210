// Package catalog holds the read-only set of activities, achievements and
// daily challenges, indexed for the lookups the engine needs.
package catalog

import (
	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
)

// Catalog is immutable after construction and safe for concurrent reads.
// Every accessor returns copies.
type Catalog struct {
	version      int
	activities   []domain.Activity
	byID         map[string]int
	byCategory   map[domain.Category][]int
	sos          []int
	achievements []domain.Achievement
	challenges   []domain.DailyChallenge
	emotions     map[domain.Emotion]domain.Meta
	locations    map[domain.Location]domain.Meta
	categories   map[domain.Category]domain.Meta
}

// New converts a validated schema into a Catalog. Call ValidateSchema first.
func New(s *Schema) *Catalog {
	c := &Catalog{
		version:    s.Version,
		byID:       make(map[string]int, len(s.Activities)),
		byCategory: make(map[domain.Category][]int),
		emotions:   make(map[domain.Emotion]domain.Meta, len(s.Emotions)),
		locations:  make(map[domain.Location]domain.Meta, len(s.Locations)),
		categories: make(map[domain.Category]domain.Meta, len(s.Categories)),
	}

	for _, a := range s.Activities {
		act := domain.Activity{
			ID:              a.ID,
			Title:           a.Title,
			Emoji:           a.Emoji,
			Steps:           append([]string(nil), a.Steps...),
			DurationSeconds: a.DurationSeconds,
			Science:         a.Science,
			Category:        domain.Category(a.Category),
			IsSOS:           a.SOS,
			AudioURL:        a.AudioURL,
		}
		for _, e := range a.Emotions {
			act.Tags.Emotions = append(act.Tags.Emotions, domain.Emotion(e))
		}
		for _, l := range a.Locations {
			act.Tags.Locations = append(act.Tags.Locations, domain.Location(l))
		}

		idx := len(c.activities)
		c.activities = append(c.activities, act)
		c.byID[act.ID] = idx
		c.byCategory[act.Category] = append(c.byCategory[act.Category], idx)
		if act.IsSOS {
			c.sos = append(c.sos, idx)
		}
	}

	for _, a := range s.Achievements {
		c.achievements = append(c.achievements, domain.Achievement{
			ID:          a.ID,
			Emoji:       a.Emoji,
			Title:       a.Title,
			Description: a.Description,
			Measure:     domain.AchievementMeasure(a.Measure),
			Requirement: a.Requirement,
		})
	}
	for _, ch := range s.Challenges {
		c.challenges = append(c.challenges, domain.DailyChallenge{
			Emoji:    ch.Emoji,
			Text:     ch.Text,
			Count:    ch.Count,
			Category: domain.Category(ch.Category),
		})
	}

	for k, m := range s.Emotions {
		c.emotions[domain.Emotion(k)] = toMeta(m)
	}
	for k, m := range s.Locations {
		c.locations[domain.Location(k)] = toMeta(m)
	}
	for k, m := range s.Categories {
		c.categories[domain.Category(k)] = toMeta(m)
	}

	return c
}

func toMeta(m MetaSchema) domain.Meta {
	return domain.Meta{Label: m.Label, Emoji: m.Emoji, Reaction: m.Reaction}
}

func (c *Catalog) Version() int { return c.version }

func (c *Catalog) Len() int { return len(c.activities) }

// ByID returns the activity with the given id. The boolean is false when the
// id is unknown, e.g. a history entry for an activity removed in a later
// catalog version.
func (c *Catalog) ByID(id string) (domain.Activity, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Activity{}, false
	}
	return c.activities[idx].Clone(), true
}

// All returns every activity in catalog order.
func (c *Catalog) All() []domain.Activity {
	out := make([]domain.Activity, 0, len(c.activities))
	for _, a := range c.activities {
		out = append(out, a.Clone())
	}
	return out
}

// ForContext returns activities tagged for both the emotion and the location.
func (c *Catalog) ForContext(e domain.Emotion, l domain.Location) []domain.Activity {
	var out []domain.Activity
	for _, a := range c.activities {
		if a.Fits(e, l) {
			out = append(out, a.Clone())
		}
	}
	return out
}

func (c *Catalog) ByCategory(cat domain.Category) []domain.Activity {
	return c.pick(c.byCategory[cat])
}

// SOS returns every activity flagged for the SOS fast path.
func (c *Catalog) SOS() []domain.Activity {
	return c.pick(c.sos)
}

func (c *Catalog) pick(idxs []int) []domain.Activity {
	out := make([]domain.Activity, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, c.activities[i].Clone())
	}
	return out
}

func (c *Catalog) Achievements() []domain.Achievement {
	return append([]domain.Achievement(nil), c.achievements...)
}

func (c *Catalog) Challenges() []domain.DailyChallenge {
	return append([]domain.DailyChallenge(nil), c.challenges...)
}

// Emotion returns display metadata, falling back to the raw name.
func (c *Catalog) Emotion(e domain.Emotion) domain.Meta {
	if m, ok := c.emotions[e]; ok {
		return m
	}
	return domain.Meta{Label: string(e)}
}

func (c *Catalog) Location(l domain.Location) domain.Meta {
	if m, ok := c.locations[l]; ok {
		return m
	}
	return domain.Meta{Label: string(l)}
}

func (c *Catalog) Category(cat domain.Category) domain.Meta {
	if m, ok := c.categories[cat]; ok {
		return m
	}
	return domain.Meta{Label: string(cat)}
}
