package catalog

import (
	"fmt"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
)

// ValidateSchema checks a decoded catalog before conversion and returns
// every problem found.
func ValidateSchema(s *Schema) []error {
	var errs []error

	if len(s.Activities) == 0 {
		errs = append(errs, fmt.Errorf("activities: at least one activity is required"))
	}
	errs = append(errs, validateMetaKeys("emotions", s.Emotions, func(k string) bool { return domain.Emotion(k).Valid() })...)
	errs = append(errs, validateMetaKeys("locations", s.Locations, func(k string) bool { return domain.Location(k).Valid() })...)
	errs = append(errs, validateMetaKeys("categories", s.Categories, func(k string) bool { return domain.Category(k).Valid() })...)
	errs = append(errs, validateActivities(s.Activities)...)
	errs = append(errs, validateAchievements(s.Achievements)...)
	errs = append(errs, validateChallenges(s.Challenges)...)

	return errs
}

func validateMetaKeys(section string, m map[string]MetaSchema, valid func(string) bool) []error {
	var errs []error
	for k := range m {
		if !valid(k) {
			errs = append(errs, fmt.Errorf("%s: unknown key %q", section, k))
		}
	}
	return errs
}

func validateActivities(activities []ActivitySchema) []error {
	var errs []error
	seen := make(map[string]bool, len(activities))

	for i, a := range activities {
		where := fmt.Sprintf("activities[%d]", i)
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", where))
		} else {
			where = fmt.Sprintf("activity %q", a.ID)
			if seen[a.ID] {
				errs = append(errs, fmt.Errorf("%s: duplicate id", where))
			}
			seen[a.ID] = true
		}
		if a.Title == "" {
			errs = append(errs, fmt.Errorf("%s: title is required", where))
		}
		if a.DurationSeconds <= 0 {
			errs = append(errs, fmt.Errorf("%s: duration_seconds must be > 0, got %d", where, a.DurationSeconds))
		}
		if !domain.Category(a.Category).Valid() {
			errs = append(errs, fmt.Errorf("%s: invalid category %q", where, a.Category))
		}
		if len(a.Steps) == 0 {
			errs = append(errs, fmt.Errorf("%s: at least one step is required", where))
		}
		for _, e := range a.Emotions {
			if !domain.Emotion(e).Valid() {
				errs = append(errs, fmt.Errorf("%s: invalid emotion %q", where, e))
			}
		}
		for _, l := range a.Locations {
			if !domain.Location(l).Valid() {
				errs = append(errs, fmt.Errorf("%s: invalid location %q", where, l))
			}
		}
	}
	return errs
}

func validateAchievements(achievements []AchievementSchema) []error {
	var errs []error
	seen := make(map[string]bool, len(achievements))

	for i, a := range achievements {
		where := fmt.Sprintf("achievements[%d]", i)
		if a.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", where))
		} else if seen[a.ID] {
			errs = append(errs, fmt.Errorf("achievement %q: duplicate id", a.ID))
		}
		seen[a.ID] = true
		if !domain.AchievementMeasure(a.Measure).Valid() {
			errs = append(errs, fmt.Errorf("%s: invalid measure %q", where, a.Measure))
		}
		if a.Requirement < 1 {
			errs = append(errs, fmt.Errorf("%s: requirement must be >= 1, got %d", where, a.Requirement))
		}
	}
	return errs
}

func validateChallenges(challenges []ChallengeSchema) []error {
	var errs []error
	for i, c := range challenges {
		where := fmt.Sprintf("challenges[%d]", i)
		if c.Text == "" {
			errs = append(errs, fmt.Errorf("%s: text is required", where))
		}
		if c.Count < 1 {
			errs = append(errs, fmt.Errorf("%s: count must be >= 1, got %d", where, c.Count))
		}
		if !domain.Category(c.Category).Valid() {
			errs = append(errs, fmt.Errorf("%s: invalid category %q", where, c.Category))
		}
	}
	return errs
}
