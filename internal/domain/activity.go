package domain

import "time"

// Activity is an immutable catalog entry. The catalog owns every Activity;
// callers receive copies.
type Activity struct {
	ID              string
	Title           string
	Emoji           string
	Steps           []string
	DurationSeconds int
	Science         string
	Category        Category
	Tags            ActivityTags
	IsSOS           bool
	AudioURL        string
}

type ActivityTags struct {
	Emotions  []Emotion
	Locations []Location
}

// Duration returns the activity length as a time.Duration.
func (a Activity) Duration() time.Duration {
	return time.Duration(a.DurationSeconds) * time.Second
}

// Fits reports whether the activity is tagged for both the emotion and the location.
func (a Activity) Fits(e Emotion, l Location) bool {
	return a.HasEmotion(e) && a.HasLocation(l)
}

func (a Activity) HasEmotion(e Emotion) bool {
	for _, v := range a.Tags.Emotions {
		if v == e {
			return true
		}
	}
	return false
}

func (a Activity) HasLocation(l Location) bool {
	for _, v := range a.Tags.Locations {
		if v == l {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so catalog slices are never shared with callers.
func (a Activity) Clone() Activity {
	c := a
	c.Steps = append([]string(nil), a.Steps...)
	c.Tags.Emotions = append([]Emotion(nil), a.Tags.Emotions...)
	c.Tags.Locations = append([]Location(nil), a.Tags.Locations...)
	return c
}

// Meta is the display metadata for an emotion, location or category.
type Meta struct {
	Label string
	Emoji string
	// Reaction is only set for emotions.
	Reaction string
}
