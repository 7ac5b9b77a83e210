package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownEmotion  = errors.New("unknown emotion")
	ErrUnknownLocation = errors.New("unknown location")
	ErrUnknownCategory = errors.New("unknown category")
)

type Emotion string

const (
	EmotionSad     Emotion = "SAD"
	EmotionAngry   Emotion = "ANGRY"
	EmotionAnxious Emotion = "ANXIOUS"
	EmotionBored   Emotion = "BORED"
	EmotionTired   Emotion = "TIRED"
	EmotionGood    Emotion = "GOOD"
)

// Emotions lists every emotion in display order.
var Emotions = []Emotion{EmotionSad, EmotionAngry, EmotionAnxious, EmotionBored, EmotionTired, EmotionGood}

type Location string

const (
	LocationHome      Location = "HOME"
	LocationWork      Location = "WORK"
	LocationTransport Location = "TRANSPORT"
	LocationPublic    Location = "PUBLIC"
	LocationNature    Location = "NATURE"
)

// Locations lists every location in display order.
var Locations = []Location{LocationHome, LocationWork, LocationTransport, LocationPublic, LocationNature}

type Category string

const (
	CategoryBreathing  Category = "BREATHING"
	CategoryVisual     Category = "VISUAL"
	CategoryMovement   Category = "MOVEMENT"
	CategoryFocus      Category = "FOCUS"
	CategoryMeditation Category = "MEDITATION"
	CategoryAudio      Category = "AUDIO"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryBreathing, CategoryVisual, CategoryMovement, CategoryFocus, CategoryMeditation, CategoryAudio}

// ContextTag is the emotion or location recorded on a history entry. Besides the
// concrete emotions and locations it may hold one of the mode sentinels.
type ContextTag string

const (
	TagSOS   ContextTag = "SOS"
	TagQuick ContextTag = "QUICK"
)

// AchievementMeasure names the quantity an achievement requirement is compared against.
type AchievementMeasure string

const (
	MeasureTotalCompleted AchievementMeasure = "TOTAL_COMPLETED"
	MeasureStreak         AchievementMeasure = "STREAK"
)

func (e Emotion) Valid() bool {
	for _, v := range Emotions {
		if v == e {
			return true
		}
	}
	return false
}

func (l Location) Valid() bool {
	for _, v := range Locations {
		if v == l {
			return true
		}
	}
	return false
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func (m AchievementMeasure) Valid() bool {
	return m == MeasureTotalCompleted || m == MeasureStreak
}

// ParseEmotion accepts any casing, e.g. "anxious".
func ParseEmotion(s string) (Emotion, error) {
	e := Emotion(strings.ToUpper(strings.TrimSpace(s)))
	if !e.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEmotion, s)
	}
	return e, nil
}

// ParseLocation accepts any casing, e.g. "home".
func ParseLocation(s string) (Location, error) {
	l := Location(strings.ToUpper(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocation, s)
	}
	return l, nil
}

// ParseCategory accepts any casing, e.g. "breathing".
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// IsMode reports whether the tag is one of the mode sentinels rather than a
// concrete emotion or location.
func (t ContextTag) IsMode() bool {
	return t == TagSOS || t == TagQuick
}

// ValidEmotionTag reports whether t may appear in a history entry's emotion slot.
func (t ContextTag) ValidEmotionTag() bool {
	return t.IsMode() || Emotion(t).Valid()
}

// ValidLocationTag reports whether t may appear in a history entry's location slot.
func (t ContextTag) ValidLocationTag() bool {
	return t.IsMode() || Location(t).Valid()
}
