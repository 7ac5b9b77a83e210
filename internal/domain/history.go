package domain

import "time"

// HistoryEntry records one completed activity. Entries are never mutated
// after creation; ActivityID may refer to an activity that no longer exists.
type HistoryEntry struct {
	ID         string     `json:"id"`
	ActivityID string     `json:"activityId"`
	Timestamp  int64      `json:"timestamp"`
	Emotion    ContextTag `json:"emotion"`
	Location   ContextTag `json:"location"`
}

// Time returns the completion time in the given location.
func (h HistoryEntry) Time(loc *time.Location) time.Time {
	return time.UnixMilli(h.Timestamp).In(loc)
}

// CompletionContext is the emotion/location pair recorded with a completion.
type CompletionContext struct {
	Emotion  ContextTag
	Location ContextTag
}

// GuidedContext is the context for an emotion × location recommendation.
func GuidedContext(e Emotion, l Location) CompletionContext {
	return CompletionContext{Emotion: ContextTag(e), Location: ContextTag(l)}
}

// SOSContext is recorded for completions started from the SOS path.
func SOSContext() CompletionContext {
	return CompletionContext{Emotion: TagSOS, Location: TagSOS}
}

// QuickContext is recorded for completions started from a category list.
func QuickContext() CompletionContext {
	return CompletionContext{Emotion: TagQuick, Location: TagQuick}
}
