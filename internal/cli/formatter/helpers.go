package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Labels resolves display metadata for enum values. The catalog satisfies it.
type Labels interface {
	Emotion(e domain.Emotion) domain.Meta
	Location(l domain.Location) domain.Meta
	Category(c domain.Category) domain.Meta
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return boxStyle.Render(content)
	}
	return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// FormatDuration renders whole seconds as "45s", "2m" or "1m 30s".
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "0s"
	}
	m, s := seconds/60, seconds%60
	switch {
	case m > 0 && s > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	case m > 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// HumanTimestamp describes t relative to now: "Just now", "5m ago",
// "Today 14:05", "Yesterday 09:30" or "Mar 3, 2026".
func HumanTimestamp(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff >= 0 && diff < time.Minute:
		return "Just now"
	case diff >= 0 && diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	}

	day := domain.DayOf(t, now.Location())
	today := domain.DayOf(now, now.Location())
	switch day {
	case today:
		return "Today " + t.In(now.Location()).Format("15:04")
	case today.AddDays(-1):
		return "Yesterday " + t.In(now.Location()).Format("15:04")
	}
	return t.In(now.Location()).Format("Jan 2, 2006")
}

// ContextLabel renders a recorded emotion/location pair, e.g. "Anxious · Home".
// The mode sentinels print as the mode name.
func ContextLabel(labels Labels, c domain.CompletionContext) string {
	switch {
	case c.Emotion == domain.TagSOS:
		return "SOS"
	case c.Emotion == domain.TagQuick:
		return "Quick"
	}
	return labels.Emotion(domain.Emotion(c.Emotion)).Label + " · " + labels.Location(domain.Location(c.Location)).Label
}

// ActivityTitle renders "emoji Title", dropping the emoji when unset.
func ActivityTitle(a domain.Activity) string {
	if a.Emoji == "" {
		return a.Title
	}
	return a.Emoji + " " + a.Title
}

// TruncID shortens long ids to their last 8 characters. UUIDv7 ids share a
// timestamp prefix, so the tail is what tells them apart.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}
