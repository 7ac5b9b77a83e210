package formatter

import (
	"fmt"
	"strings"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
)

var activityColumns = []Column{
	{Title: "ID"},
	{Title: "ACTIVITY"},
	{Title: "CATEGORY"},
	{Title: "LENGTH", Right: true},
	{Title: "FLAGS"},
}

// FormatActivityList renders catalog activities as a table. isFavorite may be nil.
func FormatActivityList(list []domain.Activity, labels Labels, isFavorite func(id string) bool) string {
	if len(list) == 0 {
		return Dim("No activities match.") + "\n"
	}

	rows := make([][]string, 0, len(list))
	for _, a := range list {
		var marks []string
		if a.IsSOS {
			marks = append(marks, StyleRed.Render("SOS"))
		}
		if isFavorite != nil && isFavorite(a.ID) {
			marks = append(marks, StyleYellow.Render("★"))
		}
		rows = append(rows, []string{
			Dim(a.ID),
			a.Title,
			CategoryStyle(a.Category).Render(labels.Category(a.Category).Label),
			FormatDuration(a.DurationSeconds),
			strings.Join(marks, " "),
		})
	}
	return RenderTable(activityColumns, rows)
}

// FormatActivityDetail renders the header facts of an activity followed by its
// markdown body.
func FormatActivityDetail(a domain.Activity, labels Labels, favorite bool, md MarkdownOptions) (string, error) {
	var b strings.Builder
	b.WriteString(Header(a.Title))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %s\n", Dim("Category:"), CategoryStyle(a.Category).Render(labels.Category(a.Category).Label))
	fmt.Fprintf(&b, "%s %s\n", Dim("Length:  "), FormatDuration(a.DurationSeconds))
	if len(a.Tags.Emotions) > 0 {
		names := make([]string, 0, len(a.Tags.Emotions))
		for _, e := range a.Tags.Emotions {
			names = append(names, labels.Emotion(e).Label)
		}
		fmt.Fprintf(&b, "%s %s\n", Dim("Helps:   "), strings.Join(names, ", "))
	}
	if len(a.Tags.Locations) > 0 {
		names := make([]string, 0, len(a.Tags.Locations))
		for _, l := range a.Tags.Locations {
			names = append(names, labels.Location(l).Label)
		}
		fmt.Fprintf(&b, "%s %s\n", Dim("Where:   "), strings.Join(names, ", "))
	}
	if a.AudioURL != "" {
		fmt.Fprintf(&b, "%s %s\n", Dim("Audio:   "), StyleBlue.Render(a.AudioURL))
	}
	if favorite {
		b.WriteString(StyleYellow.Render("★ Favorite") + "\n")
	}

	body, err := RenderMarkdown(ActivityMarkdown(a), md)
	if err != nil {
		return "", err
	}
	b.WriteString(body)
	return b.String(), nil
}
