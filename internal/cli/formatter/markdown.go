package formatter

import (
	"fmt"
	"strings"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/charmbracelet/glamour"
)

// MarkdownOptions picks the glamour style for activity detail pages.
type MarkdownOptions struct {
	Dark bool
	// Plain disables colors, for pipes and tests.
	Plain bool
	Width int
}

func (o MarkdownOptions) style() string {
	switch {
	case o.Plain:
		return "notty"
	case o.Dark:
		return "dark"
	default:
		return "light"
	}
}

// ActivityMarkdown builds the steps and science of an activity as markdown.
func ActivityMarkdown(a domain.Activity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", ActivityTitle(a))
	if len(a.Steps) > 0 {
		b.WriteString("### Steps\n\n")
		for i, step := range a.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
		b.WriteString("\n")
	}
	if a.Science != "" {
		fmt.Fprintf(&b, "### Why it works\n\n> %s\n", a.Science)
	}
	return b.String()
}

// RenderMarkdown renders md for the terminal.
func RenderMarkdown(md string, opts MarkdownOptions) (string, error) {
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(opts.style()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
