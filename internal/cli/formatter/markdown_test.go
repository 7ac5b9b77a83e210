package formatter

import (
	"testing"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/VolkofAndrey/micro-rest-app/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityMarkdown(t *testing.T) {
	a := testutil.NewTestActivity("breath-1", testutil.WithTitle("Box Breathing"))
	md := ActivityMarkdown(a)

	assert.Contains(t, md, "## 🧪 Box Breathing\n")
	assert.Contains(t, md, "1. Sit comfortably\n2. Breathe\n")
	assert.Contains(t, md, "> Short pauses lower arousal.")
}

func TestActivityMarkdown_OmitsEmptySections(t *testing.T) {
	md := ActivityMarkdown(domain.Activity{Title: "Bare"})
	assert.Equal(t, "## Bare\n\n", md)
}

func TestMarkdownOptions_Style(t *testing.T) {
	assert.Equal(t, "notty", MarkdownOptions{Plain: true, Dark: true}.style())
	assert.Equal(t, "dark", MarkdownOptions{Dark: true}.style())
	assert.Equal(t, "light", MarkdownOptions{}.style())
}

func TestRenderMarkdown_Plain(t *testing.T) {
	out, err := RenderMarkdown("## Steps\n\n1. Inhale slowly\n", MarkdownOptions{Plain: true, Width: 60})
	require.NoError(t, err)
	assert.Contains(t, stripANSI(out), "Inhale slowly")
}

func TestRenderMarkdown_DarkStyle(t *testing.T) {
	out, err := RenderMarkdown("Exhale **longer** than you inhale.", MarkdownOptions{Dark: true})
	require.NoError(t, err)
	assert.Contains(t, stripANSI(out), "longer")
}

func TestFormatActivityDetail(t *testing.T) {
	a := testutil.NewTestActivity("walk-1",
		testutil.WithTitle("Mindful Walk"),
		testutil.WithCategory(domain.CategoryMovement),
		testutil.WithContexts([]domain.Emotion{domain.EmotionBored}, []domain.Location{domain.LocationNature}),
	)
	a.AudioURL = "https://example.com/walk.mp3"

	out, err := FormatActivityDetail(a, testLabels{}, true, MarkdownOptions{Plain: true})
	require.NoError(t, err)
	plain := stripANSI(out)

	assert.Contains(t, plain, "MINDFUL WALK")
	assert.Contains(t, plain, "Movement")
	assert.Contains(t, plain, "Helps:    Bored")
	assert.Contains(t, plain, "Where:    Nature")
	assert.Contains(t, plain, "walk.mp3")
	assert.Contains(t, plain, "★ Favorite")
	assert.Contains(t, plain, "Sit comfortably")
}
