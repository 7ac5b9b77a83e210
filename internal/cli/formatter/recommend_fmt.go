package formatter

import (
	"fmt"
	"strings"

	"github.com/VolkofAndrey/micro-rest-app/internal/contract"
)

// FormatRecommendation renders a suggestion card, or the empty-candidates
// notice when nothing matched.
func FormatRecommendation(resp *contract.RecommendResponse, labels Labels) string {
	if !resp.Found() {
		return formatNoCandidates(resp.Request, labels)
	}

	var b strings.Builder
	if resp.Reaction != "" {
		b.WriteString(StyleYellow.Render(resp.Reaction))
		b.WriteString("\n\n")
	}

	a := resp.Activity
	var card strings.Builder
	title := Bold(ActivityTitle(a)) + "  " + StyleBlue.Render("("+FormatDuration(a.DurationSeconds)+")")
	if resp.IsFavorite {
		title += "  " + StyleYellow.Render("★")
	}
	card.WriteString(title + "\n")
	card.WriteString(CategoryStyle(a.Category).Render(labels.Category(a.Category).Label))
	if a.IsSOS {
		card.WriteString("  " + StyleRed.Render("SOS"))
	}
	card.WriteString("\n\n")

	for i, step := range a.Steps {
		fmt.Fprintf(&card, "%s %s\n", Dim(fmt.Sprintf("%d.", i+1)), step)
	}
	if !resp.Fresh {
		card.WriteString("\n" + Dim("You've done every match recently; here's one again."))
	}

	b.WriteString(RenderBox(suggestionTitle(resp.Request, labels), strings.TrimRight(card.String(), "\n")))
	b.WriteString("\n")
	b.WriteString(Dim("Start it: " + StartHint(resp)))
	b.WriteString("\n")
	return b.String()
}

func suggestionTitle(req contract.RecommendRequest, labels Labels) string {
	switch req.Mode {
	case contract.ModeSOS:
		return "SOS"
	case contract.ModeQuick:
		return "Quick · " + labels.Category(req.Category).Label
	default:
		return ContextLabel(labels, req.CompletionContext())
	}
}

func formatNoCandidates(req contract.RecommendRequest, labels Labels) string {
	var what string
	switch req.Mode {
	case contract.ModeSOS:
		what = "No SOS activities in the catalog."
	case contract.ModeQuick:
		what = fmt.Sprintf("No %s activities in the catalog.", labels.Category(req.Category).Label)
	default:
		what = fmt.Sprintf("Nothing fits %s yet.", ContextLabel(labels, req.CompletionContext()))
	}
	return StyleYellow.Render(what) + "\n" + Dim("Try `microrest sos` or pick another place.") + "\n"
}

// StartHint is the command that runs the suggested activity with the
// recommendation's context recorded on completion.
func StartHint(resp *contract.RecommendResponse) string {
	base := "microrest start " + resp.Activity.ID
	switch resp.Request.Mode {
	case contract.ModeSOS:
		return base + " --mode sos"
	case contract.ModeQuick:
		return base + " --mode quick"
	default:
		return fmt.Sprintf("%s --emotion %s --location %s", base,
			strings.ToLower(string(resp.Request.Emotion)), strings.ToLower(string(resp.Request.Location)))
	}
}

// FormatCompletion confirms a recorded completion with the updated streak
// and any achievements it unlocked.
func FormatCompletion(resp *contract.CompletionResponse) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("✔ Done: "))
	b.WriteString(Bold(ActivityTitle(resp.Activity)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Dim("Streak:"), StreakLabel(resp.Streak.Count))
	for _, a := range resp.NewlyUnlocked {
		fmt.Fprintf(&b, "%s %s %s\n", StylePurple.Render("Unlocked"), a.Emoji, Bold(a.Title))
	}
	return b.String()
}

// StreakLabel renders "3 days" with singular handling.
func StreakLabel(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
