package formatter

import (
	"fmt"
	"strings"

	"github.com/VolkofAndrey/micro-rest-app/internal/contract"
)

// FormatProfile renders the stats dashboard: streak tier, totals, today's
// challenge and the achievement list.
func FormatProfile(resp *contract.ProfileResponse, labels Labels) string {
	var b strings.Builder

	var stats strings.Builder
	fmt.Fprintf(&stats, "%s %s  %s\n", resp.Tier.Emoji, Bold(StreakLabel(resp.Streak.Count)), Dim(resp.Tier.Name))
	if !resp.Streak.LastActivityDate.IsZero() {
		fmt.Fprintf(&stats, "%s %s\n", Dim("Last practice:"), resp.Streak.LastActivityDate)
	}
	fmt.Fprintf(&stats, "%s %d   %s %d",
		Dim("Practices:"), resp.TotalPractices,
		Dim("Favorites:"), resp.FavoritesCount)
	b.WriteString(RenderBox("Streak", stats.String()))
	b.WriteString("\n\n")

	if c := resp.Challenge; c != nil {
		b.WriteString(Header("Today's challenge"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s %s %s\n", c.Challenge.Emoji, c.Challenge.Text,
			CategoryStyle(c.Challenge.Category).Render("("+labels.Category(c.Challenge.Category).Label+")"))
		b.WriteString(RenderProgress(c.Progress, c.Challenge.Count, 10))
		if c.Complete {
			b.WriteString("  " + StyleGreen.Render("✔ complete"))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(Header(fmt.Sprintf("Achievements %d/%d", resp.UnlockedCount, len(resp.Achievements))))
	b.WriteString("\n")
	if len(resp.Achievements) == 0 {
		b.WriteString(Dim("None defined.") + "\n")
	}
	for _, a := range resp.Achievements {
		if a.Unlocked {
			fmt.Fprintf(&b, "%s %s %s %s\n", StyleGreen.Render("✔"), a.Emoji, Bold(a.Title), Dim(a.Description))
		} else {
			fmt.Fprintf(&b, "%s %s %s %s\n", Dim("○"), a.Emoji, StyleDim.Render(a.Title), Dim(a.Description))
		}
	}
	return b.String()
}
