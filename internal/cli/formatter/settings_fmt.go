package formatter

import (
	"fmt"
	"strings"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
)

func FormatSettings(s domain.Settings) string {
	var b strings.Builder
	b.WriteString(Header("Settings"))
	b.WriteString("\n")

	theme := "light"
	if s.DarkMode {
		theme = "dark"
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("Theme:        "), theme)

	var notify string
	switch s.Notifications {
	case domain.NotificationsEnabled:
		notify = StyleGreen.Render("on")
	case domain.NotificationsDisabled:
		notify = "off"
	default:
		notify = Dim("not set")
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("Notifications:"), notify)

	onboarded := "no"
	if s.OnboardingDone {
		onboarded = "yes"
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("Onboarded:    "), onboarded)
	return b.String()
}
