package cli

import (
	"errors"
	"fmt"

	"github.com/VolkofAndrey/micro-rest-app/internal/cli/formatter"
	"github.com/VolkofAndrey/micro-rest-app/internal/contract"
	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// microrestHuhTheme returns a huh theme using the formatter palette.
func microrestHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// contextChoice is what the picker collects. Fields start at the first
// option of each select.
type contextChoice struct {
	Mode     contract.RecommendMode
	Emotion  domain.Emotion
	Location domain.Location
	Category domain.Category
}

func defaultContextChoice() contextChoice {
	return contextChoice{
		Mode:     contract.ModeGuided,
		Emotion:  domain.Emotions[0],
		Location: domain.Locations[0],
		Category: domain.Categories[0],
	}
}

func (c contextChoice) request() contract.RecommendRequest {
	switch c.Mode {
	case contract.ModeSOS:
		return contract.NewSOSRequest()
	case contract.ModeQuick:
		return contract.NewQuickRequest(c.Category)
	default:
		return contract.NewGuidedRequest(c.Emotion, c.Location)
	}
}

func metaLabel(m domain.Meta) string {
	if m.Emoji == "" {
		return m.Label
	}
	return m.Emoji + " " + m.Label
}

// contextForm asks for the mode, then either emotion and location or a
// category. SOS skips straight to the suggestion.
func contextForm(choice *contextChoice, labels formatter.Labels) *huh.Form {
	emotions := make([]huh.Option[domain.Emotion], 0, len(domain.Emotions))
	for _, e := range domain.Emotions {
		emotions = append(emotions, huh.NewOption(metaLabel(labels.Emotion(e)), e))
	}
	locations := make([]huh.Option[domain.Location], 0, len(domain.Locations))
	for _, l := range domain.Locations {
		locations = append(locations, huh.NewOption(metaLabel(labels.Location(l)), l))
	}
	categories := make([]huh.Option[domain.Category], 0, len(domain.Categories))
	for _, c := range domain.Categories {
		categories = append(categories, huh.NewOption(metaLabel(labels.Category(c)), c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[contract.RecommendMode]().
				Title("What do you need?").
				Options(
					huh.NewOption("Something for how I feel", contract.ModeGuided),
					huh.NewOption("A quick practice", contract.ModeQuick),
					huh.NewOption("SOS: calm me down now", contract.ModeSOS),
				).
				Value(&choice.Mode),
		),
		huh.NewGroup(
			huh.NewSelect[domain.Emotion]().
				Title("How are you feeling?").
				Options(emotions...).
				Value(&choice.Emotion),
			huh.NewSelect[domain.Location]().
				Title("Where are you?").
				Options(locations...).
				Value(&choice.Location),
		).WithHideFunc(func() bool { return choice.Mode != contract.ModeGuided }),
		huh.NewGroup(
			huh.NewSelect[domain.Category]().
				Title("What kind of practice?").
				Options(categories...).
				Value(&choice.Category),
		).WithHideFunc(func() bool { return choice.Mode != contract.ModeQuick }),
	).WithTheme(microrestHuhTheme()).WithShowHelp(false)
}

func confirmForm(title, affirmative, negative string, value *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative(affirmative).
				Negative(negative).
				Value(value),
		),
	).WithTheme(microrestHuhTheme()).WithShowHelp(false)
}

// runInteractive is the bare `microrest` flow: onboarding on first run, the
// context picker, the suggestion and an optional countdown.
func runInteractive(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	meta := app.Activities.Meta()

	settings, err := app.Settings.Get(ctx)
	if err != nil {
		return err
	}
	if !settings.OnboardingDone {
		if err := runOnboarding(cmd, app); err != nil {
			return quietAbort(err)
		}
	}

	choice := defaultContextChoice()
	if err := app.runForm(cmd, contextForm(&choice, meta)); err != nil {
		return quietAbort(err)
	}

	resp, err := app.Recommend.Recommend(ctx, choice.request())
	if err != nil {
		return fmt.Errorf("recommending: %w", err)
	}
	fmt.Fprint(out, formatter.FormatRecommendation(resp, meta))
	if !resp.Found() {
		return nil
	}

	var start bool
	if err := app.runForm(cmd, confirmForm("Start now?", "Start", "Later", &start)); err != nil {
		return quietAbort(err)
	}
	if !start {
		return nil
	}
	return runSession(cmd, app, resp.Activity, resp.Context)
}

func runOnboarding(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Welcome to MicroRest",
		"Tell me how you feel and where you are,\nand I'll suggest a one-to-five minute break.\n\n"+
			formatter.Dim("Practice daily to grow your streak.")))

	var remind bool
	if err := app.runForm(cmd, confirmForm("Get a daily reminder?", "Yes", "No", &remind)); err != nil {
		return err
	}
	if err := app.Settings.SetNotifications(ctx, remind); err != nil {
		return err
	}
	return app.Settings.MarkOnboarded(ctx)
}

// quietAbort turns a user abort (esc, ctrl+c) into a clean exit.
func quietAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
