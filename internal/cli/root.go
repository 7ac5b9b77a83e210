package cli

import (
	"io"
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Recommend  service.RecommendService
	Complete   service.CompletionService
	History    service.HistoryService
	Favorites  service.FavoriteService
	Profile    service.ProfileService
	Settings   service.SettingsService
	Activities service.ActivityService

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// Now anchors relative timestamps. Nil means time.Now.
	Now func() time.Time

	// RunProgram runs a bubbletea model to completion. Nil runs a real
	// tea.Program on the command's streams.
	RunProgram func(m tea.Model, in io.Reader, out io.Writer) (tea.Model, error)

	// RunForm runs a huh form. Nil runs it on the command's streams.
	RunForm func(f *huh.Form) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) runProgram(m tea.Model, in io.Reader, out io.Writer) (tea.Model, error) {
	if a.RunProgram != nil {
		return a.RunProgram(m, in, out)
	}
	return tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
}

func (a *App) runForm(cmd *cobra.Command, f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.WithInput(cmd.InOrStdin()).WithOutput(cmd.OutOrStdout()).Run()
}

// NewRootCmd creates the top-level "microrest" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "microrest",
		Short: "Short mood-matched breaks, streaks and achievements",
		Long: "MicroRest suggests a one-to-five minute activity for how you feel and where you are,\n" +
			"tracks your daily streak and unlocks achievements as you practice.\n\n" +
			"Run without arguments in a terminal for the guided picker.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runInteractive(cmd, app)
		},
	}

	root.AddCommand(
		newSuggestCmd(app),
		newSOSCmd(app),
		newStartCmd(app),
		newDoneCmd(app),
		newShowCmd(app),
		newCatalogCmd(app),
		newHistoryCmd(app),
		newFavCmd(app),
		newProfileCmd(app),
		newSettingsCmd(app),
	)

	return root
}
