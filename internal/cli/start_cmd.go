package cli

import (
	"context"
	"fmt"

	"github.com/VolkofAndrey/micro-rest-app/internal/cli/formatter"
	"github.com/VolkofAndrey/micro-rest-app/internal/contract"
	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var flags contextFlags

	cmd := &cobra.Command{
		Use:   "start ID",
		Short: "Run the countdown for an activity and record it when finished",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.Activities.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return runSession(cmd, app, *a, flags.completionContext())
		},
	}

	flags.register(cmd)
	return cmd
}

func newDoneCmd(app *App) *cobra.Command {
	var flags contextFlags

	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Record a finished activity without the countdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return recordCompletion(cmd, app, args[0], flags.completionContext())
		},
	}

	flags.register(cmd)
	return cmd
}

// runSession shows the countdown and records the activity once the user
// confirms it finished. Leaving early records nothing.
func runSession(cmd *cobra.Command, app *App, a domain.Activity, cc domain.CompletionContext) error {
	ctx := cmd.Context()
	if !app.interactive() {
		return fmt.Errorf("the countdown needs an interactive terminal; record it with `microrest done %s`", a.ID)
	}

	favorite, err := isFavorite(ctx, app, a.ID)
	if err != nil {
		return err
	}
	model := newCountdownModel(a, favorite, func() (bool, error) {
		return app.Favorites.Toggle(ctx, a.ID)
	})

	final, err := app.runProgram(model, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("running countdown: %w", err)
	}
	if result, ok := final.(countdownModel); !ok || !result.confirmed {
		fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Stopped. Nothing recorded."))
		return nil
	}
	return recordCompletion(cmd, app, a.ID, cc)
}

func recordCompletion(cmd *cobra.Command, app *App, activityID string, cc domain.CompletionContext) error {
	resp, err := app.Complete.Complete(cmd.Context(), contract.CompletionRequest{
		ActivityID: activityID,
		Context:    cc,
	})
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCompletion(resp))
	return nil
}

func isFavorite(ctx context.Context, app *App, activityID string) (bool, error) {
	favs, err := app.Favorites.List(ctx)
	if err != nil {
		return false, fmt.Errorf("listing favorites: %w", err)
	}
	for _, a := range favs {
		if a.ID == activityID {
			return true, nil
		}
	}
	return false, nil
}
