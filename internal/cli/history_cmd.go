package cli

import (
	"fmt"

	"github.com/VolkofAndrey/micro-rest-app/internal/cli/formatter"
	"github.com/VolkofAndrey/micro-rest-app/internal/contract"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var req contract.HistoryRequest

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List completed practices, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.History.List(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(resp, req, app.Activities.Meta(), app.now()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Query, "search", "s", "", "filter by activity title")
	cmd.Flags().IntVarP(&req.Limit, "limit", "n", 0, "show at most this many entries")

	cmd.AddCommand(newHistoryRemoveCmd(app))
	return cmd
}

func newHistoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a history entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveHistoryID(ctx, app, args[0])
			if err != nil {
				return err
			}
			removed, err := app.History.Remove(ctx, id)
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("no history entry %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed entry %s.\n", formatter.TruncID(id))
			return nil
		},
	}
}
