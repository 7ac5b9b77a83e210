package cli

import (
	"fmt"

	"github.com/VolkofAndrey/micro-rest-app/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newFavCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fav ID",
		Short: "Toggle an activity as a favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := app.Favorites.Toggle(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if now {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s to favorites.\n", formatter.StyleYellow.Render("★"), args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from favorites.\n", args[0])
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favorite activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			favs, err := app.Favorites.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(favs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No favorites yet. Add one with `microrest fav ID`."))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivityList(favs, app.Activities.Meta(), nil))
			return nil
		},
	})

	return cmd
}
