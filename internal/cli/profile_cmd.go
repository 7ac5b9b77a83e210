package cli

import (
	"fmt"

	"github.com/VolkofAndrey/micro-rest-app/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "profile",
		Aliases: []string{"stats"},
		Short:   "Show your streak, today's challenge and achievements",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Profile.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(resp, app.Activities.Meta()))
			return nil
		},
	}
}
