package cli

import (
	"fmt"

	"github.com/VolkofAndrey/micro-rest-app/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	show := func(cmd *cobra.Command, args []string) error {
		s, err := app.Settings.Get(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(s))
		return nil
	}

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		Args:  cobra.NoArgs,
		RunE:  show,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show current preferences",
			Args:  cobra.NoArgs,
			RunE:  show,
		},
		&cobra.Command{
			Use:       "theme dark|light",
			Short:     "Set the color theme",
			ValidArgs: []string{"dark", "light"},
			Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Settings.SetTheme(cmd.Context(), args[0] == "dark"); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s.\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:       "notify on|off",
			Short:     "Turn daily reminders on or off",
			ValidArgs: []string{"on", "off"},
			Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Settings.SetNotifications(cmd.Context(), args[0] == "on"); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Reminders %s.\n", args[0])
				return nil
			},
		},
	)

	return cmd
}
