package cli

import (
	"fmt"

	"github.com/VolkofAndrey/micro-rest-app/internal/cli/formatter"
	"github.com/VolkofAndrey/micro-rest-app/internal/service"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show an activity's steps and the science behind it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := app.Activities.Get(ctx, args[0])
			if err != nil {
				return err
			}
			favorite, err := isFavorite(ctx, app, a.ID)
			if err != nil {
				return err
			}
			settings, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			out, err := formatter.FormatActivityDetail(*a, app.Activities.Meta(), favorite, formatter.MarkdownOptions{
				Dark:  settings.DarkMode,
				Plain: !app.interactive(),
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newCatalogCmd(app *App) *cobra.Command {
	var filter service.ActivityFilter

	cmd := &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"ls"},
		Short:   "List activities, optionally filtered",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			list, err := app.Activities.List(ctx, filter)
			if err != nil {
				return err
			}
			favs, err := app.Favorites.List(ctx)
			if err != nil {
				return fmt.Errorf("listing favorites: %w", err)
			}
			favSet := make(map[string]bool, len(favs))
			for _, a := range favs {
				favSet[a.ID] = true
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivityList(list, app.Activities.Meta(), func(id string) bool {
				return favSet[id]
			}))
			return nil
		},
	}

	registerCategoryFlag(cmd, &filter.Category)
	registerEmotionFlag(cmd, &filter.Emotion)
	registerLocationFlag(cmd, &filter.Location)
	cmd.Flags().BoolVar(&filter.SOSOnly, "sos", false, "only activities for the SOS fast path")
	cmd.MarkFlagsRequiredTogether("emotion", "location")

	return cmd
}
