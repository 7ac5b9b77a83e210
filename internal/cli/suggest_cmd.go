package cli

import (
	"errors"
	"fmt"

	"github.com/VolkofAndrey/micro-rest-app/internal/cli/formatter"
	"github.com/VolkofAndrey/micro-rest-app/internal/contract"
	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/spf13/cobra"
)

func newSuggestCmd(app *App) *cobra.Command {
	var emotion domain.Emotion
	var location domain.Location
	var category domain.Category
	var start bool

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest an activity for how you feel and where you are",
		Example: "  microrest suggest --emotion anxious --location work\n" +
			"  microrest suggest --category breathing --start",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req contract.RecommendRequest
			switch {
			case category != "":
				req = contract.NewQuickRequest(category)
			case emotion != "" && location != "":
				req = contract.NewGuidedRequest(emotion, location)
			default:
				return errors.New("give --emotion and --location, or --category")
			}
			return suggest(cmd, app, req, start)
		},
	}

	registerEmotionFlag(cmd, &emotion)
	registerLocationFlag(cmd, &location)
	registerCategoryFlag(cmd, &category)
	cmd.Flags().BoolVar(&start, "start", false, "run the countdown for the suggestion right away")
	cmd.MarkFlagsRequiredTogether("emotion", "location")
	cmd.MarkFlagsMutuallyExclusive("category", "emotion")
	cmd.MarkFlagsMutuallyExclusive("category", "location")

	return cmd
}

func newSOSCmd(app *App) *cobra.Command {
	var start bool

	cmd := &cobra.Command{
		Use:   "sos",
		Short: "Get a calming activity right now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return suggest(cmd, app, contract.NewSOSRequest(), start)
		},
	}

	cmd.Flags().BoolVar(&start, "start", false, "run the countdown right away")
	return cmd
}

func suggest(cmd *cobra.Command, app *App, req contract.RecommendRequest, start bool) error {
	resp, err := app.Recommend.Recommend(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("recommending: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecommendation(resp, app.Activities.Meta()))
	if !start || !resp.Found() {
		return nil
	}
	return runSession(cmd, app, resp.Activity, resp.Context)
}
