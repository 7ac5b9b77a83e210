package cli

import (
	"fmt"
	"strings"

	"github.com/VolkofAndrey/micro-rest-app/internal/contract"
	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Enum flags parse case-insensitively and reject unknown names at flag
// parse time, so RunE only ever sees valid values.

type emotionValue struct{ v *domain.Emotion }

func (e emotionValue) String() string {
	if e.v == nil {
		return ""
	}
	return strings.ToLower(string(*e.v))
}

func (e emotionValue) Type() string { return "emotion" }

func (e emotionValue) Set(s string) error {
	parsed, err := domain.ParseEmotion(s)
	if err != nil {
		return err
	}
	*e.v = parsed
	return nil
}

type locationValue struct{ v *domain.Location }

func (l locationValue) String() string {
	if l.v == nil {
		return ""
	}
	return strings.ToLower(string(*l.v))
}

func (l locationValue) Type() string { return "location" }

func (l locationValue) Set(s string) error {
	parsed, err := domain.ParseLocation(s)
	if err != nil {
		return err
	}
	*l.v = parsed
	return nil
}

type categoryValue struct{ v *domain.Category }

func (c categoryValue) String() string {
	if c.v == nil {
		return ""
	}
	return strings.ToLower(string(*c.v))
}

func (c categoryValue) Type() string { return "category" }

func (c categoryValue) Set(s string) error {
	parsed, err := domain.ParseCategory(s)
	if err != nil {
		return err
	}
	*c.v = parsed
	return nil
}

type modeValue struct{ v *contract.RecommendMode }

func (m modeValue) String() string {
	if m.v == nil {
		return ""
	}
	return string(*m.v)
}

func (m modeValue) Type() string { return "mode" }

func (m modeValue) Set(s string) error {
	switch mode := contract.RecommendMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case contract.ModeQuick, contract.ModeSOS:
		*m.v = mode
		return nil
	default:
		return fmt.Errorf("mode must be quick or sos, got %q", s)
	}
}

func lowerNames[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(string(v))
	}
	return out
}

func registerEmotionFlag(cmd *cobra.Command, v *domain.Emotion) {
	cmd.Flags().Var(emotionValue{v}, "emotion", "how you feel: "+strings.Join(lowerNames(domain.Emotions), ", "))
	_ = cmd.RegisterFlagCompletionFunc("emotion", cobra.FixedCompletions(lowerNames(domain.Emotions), cobra.ShellCompDirectiveNoFileComp))
}

func registerLocationFlag(cmd *cobra.Command, v *domain.Location) {
	cmd.Flags().Var(locationValue{v}, "location", "where you are: "+strings.Join(lowerNames(domain.Locations), ", "))
	_ = cmd.RegisterFlagCompletionFunc("location", cobra.FixedCompletions(lowerNames(domain.Locations), cobra.ShellCompDirectiveNoFileComp))
}

func registerCategoryFlag(cmd *cobra.Command, v *domain.Category) {
	cmd.Flags().Var(categoryValue{v}, "category", "activity category: "+strings.Join(lowerNames(domain.Categories), ", "))
	_ = cmd.RegisterFlagCompletionFunc("category", cobra.FixedCompletions(lowerNames(domain.Categories), cobra.ShellCompDirectiveNoFileComp))
}

// contextFlags collects the completion context for start and done.
type contextFlags struct {
	emotion  domain.Emotion
	location domain.Location
	mode     contract.RecommendMode
}

func (f *contextFlags) register(cmd *cobra.Command) {
	registerEmotionFlag(cmd, &f.emotion)
	registerLocationFlag(cmd, &f.location)
	cmd.Flags().Var(modeValue{&f.mode}, "mode", "record as a quick or sos practice instead of an emotion and location")
	_ = cmd.RegisterFlagCompletionFunc("mode", cobra.FixedCompletions(
		[]string{string(contract.ModeQuick), string(contract.ModeSOS)}, cobra.ShellCompDirectiveNoFileComp))
	cmd.MarkFlagsMutuallyExclusive("mode", "emotion")
	cmd.MarkFlagsMutuallyExclusive("mode", "location")
	cmd.MarkFlagsRequiredTogether("emotion", "location")
}

// completionContext resolves the flags. With no flags at all the practice is
// recorded as a quick one.
func (f *contextFlags) completionContext() domain.CompletionContext {
	switch {
	case f.mode == contract.ModeSOS:
		return domain.SOSContext()
	case f.emotion != "" && f.location != "":
		return domain.GuidedContext(f.emotion, f.location)
	default:
		return domain.QuickContext()
	}
}

var (
	_ pflag.Value = emotionValue{}
	_ pflag.Value = locationValue{}
	_ pflag.Value = categoryValue{}
	_ pflag.Value = modeValue{}
)
