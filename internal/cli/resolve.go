package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/VolkofAndrey/micro-rest-app/internal/contract"
)

// minSuffixLen keeps short inputs from matching half the history.
const minSuffixLen = 4

// resolveHistoryID resolves a history entry identifier which can be:
//   - A full entry id (passed through directly)
//   - A unique suffix of at least four characters, as shown by `history`
func resolveHistoryID(ctx context.Context, app *App, input string) (string, error) {
	if len(input) < minSuffixLen {
		return input, nil
	}

	resp, err := app.History.List(ctx, contract.HistoryRequest{})
	if err != nil {
		return "", fmt.Errorf("listing history: %w", err)
	}

	var matches []string
	for _, item := range resp.Items {
		id := item.Entry.ID
		if id == input {
			return id, nil
		}
		if strings.HasSuffix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return input, nil
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%q matches %d history entries; use more characters", input, len(matches))
	}
}
