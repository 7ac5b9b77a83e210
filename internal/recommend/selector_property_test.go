package recommend

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSelect_Invariants property-tests the selector: the result is always a
// member of the candidate list, and it is never a recently used id unless
// every candidate is recent.
func TestSelect_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	src := NewSource(42)

	for trial := 0; trial < 500; trial++ {
		n := rng.Intn(8) + 1
		candidates := make([]domain.Activity, n)
		ids := make(map[string]bool, n)
		for i := range candidates {
			id := fmt.Sprintf("act-%d", rng.Intn(12))
			candidates[i] = domain.Activity{ID: id}
			ids[id] = true
		}

		var recentIDs []string
		for i := 0; i < rng.Intn(7); i++ {
			recentIDs = append(recentIDs, fmt.Sprintf("act-%d", rng.Intn(12)))
		}
		recent := domain.NewRecencyQueue(recentIDs)

		got, ok := Select(candidates, recent, src)
		require.True(t, ok, "trial %d: non-empty candidates must yield a result", trial)
		assert.True(t, ids[got.ID], "trial %d: result %s not in candidates", trial, got.ID)

		allRecent := true
		for _, c := range candidates {
			if !recent.Contains(c.ID) {
				allRecent = false
				break
			}
		}
		if !allRecent {
			assert.False(t, recent.Contains(got.ID),
				"trial %d: picked recent id %s while fresh candidates existed", trial, got.ID)
		}
	}
}
