package recommend

import (
	"testing"

	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acts(ids ...string) []domain.Activity {
	out := make([]domain.Activity, len(ids))
	for i, id := range ids {
		out[i] = domain.Activity{ID: id, DurationSeconds: 60}
	}
	return out
}

// fixedSource always returns the same index, clamped to n.
type fixedSource int

func (f fixedSource) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func TestSelect_EmptyCandidatesSignalsNoResult(t *testing.T) {
	_, ok := Select(nil, domain.RecencyQueue{"a"}, NewSource(1))
	assert.False(t, ok)

	_, ok = Select([]domain.Activity{}, nil, NewSource(1))
	assert.False(t, ok)
}

func TestSelect_PrefersFreshCandidates(t *testing.T) {
	candidates := acts("a", "b", "c")
	recent := domain.RecencyQueue{"a", "c"}

	for i := 0; i < 3; i++ {
		got, ok := Select(candidates, recent, fixedSource(i))
		require.True(t, ok)
		assert.Equal(t, "b", got.ID)
	}
}

func TestSelect_ExhaustedFallsBackToFullList(t *testing.T) {
	candidates := acts("A", "B", "C")
	recent := domain.RecencyQueue{"A", "B", "C"}

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		got, ok := Select(candidates, recent, fixedSource(i))
		require.True(t, ok, "exhaustion must never produce a no-result signal")
		seen[got.ID] = true
	}
	assert.Equal(t, map[string]bool{"A": true, "B": true, "C": true}, seen)
}

func TestSelect_SingleCandidate(t *testing.T) {
	got, ok := Select(acts("only"), domain.RecencyQueue{"only"}, NewSource(7))
	require.True(t, ok)
	assert.Equal(t, "only", got.ID)
}

func TestSelect_UniformOverFreshPartition(t *testing.T) {
	candidates := acts("a", "b", "c", "d")
	recent := domain.RecencyQueue{"d"}
	src := NewSource(99)

	counts := map[string]int{}
	const trials = 3000
	for i := 0; i < trials; i++ {
		got, _ := Select(candidates, recent, src)
		counts[got.ID]++
	}
	assert.Zero(t, counts["d"])
	for _, id := range []string{"a", "b", "c"} {
		// Expect ~1000 each; allow generous slack.
		assert.InDelta(t, trials/3, counts[id], 150, "id=%s", id)
	}
}

func TestSelectSOS(t *testing.T) {
	all := acts("x", "y", "z")
	all[1].IsSOS = true
	all[2].IsSOS = true

	for i := 0; i < 2; i++ {
		got, ok := SelectSOS(all, fixedSource(i))
		require.True(t, ok)
		assert.True(t, got.IsSOS)
	}
}

func TestSelectSOS_NoFlaggedActivities(t *testing.T) {
	_, ok := SelectSOS(acts("x", "y"), NewSource(1))
	assert.False(t, ok)
}

func TestNewSource_SeedIsDeterministic(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}
