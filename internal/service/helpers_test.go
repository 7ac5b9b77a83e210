package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/catalog"
	"github.com/VolkofAndrey/micro-rest-app/internal/state"
	"github.com/VolkofAndrey/micro-rest-app/internal/testutil"
	"github.com/stretchr/testify/require"
)

const testCatalogYAML = `
version: 1
emotions:
  ANXIOUS: {label: Anxious, emoji: "😰", reaction: "Let's slow down."}
activities:
  - id: calm-1
    title: Box Breathing
    emoji: "🟦"
    category: BREATHING
    duration_seconds: 60
    sos: true
    steps: [in, hold, out]
    science: s
    emotions: [ANXIOUS]
    locations: [HOME]
  - id: calm-2
    title: Дыхание Животом
    emoji: "🫁"
    category: BREATHING
    duration_seconds: 90
    steps: [breathe]
    science: s
    emotions: [ANXIOUS]
    locations: [HOME]
  - id: calm-3
    title: Desk Stretch
    emoji: "🤸"
    category: MOVEMENT
    duration_seconds: 120
    steps: [stretch]
    science: s
    emotions: [ANXIOUS]
    locations: [HOME, WORK]
achievements:
  - {id: first-step, emoji: "🌱", title: First Step, description: d, measure: TOTAL_COMPLETED, requirement: 1}
  - {id: three, emoji: "🌿", title: Three, description: d, measure: TOTAL_COMPLETED, requirement: 3}
  - {id: streak-2, emoji: "🔥", title: Two Days, description: d, measure: STREAK, requirement: 2}
challenges:
  - {emoji: "🌬️", text: Breathe twice, count: 2, category: BREATHING}
`

var serviceTestLoc = time.FixedZone("UTC+2", 2*60*60)

type testEnv struct {
	catalog *catalog.Catalog
	store   *state.Store
	clock   *testutil.Clock
}

func setupEnv(t *testing.T) testEnv {
	t.Helper()
	c, err := catalog.Parse([]byte(testCatalogYAML))
	require.NoError(t, err)

	clock := testutil.NewClock(time.Date(2025, 3, 15, 10, 0, 0, 0, serviceTestLoc))
	s, err := state.Open(context.Background(), testutil.NewTestDB(t),
		state.WithClock(clock.Now),
		state.WithLocation(serviceTestLoc),
	)
	require.NoError(t, err)
	return testEnv{catalog: c, store: s, clock: clock}
}

// seqSource returns 0, 1, 2, ... modulo n.
type seqSource struct{ i int }

func (s *seqSource) IntN(n int) int {
	v := s.i % n
	s.i++
	return v
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}
