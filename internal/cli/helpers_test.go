package cli

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/catalog"
	"github.com/VolkofAndrey/micro-rest-app/internal/recommend"
	"github.com/VolkofAndrey/micro-rest-app/internal/service"
	"github.com/VolkofAndrey/micro-rest-app/internal/state"
	"github.com/VolkofAndrey/micro-rest-app/internal/teatest"
	"github.com/VolkofAndrey/micro-rest-app/internal/testutil"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

const cliCatalogYAML = `
version: 1
emotions:
  SAD:     {label: Sad, emoji: "😢", reaction: "Be gentle with yourself."}
  ANXIOUS: {label: Anxious, emoji: "😰", reaction: "Let's slow down."}
locations:
  HOME: {label: Home, emoji: "🏠"}
  WORK: {label: Work, emoji: "💼"}
categories:
  BREATHING: {label: Breathing, emoji: "🌬️"}
  MOVEMENT:  {label: Movement, emoji: "🤸"}
activities:
  - id: breath-1
    title: Box Breathing
    emoji: "🟦"
    category: BREATHING
    duration_seconds: 2
    sos: true
    steps: [Inhale for four, Exhale for four]
    science: Slow breathing calms the heart.
    emotions: [SAD, ANXIOUS]
    locations: [HOME]
  - id: move-1
    title: Desk Stretch
    emoji: "🤸"
    category: MOVEMENT
    duration_seconds: 60
    steps: [Reach up]
    science: Movement resets posture.
    emotions: [ANXIOUS]
    locations: [WORK]
achievements:
  - {id: first-step, emoji: "🌱", title: First Step, description: Complete one practice, measure: TOTAL_COMPLETED, requirement: 1}
challenges:
  - {emoji: "🌬️", text: Breathe twice, count: 2, category: BREATHING}
`

type cliEnv struct {
	app   *App
	store *state.Store
	clock *testutil.Clock
}

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) cliEnv {
	t.Helper()
	c, err := catalog.Parse([]byte(cliCatalogYAML))
	require.NoError(t, err)

	clock := testutil.NewClock(time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC))
	store, err := state.Open(context.Background(), testutil.NewTestDB(t),
		state.WithClock(clock.Now),
		state.WithLocation(time.UTC),
	)
	require.NoError(t, err)

	app := &App{
		Recommend:  service.NewRecommendService(c, store, recommend.NewSource(1)),
		Complete:   service.NewCompletionService(c, store),
		History:    service.NewHistoryService(c, store),
		Favorites:  service.NewFavoriteService(c, store),
		Profile:    service.NewProfileService(c, store),
		Settings:   service.NewSettingsService(store),
		Activities: service.NewActivityService(c),
		Now:        clock.Now,
		// Interactive prompts and programs are left nil; tests opt in.
	}
	return cliEnv{app: app, store: store, clock: clock}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetIn(new(bytes.Buffer))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// finishCountdown stands in for tea.Program: it starts the countdown, ticks
// the timer until it runs out and confirms with enter.
func finishCountdown(t *testing.T) func(tea.Model, io.Reader, io.Writer) (tea.Model, error) {
	return func(m tea.Model, _ io.Reader, _ io.Writer) (tea.Model, error) {
		d := teatest.New(t, m, teatest.WithSize(80, 24))
		d.DrainInit()
		d.PressSpace()
		d.SendUntil(func(m tea.Model) tea.Msg {
			return timer.TickMsg{ID: m.(countdownModel).timer.ID()}
		}, func(m tea.Model) bool {
			return m.(countdownModel).finished
		}, 600)
		d.PressEnter()
		return d.Model, nil
	}
}

// leaveCountdown starts the countdown and quits before it finishes.
func leaveCountdown(t *testing.T) func(tea.Model, io.Reader, io.Writer) (tea.Model, error) {
	return func(m tea.Model, _ io.Reader, _ io.Writer) (tea.Model, error) {
		d := teatest.New(t, m)
		d.DrainInit()
		d.PressSpace()
		d.PressKey('q')
		return d.Model, nil
	}
}
