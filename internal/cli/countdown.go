package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/VolkofAndrey/micro-rest-app/internal/cli/formatter"
	"github.com/VolkofAndrey/micro-rest-app/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
)

type countdownKeys struct {
	toggle   key.Binding
	done     key.Binding
	favorite key.Binding
	quit     key.Binding
}

func newCountdownKeys() countdownKeys {
	return countdownKeys{
		toggle:   key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "start/pause")),
		done:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "record")),
		favorite: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "leave")),
	}
}

type favoriteToggledMsg struct {
	now bool
	err error
}

// countdownModel runs one activity. It starts paused; the activity only
// counts once the timer ran out and the user confirmed with enter.
type countdownModel struct {
	activity  domain.Activity
	total     time.Duration
	timer     timer.Model
	bar       progress.Model
	keys      countdownKeys
	help      help.Model
	favorite  bool
	toggleFav func() (bool, error)

	started   bool
	finished  bool
	confirmed bool
	err       error
}

func newCountdownModel(a domain.Activity, favorite bool, toggleFav func() (bool, error)) countdownModel {
	total := a.Duration()
	if total <= 0 {
		total = time.Second
	}
	return countdownModel{
		activity: a,
		total:    total,
		timer:    timer.NewWithInterval(total, time.Second),
		bar: progress.New(
			progress.WithSolidFill(string(formatter.ColorGreen)),
			progress.WithoutPercentage(),
			progress.WithWidth(40),
		),
		keys:      newCountdownKeys(),
		help:      help.New(),
		favorite:  favorite,
		toggleFav: toggleFav,
	}
}

func (m countdownModel) Init() tea.Cmd {
	return nil
}

func (m countdownModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-16, 10), 60)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case timer.TickMsg, timer.StartStopMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		if m.timer.Timedout() {
			m.finished = true
		}
		return m, cmd

	case timer.TimeoutMsg:
		if msg.ID == m.timer.ID() {
			m.finished = true
		}
		return m, nil

	case favoriteToggledMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.favorite = msg.now
		}
		return m, nil
	}
	return m, nil
}

func (m countdownModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.favorite):
		if m.toggleFav == nil {
			return m, nil
		}
		toggle := m.toggleFav
		return m, func() tea.Msg {
			now, err := toggle()
			return favoriteToggledMsg{now: now, err: err}
		}

	case key.Matches(msg, m.keys.toggle):
		if m.finished {
			return m, nil
		}
		if !m.started {
			m.started = true
			return m, m.timer.Init()
		}
		return m, m.timer.Toggle()

	case key.Matches(msg, m.keys.done):
		if !m.finished {
			return m, nil
		}
		m.confirmed = true
		return m, tea.Quit
	}
	return m, nil
}

func (m countdownModel) paused() bool {
	return m.started && !m.finished && !m.timer.Running()
}

func (m countdownModel) elapsed() float64 {
	if m.finished {
		return 1
	}
	return 1 - float64(m.timer.Timeout)/float64(m.total)
}

func (m countdownModel) View() string {
	var b strings.Builder

	title := formatter.ActivityTitle(m.activity)
	if m.favorite {
		title += " " + formatter.StyleYellow.Render("★")
	}
	b.WriteString(formatter.Bold(title))
	b.WriteString("\n\n")

	for i, step := range m.activity.Steps {
		fmt.Fprintf(&b, "%s %s\n", formatter.Dim(fmt.Sprintf("%d.", i+1)), step)
	}
	if m.activity.Category == domain.CategoryAudio {
		b.WriteString(formatter.StyleAqua.Render("🎧 Headphones make this work better."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "  %s  %s\n\n", formatter.Bold(clock(m.timer.Timeout)), m.bar.ViewAs(m.elapsed()))

	switch {
	case m.finished:
		b.WriteString(formatter.StyleGreen.Render("✔ Finished. Press enter to record it."))
	case m.paused():
		b.WriteString(formatter.StyleYellow.Render("Paused"))
	case m.started:
		b.WriteString(formatter.Dim("Breathe. Follow the steps."))
	default:
		b.WriteString(formatter.Dim("Press space to begin."))
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.toggle, m.keys.done, m.keys.favorite, m.keys.quit}))
	b.WriteString("\n")
	return b.String()
}

// clock renders mm:ss, rounding partial seconds up so the display never
// shows 00:00 while time remains.
func clock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
