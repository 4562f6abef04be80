package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/henri123lemoine/rusuku/internal/config"
	"github.com/henri123lemoine/rusuku/internal/debug"
	"github.com/henri123lemoine/rusuku/internal/grid"
	"github.com/henri123lemoine/rusuku/internal/timer"
	"github.com/henri123lemoine/rusuku/internal/ui"
)

// Model is the main application model.
type Model struct {
	// Configuration
	config *config.Config
	plan   *grid.Plan

	// State
	timer timer.Timer

	// UI
	width  int
	height int
	keys   KeyMap
	help   help.Model

	// Exit behavior
	shouldQuit bool
}

// New creates a new Model. A nil clock means the system clock.
func New(cfg *config.Config, plan *grid.Plan, clock timer.Clock) Model {
	h := help.New()
	h.Styles.ShortKey = ui.HelpKeyStyle
	h.Styles.ShortDesc = ui.HelpStyle
	h.Styles.ShortSeparator = ui.HelpStyle

	return Model{
		config: cfg,
		plan:   plan,
		timer:  timer.New(clock),
		keys:   KeyMapFromConfig(&cfg.Keys),
		help:   h,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tick(m.config.Tick())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case TickMsg:
		return m, tick(m.config.Tick())
	}

	return m, nil
}

// handleKeyPress dispatches a key press to the timer. Unbound keys are
// ignored.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		debug.Log("key %q: quit at %s", msg.String(), timer.Format(m.timer.Elapsed()))
		m.shouldQuit = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		m.timer.Start()
		debug.Log("key %q: start, elapsed %s", msg.String(), m.timer.Elapsed())
	case key.Matches(msg, m.keys.Pause):
		m.timer.Pause()
		debug.Log("key %q: pause, elapsed %s", msg.String(), m.timer.Elapsed())
	case key.Matches(msg, m.keys.Resume):
		m.timer.Resume()
		debug.Log("key %q: resume, elapsed %s", msg.String(), m.timer.Elapsed())
	}
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	helpView := ""
	if m.config.UI.ShowHelp {
		helpView = m.help.View(m.keys)
	}

	return ui.Render(ui.Build(ui.Params{
		Width:         m.width,
		Height:        m.height,
		Elapsed:       m.timer.Elapsed(),
		Paused:        m.timer.Paused(),
		Title:         m.config.UI.Title,
		Plan:          m.plan,
		MaxCellWidth:  m.config.Grid.CellWidth,
		MaxCellHeight: m.config.Grid.CellHeight,
		Help:          helpView,
	}))
}

// ShouldQuit returns true if the app should quit.
func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

// Elapsed returns the timer's current reading.
func (m Model) Elapsed() time.Duration {
	return m.timer.Elapsed()
}

// Running reports whether the timer is running.
func (m Model) Running() bool {
	return m.timer.Running()
}

// Commands

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
