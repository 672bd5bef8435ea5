package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/mkravets/yardwalk/internal/core"
	"github.com/mkravets/yardwalk/internal/engine"
	"github.com/mkravets/yardwalk/internal/feedback"
)

// statusRows is the number of terminal rows reserved below the world
// viewport for the status bar and the help bar.
const statusRows = 2

// Model is the Bubble Tea model for a yard session. It owns the terminal
// side only: key mapping, the screen buffer and the per-frame intent; the
// loop owns the simulation.
type Model struct {
	loop   *engine.Loop
	sink   *feedback.Sink
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	// intent accumulates key presses between ticks and is consumed by the
	// next simulation frame.
	intent   core.Intent
	quitting bool
}

// NewModel creates a session model driving the given loop. sink and logger
// may be nil.
func NewModel(loop *engine.Loop, sink *feedback.Sink, cfg core.RuntimeConfig, logger *log.Logger) Model {
	viewH := cfg.ScreenH - statusRows
	if viewH < 1 {
		viewH = 1
	}
	return Model{
		loop:   loop,
		sink:   sink,
		screen: core.NewScreen(cfg.ScreenW, viewH),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
	}
}

// Init starts the loop and the tick schedule.
func (m Model) Init() tea.Cmd {
	m.loop.Start(time.Now())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keyboard input into the next frame's intent.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.loop.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		switch m.loop.Phase() {
		case engine.PhaseRunning:
			m.loop.Pause()
		case engine.PhasePaused:
			m.loop.Resume(time.Now())
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.intent.DY = -1
		m.intent.Facing = core.DirectionUp
	case key.Matches(msg, m.keys.Down):
		m.intent.DY = 1
		m.intent.Facing = core.DirectionDown
	case key.Matches(msg, m.keys.Left):
		m.intent.DX = -1
		m.intent.Facing = core.DirectionLeft
	case key.Matches(msg, m.keys.Right):
		m.intent.DX = 1
		m.intent.Facing = core.DirectionRight
	}

	return m, nil
}

// handleResize resizes the viewport; the world itself is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	viewH := msg.Height - statusRows
	if viewH < 1 {
		viewH = 1
	}
	m.screen.Resize(msg.Width, viewH)
	return m, nil
}

// handleTick runs one simulation frame with the accumulated intent.
// Ticking continues while paused so that resume does not need a separate
// scheduling path.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	err := m.loop.Step(now, m.intent)
	m.intent = core.Intent{}
	if err != nil {
		if m.logger != nil {
			m.logger.Error("session ended", "error", err)
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the world viewport plus the status and help bars.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawWorld(m.screen, m.loop.World(), time.Now())

	return RenderScreen(m.screen) + "\n" +
		m.statusBar() + "\n" +
		m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the session and blocks until it ends.
func Run(loop *engine.Loop, sink *feedback.Sink, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(loop, sink, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
