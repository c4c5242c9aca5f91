package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-antfarm/internal/core"
	"github.com/vovakirdan/tui-antfarm/internal/registry"
	"github.com/vovakirdan/tui-antfarm/internal/storage"
)

// hudHeight is the number of rows below the world view.
const hudHeight = 2

// speedStep is how much one faster/slower key press changes the clock speed.
const speedStep = 0.5

var (
	hudStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for watching a running simulation.
type Model struct {
	sim      registry.Simulation
	screen   *core.Screen
	clock    *core.Clock
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	preset   string
	keys     WatchKeyMap
	help     help.Model
	state    core.SimState
	lastTick time.Time
	err      error
	quitting bool
	back     bool
	runSaved bool // Whether the current run has been saved
}

// NewModel creates a new Bubble Tea model for the given simulation.
// preset is only recorded with the run.
func NewModel(sim registry.Simulation, store *storage.Store, cfg core.RuntimeConfig, preset string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		sim:    sim,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-hudHeight, 1)),
		clock:  core.NewClock(cfg.TickRate),
		store:  store,
		logger: log.Default().WithPrefix("watch"),
		config: cfg,
		preset: preset,
		keys:   DefaultWatchKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model and starts the simulation.
func (m Model) Init() tea.Cmd {
	// Initialize the simulation
	m.sim.Reset(m.config)
	// Note: state will be set on first tick (value receiver limitation)

	// Start the tick loop
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

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveRun()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.saveRun()
		m.back = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Pause):
		m.clock.TogglePause()

	case key.Matches(msg, m.keys.Faster):
		//nolint:errcheck // Speeding up never goes negative
		m.clock.SetSpeed(m.clock.Speed() + speedStep)

	case key.Matches(msg, m.keys.Slower):
		if speed := m.clock.Speed() - speedStep; speed > 0 {
			//nolint:errcheck // Guarded above
			m.clock.SetSpeed(speed)
		}

	case key.Matches(msg, m.keys.Restart):
		m.saveRun()
		// Reset seed for a new colony
		m.config.Seed = time.Now().UnixNano()
		m.sim.Reset(m.config)
		m.state = m.sim.State()
		m.runSaved = false

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleResize processes window resize events.
// World coordinates are independent of the terminal, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-hudHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick feeds real elapsed time to the clock and runs the ticks it releases.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.lastTick.IsZero() {
		m.lastTick = now
		m.state = m.sim.State()
		return m, tickCmd(m.config.TickRate)
	}

	elapsed := now.Sub(m.lastTick)
	m.lastTick = now

	for i, n := 0, m.clock.Advance(elapsed); i < n; i++ {
		result, err := m.sim.Step(m.clock.TickDelta())
		m.state = result.State
		if err != nil {
			m.logger.Error("simulation failed", "scenario", m.sim.ID(), "err", err)
			m.err = err
			m.saveRun()
			m.quitting = true
			return m, tea.Quit
		}
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current run once. Runs that never ticked are skipped.
func (m *Model) saveRun() {
	if m.store == nil || m.runSaved || m.state.Tick == 0 {
		return
	}

	run := storage.NewRun(m.sim.ID(), m.preset, m.config.Seed, m.state)
	if _, err := m.store.SaveRun(&run); err != nil {
		m.logger.Warn("could not save run", "err", err)
		return
	}
	m.runSaved = true
}

// saveScreenshot saves the current world view to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.renderWorld()

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".antfarm", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.sim.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, simulation continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// renderWorld draws the simulation into the screen buffer.
func (m Model) renderWorld() {
	m.screen.Clear()
	w, h := m.sim.WorldSize()
	m.sim.Render(core.NewViewport(m.screen, m.screen.Bounds(), w, h))
}

// hud renders the status line.
func (m Model) hud() string {
	return RenderHUD(m.sim.Title(), m.state, m.clock.Speed(), m.clock.Paused())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.renderWorld()

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.hud())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Err returns the simulation error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// WithLogger returns a copy of the model that logs to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// State returns the last observed simulation state.
func (m Model) State() core.SimState {
	return m.state
}

// Run starts the Bubble Tea program with the given model.
// Returns true if user wants to go back to menu.
func Run(sim registry.Simulation, store *storage.Store, cfg core.RuntimeConfig, preset string) (goBack bool, err error) {
	model := NewModel(sim, store, cfg, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), m.Err()
}
