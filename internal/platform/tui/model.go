package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Options configures a terminal session.
type Options struct {
	Config core.RuntimeConfig
	Keys   config.KeyBindings
	Logger *log.Logger // nil discards

	// ScreenshotDir is where ctrl+s writes; empty means config.ScreenshotDir.
	ScreenshotDir string
}

// Model is the Bubble Tea model for one game session.
// The engine is only touched from Update and View, which Bubble Tea calls
// from a single goroutine.
type Model struct {
	engine   *tetris.Engine
	sched    *tetris.Scheduler
	keys     *KeyMapper
	help     help.Model
	stats    *tetris.Stats
	table    table.Model
	screen   *core.Screen
	logger   *log.Logger
	shotDir  string
	width    int
	height   int
	quitting bool
}

// NewModel creates a model driving the given engine.
func NewModel(engine *tetris.Engine, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	stats := &tetris.Stats{}
	engine.Subscribe(stats.Observe)

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Config.ScreenW

	return Model{
		engine:  engine,
		sched:   &tetris.Scheduler{},
		keys:    NewKeyMapper(opts.Keys),
		help:    h,
		stats:   stats,
		table:   newStatsTable(),
		screen:  core.NewScreen(PlayfieldW, PlayfieldH),
		logger:  logger,
		shotDir: opts.ScreenshotDir,
		width:   opts.Config.ScreenW,
		height:  opts.Config.ScreenH,
	}
}

// Init arms the first fall timer.
func (m Model) Init() tea.Cmd {
	return m.syncTimer()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case !action.IsGameplay():
		return m, nil
	}

	if !m.engine.Dispatch(action) {
		m.logger.Debug("input rejected", "action", action, "state", m.engine.State())
	}
	return m, m.syncTimer()
}

// handleTick advances the game if the tick is still live, then re-arms.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.sched.Fire(msg.Tick) {
		m.engine.Tick()
	} else {
		m.logger.Debug("stale tick dropped", "gen", msg.Tick.Gen)
	}
	return m, m.syncTimer()
}

// syncTimer returns a tick command when the fall timer has to be (re)armed.
func (m Model) syncTimer() tea.Cmd {
	t, ok := m.sched.Sync(m.engine.Running(), m.engine.Interval())
	if !ok {
		return nil
	}
	return tickCmd(t)
}

// saveScreenshot writes the playfield as plain text.
func (m Model) saveScreenshot() error {
	DrawGame(m.screen, m.engine.Snapshot(), m.keys.Keys())

	dir := m.shotDir
	if dir == "" {
		var err error
		if dir, err = config.ScreenshotDir(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create screenshot dir: %w", err)
	}

	name := fmt.Sprintf("tetris_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	m.logger.Info("screenshot saved", "path", path)
	return nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawGame(m.screen, m.engine.Snapshot(), m.keys.Keys())

	t := m.table
	t.SetRows(statsRows(m.stats))

	body := lipgloss.JoinHorizontal(lipgloss.Top, RenderScreen(m.screen), "  ", t.View())
	view := lipgloss.JoinVertical(lipgloss.Left, body, "", m.help.View(m.keys.Keys()))
	if m.width <= 0 || m.height <= 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(engine *tetris.Engine, opts Options) error {
	p := tea.NewProgram(
		NewModel(engine, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
