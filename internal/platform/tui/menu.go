package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	menuActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	items    []config.DifficultyPreset
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	quitting bool
	selected bool
}

// NewMenuModel creates a picker with the cursor on the initial preset.
func NewMenuModel(cfg core.RuntimeConfig, initial config.DifficultyPreset) MenuModel {
	items := config.Presets()
	cursor := 0
	for i, p := range items {
		if p == initial {
			cursor = i
		}
	}

	return MenuModel{
		items:  items,
		cursor: cursor,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("T E T R I S"))
	b.WriteString("\n\n")
	b.WriteString(menuDimStyle.Render("Choose a difficulty"))
	b.WriteString("\n\n")

	for i, p := range m.items {
		line := fmt.Sprintf("  %-7s %s", p, menuDimStyle.Render(p.Description()))
		if i == m.cursor {
			line = menuActiveStyle.Render(fmt.Sprintf("> %-7s", p)) + " " + menuDimStyle.Render(p.Description())
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuDimStyle.Render("↑/↓ navigate • enter play • q quit"))

	if m.width <= 0 || m.height <= 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Preset config.DifficultyPreset
	Config core.RuntimeConfig // may have been updated by resize
	Quit   bool
}

// Result reports the menu outcome once the program has exited.
func (m MenuModel) Result() MenuResult {
	if !m.selected || len(m.items) == 0 {
		return MenuResult{Config: m.config, Quit: true}
	}
	return MenuResult{Preset: m.items[m.cursor], Config: m.config}
}

// RunMenu runs the difficulty picker and returns the selection.
func RunMenu(cfg core.RuntimeConfig, initial config.DifficultyPreset) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg, initial),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, fmt.Errorf("run menu: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
