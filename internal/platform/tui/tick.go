// Package tui runs the game engine inside a Bubble Tea program.
// It maps keys to actions, arms the fall timer and draws snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// TickMsg is delivered when an armed fall timer expires.
type TickMsg struct {
	Tick tetris.Tick
}

// tickCmd returns a command that fires once after the tick's interval.
func tickCmd(t tetris.Tick) tea.Cmd {
	return tea.Tick(t.Interval, func(time.Time) tea.Msg {
		return TickMsg{Tick: t}
	})
}
