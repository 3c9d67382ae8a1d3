package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Playfield layout, in terminal cells. Every board cell is two columns wide
// so blocks come out roughly square.
const (
	cellW      = 2
	wellW      = tetris.BoardWidth*cellW + 2
	wellH      = tetris.BoardHeight + 2
	sideX      = wellW + 1
	sideW      = 14
	previewH   = 4
	PlayfieldW = sideX + sideW
	PlayfieldH = wellH
)

const (
	blockCell = "██"
	ghostCell = "░░"
	emptyCell = " ·"
)

// DrawGame draws the well, the side panel and any overlay for a snapshot.
// The screen is resized to PlayfieldW x PlayfieldH first.
func DrawGame(s *core.Screen, snap tetris.Snapshot, keys KeyMap) {
	s.Resize(PlayfieldW, PlayfieldH)
	s.Clear()
	drawWell(s, snap)
	drawSide(s, snap)

	switch {
	case snap.GameOver():
		drawOverlay(s, "GAME OVER",
			fmt.Sprintf("score %d", snap.Score),
			keys.Restart.Help().Key+" restart")
	case snap.Paused():
		drawOverlay(s, "PAUSED", "", keys.Pause.Help().Key+" resume")
	}
}

func drawWell(s *core.Screen, snap tetris.Snapshot) {
	s.DrawBox(core.NewRect(0, 0, wellW, wellH), core.ColorGray)

	for y := range tetris.BoardHeight {
		for x := range tetris.BoardWidth {
			putCell(s, x, y, emptyCell, core.ColorDarkGray)
		}
	}

	if !snap.GameOver() {
		for _, c := range snap.Ghost.Cells() {
			putCell(s, c.X, c.Y, ghostCell, core.ColorDarkGray)
		}
	}

	comp := snap.Composite()
	for y := range tetris.BoardHeight {
		for x := range tetris.BoardWidth {
			if t := comp.Cell(x, y); t != tetris.TagNone {
				putCell(s, x, y, blockCell, t.Color())
			}
		}
	}
}

// putCell draws one board cell; cells above the board are skipped.
func putCell(s *core.Screen, x, y int, glyph string, c core.Color) {
	if !tetris.InBounds(x, y) {
		return
	}
	s.DrawTextColored(1+x*cellW, 1+y, glyph, c)
}

func drawSide(s *core.Screen, snap tetris.Snapshot) {
	s.DrawBox(core.NewRect(sideX, 0, sideW, previewH+2), core.ColorGray)
	s.DrawTextColored(sideX+2, 0, " NEXT ", core.ColorWhite)

	// Center the preview inside the box.
	next := snap.Next
	w, h := next.Shape.Width()*cellW, next.Shape.Height()
	ox := core.Clamp(sideX+1+(sideW-2-w)/2, sideX+1, sideX+sideW-1-w)
	oy := core.Clamp(1+(previewH-h)/2, 1, 1+previewH-h)
	for _, c := range next.Shape.Cells() {
		s.DrawTextColored(ox+c.X*cellW, oy+c.Y, blockCell, next.Tag.Color())
	}

	y := previewH + 3
	for _, row := range []struct {
		label string
		value string
	}{
		{"SCORE", strconv.Itoa(snap.Score)},
		{"LEVEL", strconv.Itoa(snap.Level)},
		{"LINES", strconv.Itoa(snap.Lines)},
		{"SPEED", fmt.Sprintf("%dms", snap.Interval.Milliseconds())},
	} {
		s.DrawTextColored(sideX+1, y, row.label, core.ColorGray)
		s.DrawTextColored(sideX+1, y+1, row.value, core.ColorWhite)
		y += 3
	}
}

// drawOverlay draws a small framed message over the middle of the well.
func drawOverlay(s *core.Screen, title, body, hint string) {
	const w, h = wellW - 4, 7
	r := core.NewRect(2, (wellH-h)/2, w, h)
	s.FillRect(r, ' ', core.ColorDefault)
	s.DrawBox(r, core.ColorWhite)

	s.DrawTextCentered(r, r.Y+2, title, core.ColorYellow)
	s.DrawTextCentered(r, r.Y+3, body, core.ColorWhite)
	s.DrawTextCentered(r, r.Y+4, hint, core.ColorGray)
}

// newStatsTable creates the per-piece statistics table.
func newStatsTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Piece", Width: 7},
			{Title: "Count", Width: 6},
		}),
		table.WithHeight(len(tetris.Catalog())+len(clearNames)+2),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)
	return t
}

var clearNames = [...]string{"", "single", "double", "triple", "tetris"}

// statsRows lists piece counts followed by clear counts.
func statsRows(st *tetris.Stats) []table.Row {
	defs := tetris.Catalog()
	rows := make([]table.Row, 0, len(defs)+len(clearNames))
	for _, d := range defs {
		rows = append(rows, table.Row{d.Name, strconv.Itoa(st.Count(d.Tag))})
	}
	for n := 1; n < len(clearNames); n++ {
		rows = append(rows, table.Row{clearNames[n], strconv.Itoa(st.Clears[n])})
	}
	return rows
}
