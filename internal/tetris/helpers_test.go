package tetris

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// boardFromRows builds a board whose bottom rows are given as strings,
// '.' for empty and piece letters for settled cells.
func boardFromRows(t *testing.T, rows ...string) Board {
	t.Helper()
	require.LessOrEqual(t, len(rows), BoardHeight)

	var b Board
	offset := BoardHeight - len(rows)
	for i, row := range rows {
		require.Len(t, row, BoardWidth, "row %d", i)
		for x, ch := range row {
			if ch == '.' {
				continue
			}
			b[offset+i][x] = tagForLetter(t, ch)
		}
	}
	return b
}

func tagForLetter(t *testing.T, ch rune) Tag {
	t.Helper()
	for _, d := range Catalog() {
		if d.Name == string(ch) {
			return d.Tag
		}
	}
	t.Fatalf("unknown piece letter %q", ch)
	return TagNone
}

func pieceOf(t *testing.T, tag Tag) Piece {
	t.Helper()
	d, ok := Lookup(tag)
	require.True(t, ok)
	return NewPiece(d)
}

func verticalI(x, y int) Piece {
	return Piece{Shape: Shape{{1}, {1}, {1}, {1}}, Tag: TagI, Pos: core.Point{X: x, Y: y}}
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(append([]Option{WithSeed(1)}, opts...)...)
	require.NoError(t, err)
	return e
}

func repeatRow(row string, n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = row
	}
	return rows
}
