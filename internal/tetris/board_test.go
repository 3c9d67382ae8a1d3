package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestClearLinesSingleRow(t *testing.T) {
	b := boardFromRows(t,
		"..T.......",
		"JJJJJJJJJJ",
	)

	assert.Equal(t, 1, b.ClearLines())
	assert.Equal(t, TagT, b.Cell(2, BoardHeight-1), "rows above shift down")
	assert.Equal(t, 1, b.Count())
}

func TestClearLinesRechecksShiftedRow(t *testing.T) {
	b := boardFromRows(t,
		"S.........",
		"ZZZZZZZZZZ",
		"IIIIIIIIII",
		"LLLLLLLLLL",
	)

	assert.Equal(t, 3, b.ClearLines())
	assert.Equal(t, TagS, b.Cell(0, BoardHeight-1))
	assert.Equal(t, 1, b.Count())
}

func TestClearLinesNonAdjacentRows(t *testing.T) {
	b := boardFromRows(t,
		"OOOOOOOOOO",
		"O.O.......",
		"OOOOOOOOOO",
	)

	assert.Equal(t, 2, b.ClearLines())
	assert.Equal(t, TagO, b.Cell(0, BoardHeight-1))
	assert.Equal(t, TagO, b.Cell(2, BoardHeight-1))
	assert.Equal(t, TagNone, b.Cell(1, BoardHeight-1))
	assert.Equal(t, 2, b.Count())
}

func TestClearLinesWholeBoard(t *testing.T) {
	b := boardFromRows(t, repeatRow("TTTTTTTTTT", BoardHeight)...)

	assert.Equal(t, BoardHeight, b.ClearLines())
	assert.Equal(t, 0, b.Count())
}

func TestClearLinesLeavesNoFullRow(t *testing.T) {
	b := boardFromRows(t,
		"JJJJJJJJJJ",
		"J.JJJJJJJJ",
		"JJJJJJJJJJ",
		"JJJJJJJJJJ",
		".JJJJJJJJJ",
		"JJJJJJJJJJ",
	)

	assert.Equal(t, 4, b.ClearLines())
	for y := range BoardHeight {
		assert.False(t, b.RowFull(y), "row %d still full", y)
	}
}

func TestPlaceDiscardsCellsAboveTop(t *testing.T) {
	var b Board
	p := verticalI(3, -2)

	b.Place(p)

	assert.Equal(t, 2, b.Count())
	assert.Equal(t, TagI, b.Cell(3, 0))
	assert.Equal(t, TagI, b.Cell(3, 1))
}

func TestBoardCellOutOfBounds(t *testing.T) {
	var b Board
	assert.Equal(t, TagNone, b.Cell(-1, 0))
	assert.Equal(t, TagNone, b.Cell(0, BoardHeight))
	assert.False(t, b.Occupied(BoardWidth, 0))
	assert.False(t, InBounds(0, -1))
	assert.True(t, InBounds(BoardWidth-1, BoardHeight-1))
}

func TestBoardString(t *testing.T) {
	var b Board
	b.Place(Piece{Shape: Shape{{1}}, Tag: TagZ, Pos: core.Point{X: 1, Y: BoardHeight - 1}})

	rows := b.String()
	assert.Contains(t, rows, ".Z........")
	assert.Len(t, rows, BoardHeight*(BoardWidth+1)-1)
}
