package tetris

import "strings"

// Board is the grid of settled cells, indexed [y][x] with y=0 at the top.
type Board [BoardHeight][BoardWidth]Tag

// InBounds reports whether (x, y) lies on the visible board.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardWidth && y >= 0 && y < BoardHeight
}

// Cell returns the tag at (x, y), or TagNone outside the board.
func (b *Board) Cell(x, y int) Tag {
	if !InBounds(x, y) {
		return TagNone
	}
	return b[y][x]
}

// Occupied reports whether (x, y) holds a settled cell.
func (b *Board) Occupied(x, y int) bool {
	return b.Cell(x, y) != TagNone
}

// Place merges a piece's occupied cells into the board.
// Cells above the top edge are discarded: that part of the piece never settles.
func (b *Board) Place(p Piece) {
	for _, c := range p.Cells() {
		if InBounds(c.X, c.Y) {
			b[c.Y][c.X] = p.Tag
		}
	}
}

// RowFull reports whether every cell of row y is occupied.
func (b *Board) RowFull(y int) bool {
	for _, t := range b[y] {
		if t == TagNone {
			return false
		}
	}
	return true
}

// ClearLines removes complete rows and returns how many were removed.
// Rows are scanned bottom-up; after a removal the same index is examined again,
// since the row shifted into it may be complete too.
func (b *Board) ClearLines() int {
	cleared := 0
	y := BoardHeight - 1
	for y >= 0 {
		if !b.RowFull(y) {
			y--
			continue
		}
		for row := y; row > 0; row-- {
			b[row] = b[row-1]
		}
		b[0] = [BoardWidth]Tag{}
		cleared++
	}
	return cleared
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for y := range b {
		for _, t := range b[y] {
			if t != TagNone {
				n++
			}
		}
	}
	return n
}

// String renders the board with piece letters and '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for y := range b {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range b[y] {
			sb.WriteString(t.String())
		}
	}
	return sb.String()
}
