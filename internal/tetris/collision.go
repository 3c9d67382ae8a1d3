package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Collides reports whether shape placed at pos overlaps a wall, the floor or a
// settled cell. Cells above the top edge only have to respect the side walls.
// It is the single legality test for every move, rotation and drop.
func Collides(shape Shape, pos core.Point, board *Board) bool {
	for y, row := range shape {
		for x, v := range row {
			if v == 0 {
				continue
			}
			bx, by := pos.X+x, pos.Y+y
			if bx < 0 || bx >= BoardWidth || by >= BoardHeight {
				return true
			}
			if by >= 0 && board[by][bx] != TagNone {
				return true
			}
		}
	}
	return false
}
