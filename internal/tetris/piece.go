// Package tetris implements the falling-block game engine: piece catalog, board,
// collision checking, line clearing, scoring and the game state machine.
// It has no knowledge of terminals or windows; platforms observe snapshots.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Board dimensions. They are fixed for the lifetime of the program.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Tag is the visual identity of a piece and of the board cells it settles into.
type Tag uint8

const (
	TagNone Tag = iota // empty cell
	TagI
	TagJ
	TagL
	TagO
	TagS
	TagT
	TagZ
)

// String returns the piece letter, or "." for an empty cell.
func (t Tag) String() string {
	if t == TagNone || int(t) > len(catalog) {
		return "."
	}
	return catalog[t-1].Name
}

// Color returns the display color for the tag.
func (t Tag) Color() core.Color {
	if t == TagNone || int(t) > len(catalog) {
		return core.ColorDefault
	}
	return catalog[t-1].Color
}

// Shape is a rectangular binary matrix; 1 marks an occupied cell.
type Shape [][]uint8

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rotate returns the shape turned 90° clockwise: transpose, then reverse each row.
// The receiver is left untouched.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := range w {
		out[i] = make([]uint8, h)
		for j := range h {
			out[i][j] = s[h-1-j][i]
		}
	}
	return out
}

// Clone returns a deep copy, so the copy can be written without touching s.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = append([]uint8(nil), row...)
	}
	return out
}

// Equal reports whether two shapes match cell for cell.
func (s Shape) Equal(o Shape) bool {
	if s.Height() != o.Height() || s.Width() != o.Width() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Cells returns the offsets of the occupied cells, row by row.
func (s Shape) Cells() []core.Point {
	var cells []core.Point
	for y, row := range s {
		for x, v := range row {
			if v != 0 {
				cells = append(cells, core.Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// Definition is an immutable catalog entry.
type Definition struct {
	Tag   Tag
	Name  string
	Shape Shape // canonical, unrotated
	Color core.Color
}

var catalog = [...]Definition{
	{Tag: TagI, Name: "I", Color: core.ColorCyan, Shape: Shape{
		{1, 1, 1, 1},
	}},
	{Tag: TagJ, Name: "J", Color: core.ColorBlue, Shape: Shape{
		{1, 0, 0},
		{1, 1, 1},
	}},
	{Tag: TagL, Name: "L", Color: core.ColorOrange, Shape: Shape{
		{0, 0, 1},
		{1, 1, 1},
	}},
	{Tag: TagO, Name: "O", Color: core.ColorYellow, Shape: Shape{
		{1, 1},
		{1, 1},
	}},
	{Tag: TagS, Name: "S", Color: core.ColorGreen, Shape: Shape{
		{0, 1, 1},
		{1, 1, 0},
	}},
	{Tag: TagT, Name: "T", Color: core.ColorMagenta, Shape: Shape{
		{0, 1, 0},
		{1, 1, 1},
	}},
	{Tag: TagZ, Name: "Z", Color: core.ColorRed, Shape: Shape{
		{1, 1, 0},
		{0, 1, 1},
	}},
}

// Catalog returns the seven piece definitions in tag order.
func Catalog() []Definition {
	defs := make([]Definition, len(catalog))
	for i, d := range catalog {
		d.Shape = d.Shape.Clone()
		defs[i] = d
	}
	return defs
}

// Lookup returns the definition for a tag.
func Lookup(t Tag) (Definition, bool) {
	if t == TagNone || int(t) > len(catalog) {
		return Definition{}, false
	}
	d := catalog[t-1]
	d.Shape = d.Shape.Clone()
	return d, true
}

// SpawnPosition is where new pieces appear: centered-left, top row.
func SpawnPosition() core.Point {
	return core.Point{X: BoardWidth/2 - 1, Y: 0}
}

// Piece is a shape with its tag and board position (top-left of the matrix).
// Pieces are values: moves and rotations build new pieces.
type Piece struct {
	Shape Shape
	Tag   Tag
	Pos   core.Point
}

// NewPiece creates a piece for a definition at the spawn position.
func NewPiece(d Definition) Piece {
	return Piece{Shape: d.Shape.Clone(), Tag: d.Tag, Pos: SpawnPosition()}
}

// RandomPiece picks one of the seven definitions uniformly.
func RandomPiece(rng *rand.Rand) Piece {
	return NewPiece(catalog[rng.Intn(len(catalog))])
}

// Clone returns the piece with its own copy of the shape.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// Moved returns the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Pos = p.Pos.Add(dx, dy)
	return p
}

// Rotated returns the piece with its shape turned clockwise in place.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// Cells returns the absolute board coordinates of the occupied cells.
func (p Piece) Cells() []core.Point {
	cells := p.Shape.Cells()
	for i := range cells {
		cells[i] = cells[i].Add(p.Pos.X, p.Pos.Y)
	}
	return cells
}

// IsZero reports whether the piece is unset.
func (p Piece) IsZero() bool {
	return p.Tag == TagNone
}
