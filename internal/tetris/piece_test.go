package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func TestCatalog(t *testing.T) {
	defs := Catalog()
	require.Len(t, defs, 7)

	seen := make(map[Tag]bool)
	for i, d := range defs {
		assert.Equal(t, Tag(i+1), d.Tag, "catalog is in tag order")
		assert.False(t, seen[d.Tag], "duplicate tag %v", d.Tag)
		seen[d.Tag] = true

		assert.Len(t, d.Shape.Cells(), 4, "%s should have four cells", d.Name)
		for _, row := range d.Shape {
			assert.Len(t, row, d.Shape.Width(), "%s shape must be rectangular", d.Name)
		}
		assert.LessOrEqual(t, d.Shape.Height(), 2, "%s is defined lying flat", d.Name)
		assert.Equal(t, d.Name, d.Tag.String())
		assert.Equal(t, d.Color, d.Tag.Color())
	}

	assert.Equal(t, ".", TagNone.String())
	assert.Equal(t, core.ColorDefault, TagNone.Color())
	_, ok := Lookup(TagNone)
	assert.False(t, ok)
}

func TestCatalogReturnsCopy(t *testing.T) {
	defs := Catalog()
	defs[0].Name = "X"
	defs[0].Shape[0][0] = 0
	assert.Equal(t, "I", Catalog()[0].Name)

	d, ok := Lookup(TagI)
	require.True(t, ok)
	assert.Equal(t, Shape{{1, 1, 1, 1}}, d.Shape)

	d.Shape[0][1] = 0
	p := NewPiece(d)
	p.Shape[0][2] = 0
	fresh, _ := Lookup(TagI)
	assert.Equal(t, Shape{{1, 1, 1, 1}}, fresh.Shape)
}

func TestRotateClockwise(t *testing.T) {
	tShape := Shape{
		{0, 1, 0},
		{1, 1, 1},
	}
	want := Shape{
		{1, 0},
		{1, 1},
		{1, 0},
	}
	assert.True(t, want.Equal(tShape.Rotate()), "got %v", tShape.Rotate())

	iShape := Shape{{1, 1, 1, 1}}
	assert.True(t, Shape{{1}, {1}, {1}, {1}}.Equal(iShape.Rotate()))
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, d := range Catalog() {
		t.Run(d.Name, func(t *testing.T) {
			s := d.Shape
			for range 4 {
				s = s.Rotate()
			}
			assert.True(t, d.Shape.Equal(s))
		})
	}
}

func TestRotateLeavesOriginalUntouched(t *testing.T) {
	d, _ := Lookup(TagL)
	before := Shape{{0, 0, 1}, {1, 1, 1}}

	p := NewPiece(d)
	_ = p.Rotated()

	assert.True(t, before.Equal(d.Shape))
	assert.True(t, before.Equal(p.Shape))
}

func TestShapeEqual(t *testing.T) {
	assert.False(t, Shape{{1, 1}}.Equal(Shape{{1}, {1}}))
	assert.False(t, Shape{{1, 0}}.Equal(Shape{{0, 1}}))
	assert.True(t, Shape{}.Equal(Shape{}))
}

func TestRandomPiece(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[Tag]int)

	for range 700 {
		p := RandomPiece(rng)
		assert.Equal(t, core.Point{X: 4, Y: 0}, p.Pos)
		assert.False(t, p.IsZero())
		seen[p.Tag]++
	}

	assert.Len(t, seen, 7, "every piece should appear")
}

func TestPieceCells(t *testing.T) {
	p := pieceOf(t, TagO).Moved(2, 3)
	assert.ElementsMatch(t, []core.Point{
		{X: 6, Y: 3}, {X: 7, Y: 3},
		{X: 6, Y: 4}, {X: 7, Y: 4},
	}, p.Cells())
}
