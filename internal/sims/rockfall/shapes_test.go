package rockfall

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpawnCyclesThroughCatalog(t *testing.T) {
	for rock := 0; rock < 12; rock++ {
		p := Spawn(rock, 9)
		assert.Equal(t, rock%ShapeCount, p.Kind)
		assert.Equal(t, 2, p.X, "two empty columns left of the rock")
		assert.Equal(t, 13, p.Y, "three empty rows above the tower")
	}
	assert.Equal(t, 3, Spawn(0, -1).Y, "empty well spawns at row 3")
}

func TestShapeCatalog(t *testing.T) {
	sizes := []int{4, 5, 5, 4, 4}
	heights := []int{1, 3, 3, 4, 2}
	for i, s := range Shapes {
		assert.Len(t, s.Cells, sizes[i], s.Name)
		p := Piece{Kind: i}
		assert.Equal(t, heights[i]-1, p.Top(), s.Name)
		assert.LessOrEqual(t, heights[i], MaxShapeHeight)
	}
}

func TestPieceEachAndMoved(t *testing.T) {
	p := Piece{Kind: 1, X: 2, Y: 5}.Moved(1, -2)
	assert.Equal(t, Piece{Kind: 1, X: 3, Y: 3}, p)

	var cells [][2]int
	p.Each(func(x, y int) { cells = append(cells, [2]int{x, y}) })
	assert.ElementsMatch(t, [][2]int{{4, 3}, {3, 4}, {4, 4}, {5, 4}, {4, 5}}, cells)
}
