package rockfall

// Width is the fixed number of columns in the well.
const Width = 7

const (
	// spawnColumn leaves two empty columns between the left wall and a new rock.
	spawnColumn = 2
	// spawnGap is the number of empty rows between the highest rock and a new one.
	spawnGap = 3
	// MaxShapeHeight is the tallest shape in the catalog.
	MaxShapeHeight = 4
)

// Offset is a cell position relative to a piece anchor. DY grows upward.
type Offset struct {
	DX, DY int
}

// Shape is one entry of the rock catalog.
type Shape struct {
	Name  string
	Cells []Offset
}

// Shapes is the fixed rock catalog in drop order.
var Shapes = [...]Shape{
	{Name: "bar", Cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
	{Name: "plus", Cells: []Offset{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}}},
	{Name: "hook", Cells: []Offset{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}},
	{Name: "pillar", Cells: []Offset{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
	{Name: "square", Cells: []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
}

// ShapeCount is the size of the catalog.
const ShapeCount = len(Shapes)

// Piece is a rock in flight: a catalog entry anchored at (X, Y), where Y is
// the row of the piece's lowest cells.
type Piece struct {
	Kind int
	X, Y int
}

// Spawn returns the piece dropped as the rock-th rock (zero based) when the
// highest filled row is highest (-1 for an empty well).
func Spawn(rock, highest int) Piece {
	return Piece{
		Kind: rock % ShapeCount,
		X:    spawnColumn,
		Y:    highest + spawnGap + 1,
	}
}

// Shape returns the catalog entry for the piece.
func (p Piece) Shape() Shape { return Shapes[p.Kind] }

// Moved returns the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Top returns the highest row the piece occupies.
func (p Piece) Top() int {
	top := p.Y
	for _, c := range Shapes[p.Kind].Cells {
		top = max(top, p.Y+c.DY)
	}
	return top
}

// Each calls fn with the absolute coordinates of every cell of the piece.
func (p Piece) Each(fn func(x, y int)) {
	for _, c := range Shapes[p.Kind].Cells {
		fn(p.X+c.DX, p.Y+c.DY)
	}
}
