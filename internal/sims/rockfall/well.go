package rockfall

// maxPrealloc caps the rows reserved up front; taller wells grow on demand.
const maxPrealloc = 1 << 16

// Well is the fixed-width shaft rocks settle into. Each row is a bitmask with
// bit x set when column x is filled. Rows are never cleared.
type Well struct {
	rows    []uint8
	tops    [Width]int
	highest int
}

// NewWell returns an empty well with room reserved for rowsHint rows.
func NewWell(rowsHint int) *Well {
	rowsHint = max(0, min(rowsHint, maxPrealloc))
	w := &Well{rows: make([]uint8, 0, rowsHint), highest: -1}
	for x := range w.tops {
		w.tops[x] = -1
	}
	return w
}

// RowsHint is an upper bound on the rows n rocks can fill: every rock adds at
// most MaxShapeHeight rows, plus the clearance above the last one.
func RowsHint(n int) int {
	if n <= 0 {
		return 0
	}
	if n > maxPrealloc/MaxShapeHeight {
		return maxPrealloc
	}
	return n*MaxShapeHeight + spawnGap + 1
}

// Blocked reports whether a rock cell may not occupy (x, y): outside the
// walls, below the floor, or already filled.
func (w *Well) Blocked(x, y int) bool {
	if x < 0 || x >= Width || y < 0 {
		return true
	}
	return w.Filled(x, y)
}

// Filled reports whether the cell at (x, y) holds settled rock.
func (w *Well) Filled(x, y int) bool {
	if y < 0 || y >= len(w.rows) || x < 0 || x >= Width {
		return false
	}
	return w.rows[y]&(1<<x) != 0
}

// Row returns the bitmask of row y.
func (w *Well) Row(y int) uint8 {
	if y < 0 || y >= len(w.rows) {
		return 0
	}
	return w.rows[y]
}

// Fits reports whether every cell of p is free.
func (w *Well) Fits(p Piece) bool {
	for _, c := range Shapes[p.Kind].Cells {
		if w.Blocked(p.X+c.DX, p.Y+c.DY) {
			return false
		}
	}
	return true
}

// Lock settles p into the well permanently.
func (w *Well) Lock(p Piece) {
	w.grow(p.Top() + 1)
	p.Each(func(x, y int) {
		w.rows[y] |= 1 << x
		w.tops[x] = max(w.tops[x], y)
		w.highest = max(w.highest, y)
	})
}

// grow extends the row slice to at least n rows, doubling capacity.
func (w *Well) grow(n int) {
	if n <= len(w.rows) {
		return
	}
	if n > cap(w.rows) {
		next := make([]uint8, len(w.rows), max(n, 2*cap(w.rows), 64))
		copy(next, w.rows)
		w.rows = next
	}
	w.rows = w.rows[:n]
}

// Highest returns the highest filled row, or -1 when the well is empty.
func (w *Well) Highest() int { return w.highest }

// Height returns the tower height in rows.
func (w *Well) Height() int { return w.highest + 1 }

// Tops returns the topmost filled row of every column, -1 for empty columns.
func (w *Well) Tops() [Width]int { return w.tops }
