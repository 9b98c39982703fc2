package life

import "strings"

// Field is a bounded width × height grid of cells stored row-major.
type Field struct {
	width, height int
	cells         []Cell
}

// New allocates a field of dead cells.
func New(width, height int) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	f := &Field{width: width, height: height}
	f.Reset()
	return f, nil
}

func (f *Field) Width() int  { return f.width }
func (f *Field) Height() int { return f.height }

// Reset replaces the grid with freshly allocated dead cells.
func (f *Field) Reset() {
	f.cells = make([]Cell, f.width*f.height)
}

// Contains reports whether (x, y) addresses a cell of the field.
func (f *Field) Contains(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}

func (f *Field) index(x, y int) int {
	if !f.Contains(x, y) {
		panic(&BoundsError{X: x, Y: y, Width: f.width, Height: f.height})
	}
	return y*f.width + x
}

// CellAt returns the cell in column x, row y. Coordinates outside the field
// are a programming error and panic with a *BoundsError.
func (f *Field) CellAt(x, y int) *Cell {
	return &f.cells[f.index(x, y)]
}

// Alive reports the state of the cell at (x, y). Same bounds contract as CellAt.
func (f *Field) Alive(x, y int) bool {
	return f.cells[f.index(x, y)].Alive
}

// ToggleCell flips the cell at (x, y). Same bounds contract as CellAt.
func (f *Field) ToggleCell(x, y int) {
	f.cells[f.index(x, y)].ToggleState()
}

// ForEachCell visits every cell once, row by row, x ascending within a row.
func (f *Field) ForEachCell(visit func(c *Cell, x, y int)) {
	for y := 0; y < f.height; y++ {
		row := f.cells[y*f.width : (y+1)*f.width]
		for x := range row {
			visit(&row[x], x, y)
		}
	}
}

// CountLiveNeighbors counts live cells in the Moore neighbourhood of (x, y).
// Positions beyond the edges are skipped.
func (f *Field) CountLiveNeighbors(x, y int) int {
	return countNeighbors(f.cells, f.width, f.height, x, y)
}

func countNeighbors(cells []Cell, w, h, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if (dx == 0 && dy == 0) || nx < 0 || nx >= w {
				continue
			}
			if cells[ny*w+nx].Alive {
				n++
			}
		}
	}
	return n
}

// Update advances the field by one generation. The next generation starts as
// a copy of the current one; a cell with exactly three live neighbours is set
// alive, fewer than two or more than three sets it dead, and exactly two
// leaves the copied state in place. Counts are always taken from the current
// generation, and the grid is swapped only once the new one is complete.
func (f *Field) Update() {
	next := make([]Cell, len(f.cells))
	copy(next, f.cells)

	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			n := countNeighbors(f.cells, f.width, f.height, x, y)
			idx := y*f.width + x
			if n == 3 {
				next[idx].Alive = true
			} else if n < 2 || n > 3 {
				next[idx].Alive = false
			}
		}
	}

	f.cells = next
}

// Population returns the number of live cells.
func (f *Field) Population() int {
	n := 0
	for i := range f.cells {
		if f.cells[i].Alive {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the field.
func (f *Field) Clone() *Field {
	c := &Field{width: f.width, height: f.height, cells: make([]Cell, len(f.cells))}
	copy(c.cells, f.cells)
	return c
}

// Equal reports whether g has the same dimensions and cell states as f.
func (f *Field) Equal(g *Field) bool {
	if g == nil || f.width != g.width || f.height != g.height {
		return false
	}
	for i := range f.cells {
		if f.cells[i] != g.cells[i] {
			return false
		}
	}
	return true
}

// String renders the field as plaintext rows, 'O' for alive and '.' for dead.
func (f *Field) String() string {
	var b strings.Builder
	b.Grow((f.width + 1) * f.height)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if f.cells[y*f.width+x].Alive {
				b.WriteByte('O')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
