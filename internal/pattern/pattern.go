package pattern

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/san-kum/lifesim/internal/life"
)

var (
	ErrUnknown = errors.New("pattern: unknown pattern")
	ErrSyntax  = errors.New("pattern: malformed plaintext")
)

type Point struct {
	X, Y int
}

// Pattern is a set of live cells relative to its top-left corner.
type Pattern struct {
	Name        string
	Description string
	Cells       []Point
}

// Bounds returns the width and height of the smallest box holding every cell.
func (p Pattern) Bounds() (int, int) {
	w, h := 0, 0
	for _, c := range p.Cells {
		if c.X+1 > w {
			w = c.X + 1
		}
		if c.Y+1 > h {
			h = c.Y + 1
		}
	}
	return w, h
}

// Place sets the pattern's cells alive with its top-left corner at (ox, oy).
// Nothing is written if the pattern does not fit.
func Place(f *life.Field, p Pattern, ox, oy int) error {
	pw, ph := p.Bounds()
	if len(p.Cells) > 0 && (!f.Contains(ox, oy) || !f.Contains(ox+pw-1, oy+ph-1)) {
		return fmt.Errorf("pattern %q (%dx%d) at (%d,%d) exceeds %dx%d field: %w",
			p.Name, pw, ph, ox, oy, f.Width(), f.Height(), life.ErrOutOfBounds)
	}
	for _, c := range p.Cells {
		f.CellAt(ox+c.X, oy+c.Y).Alive = true
	}
	return nil
}

// PlaceCentered places the pattern in the middle of the field.
func PlaceCentered(f *life.Field, p Pattern) error {
	pw, ph := p.Bounds()
	return Place(f, p, (f.Width()-pw)/2, (f.Height()-ph)/2)
}

// Random brings each cell to life with the given probability. The same seed
// always produces the same field.
func Random(f *life.Field, seed int64, density float64) {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	f.ForEachCell(func(c *life.Cell, x, y int) {
		c.Alive = rng.Float64() < density
	})
}
