package life

import (
	"errors"
	"math/bits"
	"testing"
)

func newField(t *testing.T, w, h int, alive ...[2]int) *Field {
	t.Helper()
	f, err := New(w, h)
	if err != nil {
		t.Fatalf("new field: %v", err)
	}
	for _, p := range alive {
		f.CellAt(p[0], p[1]).Alive = true
	}
	return f
}

func assertAlive(t *testing.T, f *Field, alive ...[2]int) {
	t.Helper()
	want := make(map[[2]int]bool, len(alive))
	for _, p := range alive {
		want[p] = true
	}
	f.ForEachCell(func(c *Cell, x, y int) {
		if c.Alive != want[[2]int{x, y}] {
			t.Errorf("cell (%d,%d) alive=%v, expected %v\n%s", x, y, c.Alive, want[[2]int{x, y}], f)
		}
	})
}

func TestNewInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative", -1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.w, tt.h); !errors.Is(err, ErrInvalidSize) {
				t.Errorf("expected ErrInvalidSize, got %v", err)
			}
		})
	}
}

func TestResetInvariant(t *testing.T) {
	f := newField(t, 15, 10, [2]int{3, 4}, [2]int{14, 9})
	f.Reset()

	if f.Width() != 15 || f.Height() != 10 {
		t.Fatalf("expected 15x10, got %dx%d", f.Width(), f.Height())
	}

	visited := 0
	f.ForEachCell(func(c *Cell, x, y int) {
		visited++
		if c.Alive {
			t.Errorf("cell (%d,%d) alive after reset", x, y)
		}
	})
	if visited != 150 {
		t.Errorf("expected 150 cells, visited %d", visited)
	}
}

func TestToggleInvolution(t *testing.T) {
	f := newField(t, 4, 3, [2]int{1, 1})

	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			before := f.Alive(x, y)
			f.ToggleCell(x, y)
			if f.Alive(x, y) == before {
				t.Errorf("toggle at (%d,%d) did not flip", x, y)
			}
			f.ToggleCell(x, y)
			if f.Alive(x, y) != before {
				t.Errorf("double toggle at (%d,%d) changed state", x, y)
			}
		}
	}
}

func TestForEachCellRowMajor(t *testing.T) {
	f := newField(t, 3, 2)

	for pass := 0; pass < 2; pass++ {
		var got [][2]int
		f.ForEachCell(func(c *Cell, x, y int) {
			got = append(got, [2]int{x, y})
		})

		want := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
		if len(got) != len(want) {
			t.Fatalf("pass %d: expected %d visits, got %d", pass, len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("pass %d: visit %d = %v, want %v", pass, i, got[i], want[i])
			}
		}
	}
}

func TestForEachCellYieldsLiveCells(t *testing.T) {
	f := newField(t, 3, 3)
	f.ForEachCell(func(c *Cell, x, y int) {
		if x == y {
			c.ToggleState()
		}
	})
	assertAlive(t, f, [2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2})
}

func TestCountLiveNeighborsAllCombinations(t *testing.T) {
	offsets := [8][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

	for mask := 0; mask < 256; mask++ {
		f := newField(t, 3, 3, [2]int{1, 1})
		for bit, p := range offsets {
			if mask&(1<<bit) != 0 {
				f.CellAt(p[0], p[1]).Alive = true
			}
		}
		want := bits.OnesCount(uint(mask))
		if got := f.CountLiveNeighbors(1, 1); got != want {
			t.Fatalf("mask %08b: expected %d neighbours, got %d", mask, want, got)
		}
	}
}

func TestCountLiveNeighborsEdges(t *testing.T) {
	f := newField(t, 3, 3)
	f.ForEachCell(func(c *Cell, x, y int) { c.Alive = true })

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"corner", 0, 0, 3},
		{"far corner", 2, 2, 3},
		{"top edge", 1, 0, 5},
		{"left edge", 0, 1, 5},
		{"center", 1, 1, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.CountLiveNeighbors(tt.x, tt.y); got != tt.want {
				t.Errorf("CountLiveNeighbors(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNoWraparound(t *testing.T) {
	f := newField(t, 5, 5, [2]int{4, 4}, [2]int{4, 0}, [2]int{0, 4})
	if got := f.CountLiveNeighbors(0, 0); got != 0 {
		t.Errorf("expected 0 neighbours at origin, got %d", got)
	}
}

func TestBlockStillLife(t *testing.T) {
	block := [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	f := newField(t, 4, 4, block...)

	f.Update()
	assertAlive(t, f, block...)
}

func TestBlinkerOscillation(t *testing.T) {
	f := newField(t, 3, 3, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})

	f.Update()
	assertAlive(t, f, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1})

	f.Update()
	assertAlive(t, f, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})
}

func TestDeathByIsolation(t *testing.T) {
	f := newField(t, 5, 5, [2]int{2, 2})
	f.Update()
	assertAlive(t, f)
}

func TestDeathByOvercrowding(t *testing.T) {
	f := newField(t, 3, 3, [2]int{1, 1}, [2]int{1, 0}, [2]int{0, 1}, [2]int{2, 1}, [2]int{1, 2})
	if n := f.CountLiveNeighbors(1, 1); n != 4 {
		t.Fatalf("expected 4 neighbours, got %d", n)
	}

	f.Update()
	if f.Alive(1, 1) {
		t.Error("center with 4 neighbours survived")
	}
}

func TestTwoNeighboursKeepState(t *testing.T) {
	f := newField(t, 5, 3, [2]int{0, 0}, [2]int{2, 0}, [2]int{4, 0}, [2]int{4, 2})

	// (1,1) is dead with live (0,0) and (2,0); (3,1) is dead with live (2,0),(4,0),(4,2).
	f.Update()
	if f.Alive(1, 1) {
		t.Error("dead cell with 2 neighbours was born")
	}
	if !f.Alive(3, 1) {
		t.Error("dead cell with 3 neighbours was not born")
	}

	g := newField(t, 3, 3, [2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2})
	g.Update()
	if !g.Alive(1, 1) {
		t.Error("live cell with 2 neighbours died")
	}
}

func TestUpdateDoesNotAlias(t *testing.T) {
	f := newField(t, 3, 3)
	old := f.CellAt(0, 0)

	f.Update()
	old.ToggleState()

	if f.Alive(0, 0) {
		t.Error("cell from previous generation aliases the new grid")
	}
}

func TestOutOfBoundsPanics(t *testing.T) {
	f := newField(t, 4, 3)

	tests := []struct {
		name string
		fn   func()
	}{
		{"CellAt x", func() { f.CellAt(4, 0) }},
		{"CellAt y", func() { f.CellAt(0, 3) }},
		{"CellAt negative", func() { f.CellAt(-1, 0) }},
		{"ToggleCell", func() { f.ToggleCell(0, -1) }},
		{"Alive", func() { f.Alive(9, 9) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok {
					t.Fatalf("expected error panic, got %v", r)
				}
				if !errors.Is(err, ErrOutOfBounds) {
					t.Errorf("expected ErrOutOfBounds, got %v", err)
				}
			}()
			tt.fn()
		})
	}
}

func TestCloneEqualString(t *testing.T) {
	f := newField(t, 3, 2, [2]int{0, 0}, [2]int{2, 1})
	c := f.Clone()

	if !f.Equal(c) {
		t.Fatal("clone not equal to original")
	}
	c.ToggleCell(1, 1)
	if f.Equal(c) {
		t.Error("clone shares cells with original")
	}
	if f.Population() != 2 || c.Population() != 3 {
		t.Errorf("populations = %d, %d", f.Population(), c.Population())
	}

	if got, want := f.String(), "O..\n..O\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func BenchmarkUpdate(b *testing.B) {
	f, _ := New(128, 128)
	f.ForEachCell(func(c *Cell, x, y int) { c.Alive = (x*7+y*13)%5 == 0 })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Update()
	}
}
