package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/lifesim/internal/life"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"

	aliveGlyph = "██"
	deadGlyph  = "  "
)

// LiveRenderer prints every refreshed generation as a framed text grid.
type LiveRenderer struct {
	out    io.Writer
	title  string
	clear  bool
	frames int
	edits  int
}

// NewLiveRenderer writes frames to out. With clear set each frame replaces
// the previous one on an ANSI terminal.
func NewLiveRenderer(out io.Writer, title string, clear bool) *LiveRenderer {
	return &LiveRenderer{out: out, title: title, clear: clear}
}

func (r *LiveRenderer) OnCellChanged(x, y int, alive bool) {
	r.edits++
}

func (r *LiveRenderer) OnGenerationAdvanced(f *life.Field, generation int) {
	r.frames++
	fmt.Fprint(r.out, r.render(f, generation))
}

// Frames returns the number of full frames printed.
func (r *LiveRenderer) Frames() int { return r.frames }

func (r *LiveRenderer) render(f *life.Field, generation int) string {
	var b strings.Builder
	if r.clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(fmt.Sprintf("  %s  gen=%d  pop=%d\n", r.title, generation, f.Population()))

	border := "  +" + strings.Repeat("-", f.Width()*2) + "+\n"
	b.WriteString(border)
	for y := 0; y < f.Height(); y++ {
		b.WriteString("  |")
		for x := 0; x < f.Width(); x++ {
			if f.Alive(x, y) {
				b.WriteString(aliveGlyph)
			} else {
				b.WriteString(deadGlyph)
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)

	if r.edits > 0 {
		b.WriteString(fmt.Sprintf("  %d manual edits\n", r.edits))
	}
	return b.String()
}

func (r *LiveRenderer) Start() {
	if r.clear {
		fmt.Fprint(r.out, hideCursor)
	}
}

func (r *LiveRenderer) Stop() {
	if r.clear {
		fmt.Fprint(r.out, showCursor)
	}
}
