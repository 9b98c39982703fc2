package viz

import (
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/metrics"
)

// board records population history and the last edited cell as the App
// reports them. It is shared by every copy of Model.
type board struct {
	population   []float64
	peak         int
	activity     *metrics.Activity
	generation   int
	edited       bool
	lastX, lastY int
}

func newBoard() *board {
	return &board{
		population: make([]float64, 0, historyCapacity),
		activity:   metrics.NewActivity(),
	}
}

func (b *board) OnCellChanged(x, y int, alive bool) {
	b.lastX, b.lastY, b.edited = x, y, true
}

func (b *board) OnGenerationAdvanced(f *life.Field, generation int) {
	pop := f.Population()

	switch {
	case generation == 0 || generation < b.generation:
		b.population = b.population[:0]
		b.peak = 0
		b.activity.Reset()
		b.edited = false
	case generation == b.generation && len(b.population) > 0:
		// Redraw of a generation already recorded, e.g. after Stop.
		b.population[len(b.population)-1] = float64(pop)
		b.peak = max(b.peak, pop)
		return
	}

	b.generation = generation
	b.peak = max(b.peak, pop)
	b.activity.Observe(f, generation)
	if len(b.population) == historyCapacity {
		copy(b.population, b.population[1:])
		b.population = b.population[:historyCapacity-1]
	}
	b.population = append(b.population, float64(pop))
}
