package sim

import (
	"time"

	"github.com/san-kum/lifesim/internal/life"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler runs callbacks after a delay on the host's single logical thread.
// A cancelled callback must never run.
type Scheduler interface {
	ScheduleAfter(d time.Duration, fn func()) Handle
	Cancel(h Handle)
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Observer is notified when cells need to be redrawn.
type Observer interface {
	OnCellChanged(x, y int, alive bool)
	// OnGenerationAdvanced asks for a full redraw of f.
	OnGenerationAdvanced(f *life.Field, generation int)
}

type Metric interface {
	Name() string
	Observe(f *life.Field, generation int)
	Value() float64
	Reset()
}

// StepObserver receives every generation of a headless run.
type StepObserver interface {
	OnStep(f *life.Field, generation int)
}

type Config struct {
	Generations int
	StopOnCycle bool
}

type Result struct {
	// Population[i] is the live count of generation i, starting with the seed.
	Population []int
	Final      *life.Field
	Metrics    map[string]float64

	StepsTaken int
	// CycleStart is the first generation of a repeating sequence and
	// CyclePeriod its length; both are zero when no repeat was seen.
	CycleStart  int
	CyclePeriod int
}

// Lifespan is the generation at which the run settled into a cycle, or the
// number of steps taken if it never did.
func (r *Result) Lifespan() int {
	if r.CyclePeriod > 0 {
		return r.CycleStart
	}
	return r.StepsTaken
}
