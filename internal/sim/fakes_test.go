package sim

import (
	"fmt"
	"time"

	"github.com/san-kum/lifesim/internal/life"
)

type scheduled struct {
	delay time.Duration
	fn    func()
}

// fakeScheduler records scheduled callbacks and runs them only when told.
type fakeScheduler struct {
	next      Handle
	pending   map[Handle]scheduled
	delays    []time.Duration
	cancelled []Handle
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{pending: make(map[Handle]scheduled)}
}

func (s *fakeScheduler) ScheduleAfter(d time.Duration, fn func()) Handle {
	s.next++
	s.pending[s.next] = scheduled{delay: d, fn: fn}
	s.delays = append(s.delays, d)
	return s.next
}

func (s *fakeScheduler) Cancel(h Handle) {
	if _, ok := s.pending[h]; ok {
		delete(s.pending, h)
		s.cancelled = append(s.cancelled, h)
	}
}

func (s *fakeScheduler) lastDelay() time.Duration {
	return s.delays[len(s.delays)-1]
}

// fire runs every callback pending at the time of the call.
func (s *fakeScheduler) fire() int {
	due := s.pending
	s.pending = make(map[Handle]scheduled)
	for _, sc := range due {
		sc.fn()
	}
	return len(due)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// recorder logs observer notifications in order.
type recorder struct {
	events    []string
	frames    []string
	onRefresh func()
}

func (r *recorder) OnCellChanged(x, y int, alive bool) {
	r.events = append(r.events, fmt.Sprintf("cell %d,%d %v", x, y, alive))
}

func (r *recorder) OnGenerationAdvanced(f *life.Field, generation int) {
	r.events = append(r.events, fmt.Sprintf("generation %d", generation))
	r.frames = append(r.frames, f.String())
	if r.onRefresh != nil {
		r.onRefresh()
	}
}
