package metrics

import "github.com/san-kum/lifesim/internal/life"

// Activity is the mean fraction of cells that changed state between
// consecutive observed generations. A still life scores 0.
type Activity struct {
	prev    *life.Field
	sum     float64
	samples int
}

func NewActivity() *Activity { return &Activity{} }

func (a *Activity) Name() string { return "activity" }

func (a *Activity) Observe(f *life.Field, generation int) {
	if a.prev != nil && a.prev.Width() == f.Width() && a.prev.Height() == f.Height() {
		changed := 0
		f.ForEachCell(func(c *life.Cell, x, y int) {
			if c.Alive != a.prev.Alive(x, y) {
				changed++
			}
		})
		a.sum += float64(changed) / float64(f.Width()*f.Height())
		a.samples++
	}
	a.prev = f.Clone()
}

func (a *Activity) Value() float64 {
	if a.samples == 0 {
		return 0
	}
	return a.sum / float64(a.samples)
}

func (a *Activity) Reset() {
	a.prev = nil
	a.sum = 0
	a.samples = 0
}
