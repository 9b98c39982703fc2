package metrics

import "github.com/san-kum/lifesim/internal/life"

// Population reports the live count of the last observed generation.
type Population struct {
	last int
}

func NewPopulation() *Population { return &Population{} }

func (p *Population) Name() string { return "population" }

func (p *Population) Observe(f *life.Field, generation int) {
	p.last = f.Population()
}

func (p *Population) Value() float64 { return float64(p.last) }

func (p *Population) Reset() { p.last = 0 }

// PeakPopulation reports the largest live count seen.
type PeakPopulation struct {
	peak int
}

func NewPeakPopulation() *PeakPopulation { return &PeakPopulation{} }

func (p *PeakPopulation) Name() string { return "peak_population" }

func (p *PeakPopulation) Observe(f *life.Field, generation int) {
	if n := f.Population(); n > p.peak {
		p.peak = n
	}
}

func (p *PeakPopulation) Value() float64 { return float64(p.peak) }

func (p *PeakPopulation) Reset() { p.peak = 0 }
