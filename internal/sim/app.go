package sim

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/lifesim/internal/life"
)

const DefaultTicksPerSecond = 2

// App drives a Field at a fixed tick rate and applies manual toggles between
// ticks. All methods, and every callback it schedules, must run on the
// scheduler's thread.
type App struct {
	field     *life.Field
	scheduler Scheduler
	clock     Clock
	period    time.Duration
	tps       int
	logger    *log.Logger
	observers []Observer

	running    bool
	refreshing bool
	pending    Handle
	generation int
}

type Option func(*App)

func WithClock(c Clock) Option {
	return func(a *App) { a.clock = c }
}

// WithTicksPerSecond sets the target tick rate. Rates that are not positive
// or would give a period shorter than a nanosecond are ignored.
func WithTicksPerSecond(tps int) Option {
	return func(a *App) {
		if tps > 0 && tps <= int(time.Second) {
			a.tps = tps
			a.period = time.Second / time.Duration(tps)
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

func NewApp(field *life.Field, scheduler Scheduler, opts ...Option) *App {
	a := &App{
		field:     field,
		scheduler: scheduler,
		clock:     SystemClock{},
		period:    time.Second / DefaultTicksPerSecond,
		tps:       DefaultTicksPerSecond,
		logger:    log.New(io.Discard),
		observers: make([]Observer, 0),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) AddObserver(o Observer) { a.observers = append(a.observers, o) }

func (a *App) Field() *life.Field    { return a.field }
func (a *App) Running() bool         { return a.running }
func (a *App) Generation() int       { return a.generation }
func (a *App) Period() time.Duration { return a.period }
func (a *App) TicksPerSecond() int   { return a.tps }

// Start advances one generation immediately and begins ticking. It does
// nothing if the loop is already running.
func (a *App) Start() {
	if a.running {
		return
	}
	a.advance()
	a.running = true
	a.pending = a.scheduler.ScheduleAfter(0, a.iteration)
	a.logger.Debug("loop started", "generation", a.generation, "period", a.period)
}

// Stop cancels the pending tick and redraws the last generation. It does
// nothing if the loop is idle. Called from an observer during a redraw, it
// leaves the redraw to the pass already in progress so no observer sees the
// generation twice.
func (a *App) Stop() {
	if !a.running {
		return
	}
	a.scheduler.Cancel(a.pending)
	a.pending = 0
	a.running = false
	a.logger.Debug("loop stopped", "generation", a.generation)
	if !a.refreshing {
		a.refresh()
	}
}

// ToggleState flips one cell and redraws it, whether or not the loop runs.
func (a *App) ToggleState(x, y int) {
	a.field.ToggleCell(x, y)
	alive := a.field.Alive(x, y)
	for _, o := range a.observers {
		o.OnCellChanged(x, y, alive)
	}
}

// Step advances a single generation while the loop is idle.
func (a *App) Step() {
	if a.running {
		return
	}
	a.advance()
	a.refresh()
}

// Clear kills every cell and restarts the generation count.
func (a *App) Clear() { a.Reseed(nil) }

// Reseed clears the field, lets fill populate it and restarts the
// generation count. The loop keeps running if it was.
func (a *App) Reseed(fill func(f *life.Field)) {
	a.field.Reset()
	if fill != nil {
		fill(a.field)
	}
	a.generation = 0
	a.refresh()
}

// iteration renders the settled generation, computes the next one and
// schedules itself for the remainder of the period. A tick that overruns
// schedules the next one immediately rather than dropping generations.
func (a *App) iteration() {
	if !a.running {
		return
	}
	deadline := a.clock.Now().Add(a.period)

	a.refresh()
	if !a.running {
		return
	}
	a.advance()

	wait := deadline.Sub(a.clock.Now())
	if wait < 0 {
		a.logger.Debug("tick overran", "generation", a.generation, "by", -wait)
		wait = 0
	}
	a.pending = a.scheduler.ScheduleAfter(wait, a.iteration)
}

func (a *App) advance() {
	a.field.Update()
	a.generation++
}

func (a *App) refresh() {
	prev := a.refreshing
	a.refreshing = true
	defer func() { a.refreshing = prev }()

	for _, o := range a.observers {
		o.OnGenerationAdvanced(a.field, a.generation)
	}
}
