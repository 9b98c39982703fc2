package sim

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesim/internal/life"
)

const (
	vertical   = ".O.\n.O.\n.O.\n"
	horizontal = "...\nOOO\n...\n"
)

var _ = Describe("App", func() {
	var (
		field *life.Field
		sched *fakeScheduler
		clock *fakeClock
		rec   *recorder
		app   *App
	)

	BeforeEach(func() {
		var err error
		field, err = life.New(3, 3)
		Expect(err).NotTo(HaveOccurred())
		field.ToggleCell(1, 0)
		field.ToggleCell(1, 1)
		field.ToggleCell(1, 2)

		sched = newFakeScheduler()
		clock = &fakeClock{now: time.Unix(0, 0)}
		rec = &recorder{}
		app = NewApp(field, sched, WithClock(clock))
		app.AddObserver(rec)
	})

	Describe("Start", func() {
		It("advances once and schedules the first tick without delay", func() {
			app.Start()

			Expect(app.Running()).To(BeTrue())
			Expect(app.Generation()).To(Equal(1))
			Expect(field.String()).To(Equal(horizontal))
			Expect(sched.pending).To(HaveLen(1))
			Expect(sched.lastDelay()).To(BeZero())
			Expect(rec.events).To(BeEmpty())
		})

		It("does nothing when already running", func() {
			app.Start()
			app.Start()

			Expect(app.Generation()).To(Equal(1))
			Expect(sched.pending).To(HaveLen(1))
			Expect(sched.delays).To(HaveLen(1))
		})

		It("restarts after a stop", func() {
			app.Start()
			app.Stop()
			app.Start()

			Expect(app.Running()).To(BeTrue())
			Expect(app.Generation()).To(Equal(2))
			Expect(sched.pending).To(HaveLen(1))
		})
	})

	Describe("a tick", func() {
		It("renders the settled generation before computing the next", func() {
			app.Start()
			Expect(sched.fire()).To(Equal(1))

			Expect(rec.events).To(Equal([]string{"generation 1"}))
			Expect(rec.frames).To(Equal([]string{horizontal}))
			Expect(field.String()).To(Equal(vertical))
			Expect(app.Generation()).To(Equal(2))
		})

		It("waits a full period when the tick costs nothing", func() {
			app.Start()
			sched.fire()

			Expect(app.Period()).To(Equal(500 * time.Millisecond))
			Expect(sched.lastDelay()).To(Equal(500 * time.Millisecond))
		})

		It("shortens the wait by the time spent in the tick", func() {
			rec.onRefresh = func() { clock.Advance(200 * time.Millisecond) }
			app.Start()
			sched.fire()

			Expect(sched.lastDelay()).To(Equal(300 * time.Millisecond))
		})

		It("schedules the next tick immediately after an overrun", func() {
			rec.onRefresh = func() { clock.Advance(700 * time.Millisecond) }
			app.Start()
			sched.fire()
			Expect(sched.lastDelay()).To(BeZero())

			sched.fire()
			Expect(app.Generation()).To(Equal(3))
		})

		It("keeps a single tick chain", func() {
			app.Start()
			for i := 0; i < 5; i++ {
				Expect(sched.fire()).To(Equal(1))
			}

			Expect(app.Generation()).To(Equal(6))
			Expect(sched.pending).To(HaveLen(1))
		})

		It("stops cleanly when an observer stops the loop mid-tick", func() {
			rec.onRefresh = func() { app.Stop() }
			app.Start()
			sched.fire()

			Expect(app.Running()).To(BeFalse())
			Expect(app.Generation()).To(Equal(1))
			Expect(sched.pending).To(BeEmpty())
			Expect(rec.events).To(Equal([]string{"generation 1"}))
		})

		It("draws the final generation once for every observer when stopped mid-tick", func() {
			later := &recorder{}
			rec.onRefresh = func() { app.Stop() }
			app.AddObserver(later)
			app.Start()
			sched.fire()

			Expect(rec.events).To(Equal([]string{"generation 1"}))
			Expect(later.events).To(Equal([]string{"generation 1"}))
		})
	})

	Describe("Stop", func() {
		It("cancels the pending tick and redraws the last generation", func() {
			app.Start()
			sched.fire()
			app.Stop()

			Expect(app.Running()).To(BeFalse())
			Expect(sched.pending).To(BeEmpty())
			Expect(sched.cancelled).To(HaveLen(1))
			Expect(rec.events).To(Equal([]string{"generation 1", "generation 2"}))
			Expect(rec.frames[1]).To(Equal(vertical))
		})

		It("does nothing when idle", func() {
			Expect(app.Stop).NotTo(Panic())
			app.Stop()

			Expect(sched.cancelled).To(BeEmpty())
			Expect(rec.events).To(BeEmpty())
		})
	})

	Describe("ToggleState", func() {
		It("flips the cell and redraws only that cell", func() {
			app.ToggleState(0, 0)
			Expect(field.Alive(0, 0)).To(BeTrue())

			app.ToggleState(0, 0)
			Expect(field.Alive(0, 0)).To(BeFalse())
			Expect(rec.events).To(Equal([]string{"cell 0,0 true", "cell 0,0 false"}))
		})

		It("applies while the loop is running", func() {
			app.Start()
			app.ToggleState(2, 2)

			Expect(field.Alive(2, 2)).To(BeTrue())
			Expect(app.Running()).To(BeTrue())
			Expect(sched.pending).To(HaveLen(1))
			Expect(rec.events).To(Equal([]string{"cell 2,2 true"}))
		})

		It("panics on coordinates outside the field", func() {
			Expect(func() { app.ToggleState(3, 0) }).To(PanicWith(MatchError(life.ErrOutOfBounds)))
		})
	})

	Describe("Step and Clear", func() {
		It("steps a single generation while idle", func() {
			app.Step()

			Expect(app.Generation()).To(Equal(1))
			Expect(field.String()).To(Equal(horizontal))
			Expect(rec.events).To(Equal([]string{"generation 1"}))
		})

		It("does not step while running", func() {
			app.Start()
			app.Step()

			Expect(app.Generation()).To(Equal(1))
		})

		It("clears the field and the generation count", func() {
			app.Start()
			sched.fire()
			app.Clear()

			Expect(app.Generation()).To(BeZero())
			Expect(field.Population()).To(BeZero())
			Expect(app.Running()).To(BeTrue())
		})

		It("reseeds the field and redraws it", func() {
			app.Step()
			app.Reseed(func(f *life.Field) { f.ToggleCell(0, 0) })

			Expect(app.Generation()).To(BeZero())
			Expect(field.String()).To(Equal("O..\n...\n...\n"))
			Expect(rec.events).To(Equal([]string{"generation 1", "generation 0"}))
		})
	})

	Describe("options", func() {
		It("derives the period from the tick rate", func() {
			Expect(NewApp(field, sched, WithTicksPerSecond(4)).Period()).To(Equal(250 * time.Millisecond))
			Expect(NewApp(field, sched, WithTicksPerSecond(0)).Period()).To(Equal(500 * time.Millisecond))
		})

		It("ignores rates faster than one tick per nanosecond", func() {
			a := NewApp(field, sched, WithTicksPerSecond(2_000_000_000))
			Expect(a.Period()).To(Equal(500 * time.Millisecond))
			Expect(a.TicksPerSecond()).To(Equal(DefaultTicksPerSecond))

			Expect(NewApp(field, sched, WithTicksPerSecond(int(time.Second))).Period()).To(Equal(time.Nanosecond))
		})
	})
})
