package sim

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lifesim/internal/life"
)

var _ = Describe("EventLoop", func() {
	var (
		loop   *EventLoop
		ctx    context.Context
		cancel context.CancelFunc
		done   chan error
	)

	BeforeEach(func() {
		loop = NewEventLoop()
		ctx, cancel = context.WithCancel(context.Background())
		done = make(chan error, 1)
		DeferCleanup(cancel)
	})

	run := func() {
		go func() { done <- loop.Run(ctx) }()
	}

	It("runs posted work before later timers", func() {
		var order []string
		loop.Post(func() { order = append(order, "post") })
		loop.ScheduleAfter(10*time.Millisecond, func() {
			order = append(order, "timer")
			cancel()
		})
		run()

		Eventually(done).Should(Receive(MatchError(context.Canceled)))
		Expect(order).To(Equal([]string{"post", "timer"}))
	})

	It("never runs a cancelled callback", func() {
		ran := false
		h := loop.ScheduleAfter(5*time.Millisecond, func() { ran = true })
		loop.Cancel(h)
		loop.ScheduleAfter(30*time.Millisecond, cancel)
		run()

		Eventually(done).Should(Receive())
		Expect(ran).To(BeFalse())
		Expect(loop.Pending()).To(BeZero())
	})

	It("ignores cancelling an unknown handle", func() {
		Expect(func() { loop.Cancel(Handle(42)) }).NotTo(Panic())
	})

	It("paces an App in real time", func() {
		field, err := life.New(3, 3)
		Expect(err).NotTo(HaveOccurred())
		field.ToggleCell(1, 0)
		field.ToggleCell(1, 1)
		field.ToggleCell(1, 2)

		app := NewApp(field, loop, WithTicksPerSecond(100))
		rec := &recorder{}
		rec.onRefresh = func() {
			if app.Generation() >= 4 {
				app.Stop()
				cancel()
			}
		}
		app.AddObserver(rec)

		loop.Post(app.Start)
		run()

		Eventually(done, time.Second).Should(Receive())
		Expect(app.Running()).To(BeFalse())
		Expect(app.Generation()).To(Equal(4))
		Expect(field.String()).To(Equal(vertical))
		Expect(rec.events).To(Equal([]string{
			"generation 1", "generation 2", "generation 3", "generation 4",
		}))
	})
})
