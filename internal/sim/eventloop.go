package sim

import (
	"context"
	"sync"
	"time"
)

// EventLoop is a single-goroutine work queue. Everything posted to it, and
// every callback scheduled through it, runs on the goroutine calling Run.
type EventLoop struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	timers map[Handle]*time.Timer
	next   Handle
}

func NewEventLoop() *EventLoop {
	return &EventLoop{
		wake:   make(chan struct{}, 1),
		timers: make(map[Handle]*time.Timer),
	}
}

// Post enqueues fn. It is safe to call from any goroutine, including the loop.
func (l *EventLoop) Post(fn func()) {
	l.mu.Lock()
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *EventLoop) ScheduleAfter(d time.Duration, fn func()) Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.next++
	h := l.next
	l.timers[h] = time.AfterFunc(d, func() {
		l.Post(func() {
			if l.release(h) {
				fn()
			}
		})
	})
	return h
}

// Cancel stops h. Cancelling an unknown or already-run handle does nothing.
func (l *EventLoop) Cancel(h Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if t, ok := l.timers[h]; ok {
		t.Stop()
		delete(l.timers, h)
	}
}

// Pending returns the number of scheduled callbacks that have not run.
func (l *EventLoop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}

func (l *EventLoop) release(h Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.timers[h]
	delete(l.timers, h)
	return ok
}

// Run executes queued work until ctx is done, then drops pending timers.
func (l *EventLoop) Run(ctx context.Context) error {
	defer l.stopTimers()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		l.mu.Lock()
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()

		if len(batch) > 0 {
			for _, fn := range batch {
				fn()
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

func (l *EventLoop) stopTimers() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for h, t := range l.timers {
		t.Stop()
		delete(l.timers, h)
	}
}
