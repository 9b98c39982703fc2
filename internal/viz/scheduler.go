package viz

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/lifesim/internal/sim"
)

// fireMsg carries an expired timer into the Bubble Tea update loop.
type fireMsg struct{ handle sim.Handle }

// Scheduler implements sim.Scheduler on top of a Bubble Tea program. Timers
// run on their own goroutines but only post a message; the callback itself
// runs when Model.Update receives it, so the App never sees concurrent
// calls. A callback cancelled before its message is handled is dropped.
type Scheduler struct {
	mu      sync.Mutex
	send    func(tea.Msg)
	next    sim.Handle
	pending map[sim.Handle]*pendingTimer
}

type pendingTimer struct {
	timer *time.Timer
	fn    func()
}

func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[sim.Handle]*pendingTimer)}
}

// Attach sets where expired timers are delivered, usually tea.Program.Send.
// Timers that expire while nothing is attached are kept until fired or
// cancelled.
func (s *Scheduler) Attach(send func(tea.Msg)) {
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
}

func (s *Scheduler) ScheduleAfter(d time.Duration, fn func()) sim.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	h := s.next
	p := &pendingTimer{fn: fn}
	p.timer = time.AfterFunc(d, func() { s.deliver(fireMsg{handle: h}) })
	s.pending[h] = p
	return h
}

func (s *Scheduler) Cancel(h sim.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.pending[h]; ok {
		p.timer.Stop()
		delete(s.pending, h)
	}
}

// Pending reports how many callbacks are still registered.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Close stops every timer and detaches the program.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for h, p := range s.pending {
		p.timer.Stop()
		delete(s.pending, h)
	}
	s.send = nil
}

func (s *Scheduler) deliver(msg fireMsg) {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

// fire runs the callback for h if it is still registered.
func (s *Scheduler) fire(h sim.Handle) bool {
	s.mu.Lock()
	p, ok := s.pending[h]
	delete(s.pending, h)
	s.mu.Unlock()

	if !ok {
		return false
	}
	p.fn()
	return true
}
