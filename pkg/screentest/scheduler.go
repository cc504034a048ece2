package screentest

import (
	"sync"
	"time"

	"github.com/go-drift/rudder/pkg/controller"
)

// ManualScheduler implements controller.Scheduler with test-controlled time.
// Timers fire only from Advance, on the calling goroutine, so debounce tests
// need no sleeps. All methods are safe for concurrent use.
type ManualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	mu        sync.Mutex
	remaining time.Duration
	fn        func()
	stopped   bool
	fired     bool
}

// NewManualScheduler returns a scheduler with no pending timers.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc registers fn to fire once Advance has moved time forward by d in
// total.
func (m *ManualScheduler) AfterFunc(d time.Duration, fn func()) controller.Timer {
	timer := &manualTimer{remaining: d, fn: fn}
	m.mu.Lock()
	m.timers = append(m.timers, timer)
	m.mu.Unlock()
	return timer
}

// Advance moves time forward by d, firing due timers in scheduling order.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	timers := make([]*manualTimer, len(m.timers))
	copy(timers, m.timers)
	m.mu.Unlock()

	for _, timer := range timers {
		timer.advance(d)
	}
}

// Pending returns the number of timers that have neither fired nor been
// stopped.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, timer := range m.timers {
		if timer.live() {
			n++
		}
	}
	return n
}

func (t *manualTimer) advance(d time.Duration) {
	t.mu.Lock()
	if t.stopped || t.fired {
		t.mu.Unlock()
		return
	}
	t.remaining -= d
	if t.remaining > 0 {
		t.mu.Unlock()
		return
	}
	t.fired = true
	fn := t.fn
	t.mu.Unlock()
	fn()
}

func (t *manualTimer) live() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.stopped && !t.fired
}

func (t *manualTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
