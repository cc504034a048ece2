package controller

import "time"

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the callback was
	// prevented from running.
	Stop() bool
}

// Scheduler provides time for debounce. The default implementation uses
// system timers. Tests can inject a manual scheduler via SetScheduler to
// control debounce timing deterministically.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// systemScheduler schedules on real time.
type systemScheduler struct{}

func (systemScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// SetScheduler replaces the controller's debounce scheduler.
// Call before scheduling any debounce; pending timers keep their original
// scheduler.
func (s *ScreenController) SetScheduler(scheduler Scheduler) {
	s.mu.Lock()
	s.scheduler = scheduler
	s.mu.Unlock()
}

// SetDispatcher routes fired debounce actions through fn, letting hosts hop
// timer callbacks back onto the UI thread (timers fire on timer goroutines).
// Without a dispatcher, actions run directly on the timer goroutine.
func (s *ScreenController) SetDispatcher(fn func(func())) {
	s.mu.Lock()
	s.dispatch = fn
	s.mu.Unlock()
}

// schedulerLocked returns the active scheduler. Callers hold s.mu.
func (s *ScreenController) schedulerLocked() Scheduler {
	if s.scheduler != nil {
		return s.scheduler
	}
	return systemScheduler{}
}
