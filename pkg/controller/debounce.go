package controller

import (
	"reflect"
	"time"

	rerrors "github.com/go-drift/rudder/pkg/errors"
)

// debounceEntry is one pending debounce timer. The generation number lets a
// fired timer detect that it has been superseded by a later registration
// under the same key.
type debounceEntry struct {
	timer Timer
	gen   uint64
}

// Debounce schedules action to run once after delay of quiescence.
//
// With a non-empty id, a pending timer under that id is cancelled and
// replaced, so of two calls within delay only the second's action runs,
// delay after the second call. Without an id, or with an explicitly empty
// one, the same replace-on-resubmit rule applies keyed by the action's own
// function identity: re-submitting the identical callback resets its timer,
// while a different callback debounces independently. Function identity is
// the callback's code location, so two closures created at the same source
// line supersede each other even when they capture different values; give
// such callbacks distinct ids.
//
// Fired timers remove themselves from the registry. Actions run through the
// dispatcher when one is set (see SetDispatcher); panics inside an action are
// recovered and reported.
func (s *ScreenController) Debounce(delay time.Duration, action func(), id ...string) {
	if action == nil {
		return
	}
	if len(id) > 0 && id[0] != "" {
		s.debounceNamed(id[0], delay, action)
		return
	}
	s.debounceUnnamed(reflect.ValueOf(action).Pointer(), delay, action)
}

// CancelDebounce cancels the pending timer registered under id, if any.
// It reports whether a timer was cancelled.
func (s *ScreenController) CancelDebounce(id string) bool {
	s.mu.Lock()
	entry := s.named[id]
	if entry != nil {
		delete(s.named, id)
	}
	s.mu.Unlock()

	if entry == nil {
		return false
	}
	entry.timer.Stop()
	return true
}

func (s *ScreenController) debounceNamed(id string, delay time.Duration, action func()) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	if s.named == nil {
		s.named = make(map[string]*debounceEntry)
	}
	if existing := s.named[id]; existing != nil {
		existing.timer.Stop()
	}
	s.gen++
	gen := s.gen
	entry := &debounceEntry{gen: gen}
	entry.timer = s.schedulerLocked().AfterFunc(delay, func() {
		s.fire(action, gen, func() *debounceEntry { return s.named[id] }, func() { delete(s.named, id) })
	})
	s.named[id] = entry
	s.mu.Unlock()
}

func (s *ScreenController) debounceUnnamed(key uintptr, delay time.Duration, action func()) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	if s.unnamed == nil {
		s.unnamed = make(map[uintptr]*debounceEntry)
	}
	if existing := s.unnamed[key]; existing != nil {
		existing.timer.Stop()
	}
	s.gen++
	gen := s.gen
	entry := &debounceEntry{gen: gen}
	entry.timer = s.schedulerLocked().AfterFunc(delay, func() {
		s.fire(action, gen, func() *debounceEntry { return s.unnamed[key] }, func() { delete(s.unnamed, key) })
	})
	s.unnamed[key] = entry
	s.mu.Unlock()
}

// fire runs a debounced action after verifying its registration is still
// current, removing it from the registry first. lookup and remove run with
// s.mu held.
func (s *ScreenController) fire(action func(), gen uint64, lookup func() *debounceEntry, remove func()) {
	s.mu.Lock()
	entry := lookup()
	if entry == nil || entry.gen != gen {
		// Superseded by a later registration under the same key.
		s.mu.Unlock()
		return
	}
	remove()
	dispatch := s.dispatch
	s.mu.Unlock()

	run := func() {
		defer func() {
			if r := recover(); r != nil {
				rerrors.ReportPanic(&rerrors.PanicError{
					Op:         "controller.Debounce",
					Value:      r,
					StackTrace: rerrors.CaptureStack(),
				})
			}
		}()
		action()
	}

	if dispatch != nil {
		dispatch(run)
	} else {
		run()
	}
}
