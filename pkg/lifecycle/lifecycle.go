// Package lifecycle provides the app-lifecycle channel screens subscribe to.
//
// The host toolkit feeds global lifecycle transitions into a Service via
// Update; screen bindings subscribe with AddHandler and forward each state
// to the matching controller hook. App is the process-wide instance used by
// default.
package lifecycle

import "sync"

// State represents an app lifecycle state reported by the host.
type State string

const (
	// StateResumed indicates the app is visible and responding to user input.
	StateResumed State = "resumed"

	// StateInactive indicates the app is transitioning (e.g., receiving a
	// phone call or showing a system dialog).
	StateInactive State = "inactive"

	// StatePaused indicates the app is not visible but still running.
	StatePaused State = "paused"

	// StateDetached indicates the app is still hosted but detached from any view.
	StateDetached State = "detached"

	// StateHidden indicates all of the app's views are hidden.
	StateHidden State = "hidden"
)

// Handler is called when the lifecycle state changes.
type Handler func(state State)

// App is the process-wide lifecycle channel. Hosts feed it by default;
// bindings subscribe to it unless configured with a custom Service.
var App = NewService()

// Service manages app lifecycle events for one host.
//
// Service performs no transition validation: states arrive from the host and
// are forwarded to handlers as-is, in the order received.
type Service struct {
	mu       sync.RWMutex
	state    State
	handlers []Handler
}

// NewService returns a Service starting in the resumed state.
func NewService() *Service {
	return &Service{state: StateResumed}
}

// State returns the most recently reported lifecycle state.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// AddHandler registers a handler to be called on lifecycle updates.
// Returns a function that removes the handler; calling it more than once
// is safe.
func (s *Service) AddHandler(handler Handler) func() {
	if handler == nil {
		return func() {}
	}

	s.mu.Lock()
	index := len(s.handlers)
	s.handlers = append(s.handlers, handler)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		if index < len(s.handlers) {
			s.handlers[index] = nil
		}
		s.mu.Unlock()
	}
}

// Update records a host-reported state and notifies every handler.
// Repeated states are forwarded too; dedup is the host's concern.
func (s *Service) Update(newState State) {
	s.mu.Lock()
	s.state = newState
	handlers := make([]Handler, len(s.handlers))
	copy(handlers, s.handlers)
	s.mu.Unlock()

	for _, h := range handlers {
		if h != nil {
			h(newState)
		}
	}
}

// IsResumed returns true if the app is in the resumed state.
func (s *Service) IsResumed() bool {
	return s.State() == StateResumed
}

// IsPaused returns true if the app is paused.
func (s *Service) IsPaused() bool {
	return s.State() == StatePaused
}
