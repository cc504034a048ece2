package controller

import (
	rerrors "github.com/go-drift/rudder/pkg/errors"
)

// AsyncRun executes task under the loading guard.
//
// While a guarded task is already in flight, AsyncRun is a no-op: the task
// is not invoked. Otherwise it starts loading with the given style (default
// translucent), runs the task, and on a non-nil error or a panic stores the
// failure's description via ShowError. EndLoading always runs, whatever the
// task's outcome. Failures are never propagated to the caller; retry is the
// caller's responsibility.
//
// The task may yield internally (dispatching events that re-enter the
// controller); the guard keeps a second AsyncRun started during such
// interleaving from running concurrently. Panics are additionally reported
// to the global error handler.
func (s *ScreenController) AsyncRun(task func() error, style ...LoadingStyle) {
	if task == nil {
		return
	}
	if !s.tryStartLoading(styleArg(style)) {
		return
	}

	defer s.EndLoading()
	defer func() {
		if r := recover(); r != nil {
			rerrors.ReportPanic(&rerrors.PanicError{
				Op:         "controller.AsyncRun",
				Value:      r,
				StackTrace: rerrors.CaptureStack(),
			})
			s.ShowError(rerrors.Describe(r))
		}
	}()

	if err := task(); err != nil {
		s.ShowError(err.Error())
	}
}

// tryStartLoading atomically claims the loading guard.
// Returns false if a task is already in flight.
func (s *ScreenController) tryStartLoading(style LoadingStyle) bool {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return false
	}
	s.loading = true
	s.style = style
	s.mu.Unlock()
	s.NotifyListeners()
	return true
}
