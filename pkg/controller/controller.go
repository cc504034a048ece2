package controller

import (
	"fmt"
	"sync"

	"github.com/go-drift/rudder/pkg/core"
	rerrors "github.com/go-drift/rudder/pkg/errors"
)

// LoadingStyle selects the visual treatment of the loading overlay.
type LoadingStyle int

const (
	// LoadingTranslucent renders the loading indicator over a 50%-translucent
	// white scrim, keeping the screen's content visible underneath.
	// This is the default style.
	LoadingTranslucent LoadingStyle = iota

	// LoadingOpaque renders the loading indicator over an opaque white scrim
	// that fully hides the screen's content.
	LoadingOpaque
)

// String returns a human-readable representation of the loading style.
func (s LoadingStyle) String() string {
	switch s {
	case LoadingTranslucent:
		return "translucent"
	case LoadingOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("LoadingStyle(%d)", int(s))
	}
}

// Controller is the contract a screen binding drives. It is satisfied by any
// struct that embeds [ScreenController]; override individual hooks by
// redeclaring them on the embedding type.
type Controller interface {
	core.Listenable

	// NotifyListeners broadcasts a change notification.
	NotifyListeners()

	// IsLoading reports whether a guarded async task is in flight.
	IsLoading() bool

	// LoadingStyle returns the style recorded by the most recent StartLoading.
	LoadingStyle() LoadingStyle

	// IsError reports whether an error message is set.
	IsError() bool

	// ErrorMessage returns the current error message, or "" when IsError is false.
	ErrorMessage() string

	// AddSubscription registers a cancellable handle for cleanup on disposal.
	AddSubscription(sub Subscription)

	// Dispose cancels all subscriptions and pending timers. It runs at most
	// once; later calls are no-ops.
	Dispose()

	// IsDisposed reports whether Dispose has run.
	IsDisposed() bool

	// Lifecycle hooks. All have no-op defaults on ScreenController.
	OnInit()
	OnDispose()
	OnDidPush()
	OnDidPushNext()
	OnDidPopNext()
	OnDidPop()
	OnInactive()
	OnPaused()
	OnResumed()
	OnDetached()
	OnHidden()
}

// ScreenController provides loading/error state, the guarded async runner,
// and the subscription and debounce registries. Embed it in your controller
// to eliminate boilerplate:
//
//	type profileController struct {
//	    controller.ScreenController
//	    profile *Profile
//	}
//
//	func (c *profileController) OnInit() {
//	    c.AsyncRun(c.loadProfile)
//	}
//
// The zero value is ready to use. Loading and error state follow the
// single-UI-thread rule: mutate them only from the host's event thread.
// The registries are additionally mutex-guarded because debounce timers
// fire on timer goroutines.
type ScreenController struct {
	core.Notifier

	mu        sync.Mutex
	loading   bool
	style     LoadingStyle
	errMsg    string
	hasError  bool
	subs      []Subscription
	named     map[string]*debounceEntry
	unnamed   map[uintptr]*debounceEntry
	gen       uint64
	scheduler Scheduler
	dispatch  func(func())
	disposed  bool
}

// StartLoading sets the loading flag, records the style (default
// translucent), and notifies. Re-invoking while already loading updates
// the style.
func (s *ScreenController) StartLoading(style ...LoadingStyle) {
	s.mu.Lock()
	s.loading = true
	s.style = styleArg(style)
	s.mu.Unlock()
	s.NotifyListeners()
}

// EndLoading clears the loading flag and notifies.
func (s *ScreenController) EndLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	s.NotifyListeners()
}

// ShowError records an error message and notifies.
// The loading flag is left untouched.
func (s *ScreenController) ShowError(message string) {
	s.mu.Lock()
	s.errMsg = message
	s.hasError = true
	s.mu.Unlock()
	s.NotifyListeners()
}

// ClearError clears the error message and notifies.
func (s *ScreenController) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.hasError = false
	s.mu.Unlock()
	s.NotifyListeners()
}

// IsLoading reports whether a guarded async task is in flight.
func (s *ScreenController) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LoadingStyle returns the style recorded by the most recent StartLoading.
func (s *ScreenController) LoadingStyle() LoadingStyle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.style
}

// IsError reports whether an error message is set.
func (s *ScreenController) IsError() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasError
}

// ErrorMessage returns the current error message, or "" when IsError is false.
func (s *ScreenController) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// IsDisposed reports whether Dispose has run.
func (s *ScreenController) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// Dispose tears the controller down: every pending debounce timer is
// stopped and every registered subscription is cancelled, in registration
// order. Cancellation failures are reported to the global error handler and
// suppressed so teardown always completes. Dispose runs at most once.
func (s *ScreenController) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	subs := s.subs
	named := s.named
	unnamed := s.unnamed
	s.subs = nil
	s.named = nil
	s.unnamed = nil
	s.mu.Unlock()

	for _, entry := range named {
		entry.timer.Stop()
	}
	for _, entry := range unnamed {
		entry.timer.Stop()
	}
	for _, sub := range subs {
		if err := sub.Cancel(); err != nil {
			rerrors.Report(&rerrors.RudderError{
				Op:   "controller.Dispose",
				Kind: rerrors.KindCancel,
				Err:  err,
			})
		}
	}
}

// OnInit is a no-op default implementation.
// Override it to initialize your controller; it runs once, after the
// screen's first render pass.
func (s *ScreenController) OnInit() {}

// OnDispose runs the base teardown. Overrides do not need to call the base:
// the screen binding invokes Dispose itself after OnDispose returns, so
// cleanup happens exactly once per disposal either way.
func (s *ScreenController) OnDispose() { s.Dispose() }

// OnDidPush is called when the screen's route is pushed. No-op by default.
func (s *ScreenController) OnDidPush() {}

// OnDidPushNext is called when another route is pushed on top. No-op by default.
func (s *ScreenController) OnDidPushNext() {}

// OnDidPopNext is called when the covering route is popped. No-op by default.
func (s *ScreenController) OnDidPopNext() {}

// OnDidPop is called when the screen's route is popped. No-op by default.
func (s *ScreenController) OnDidPop() {}

// OnInactive is called when the app becomes inactive. No-op by default.
func (s *ScreenController) OnInactive() {}

// OnPaused is called when the app is paused. No-op by default.
func (s *ScreenController) OnPaused() {}

// OnResumed is called when the app is resumed. No-op by default.
func (s *ScreenController) OnResumed() {}

// OnDetached is called when the app is detached. No-op by default.
func (s *ScreenController) OnDetached() {}

// OnHidden is called when the app's views are hidden. No-op by default.
func (s *ScreenController) OnHidden() {}

// styleArg resolves an optional variadic style argument.
func styleArg(style []LoadingStyle) LoadingStyle {
	if len(style) > 0 {
		return style[0]
	}
	return LoadingTranslucent
}
