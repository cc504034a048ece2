package screen

import "github.com/go-drift/rudder/pkg/controller"

// Screen supplies the pieces a Binding needs: a controller and the normal
// view tree. V is the host toolkit's view type; the binding never looks
// inside it.
type Screen[V any] interface {
	// CreateController builds the screen's controller. Called exactly once,
	// on first attach; the binding owns the result for its lifetime.
	CreateController() controller.Controller

	// BuildView builds the screen's normal view tree from current state.
	BuildView() V
}

// LoadingBuilder is an optional Screen capability that overrides the host's
// default loading view.
type LoadingBuilder[V any] interface {
	BuildLoading() V
}

// ErrorBuilder is an optional Screen capability that overrides the host's
// default error view.
type ErrorBuilder[V any] interface {
	BuildError(message string) V
}

// Notified is an optional Screen capability invoked on every controller
// change notification, before the re-render is scheduled.
type Notified interface {
	OnNotify(c controller.Controller)
}

// Host is the slice of the toolkit a Binding talks to.
//
// MarkNeedsBuild schedules a re-render that will call the binding's Build.
// PostFrame runs a callback after the in-flight render pass completes, so
// deferred work (OnInit) sees a fully built first frame. BuildLoading and
// BuildError supply the toolkit's default loading and error views, used when
// the screen does not implement the optional builder capabilities: by
// convention a centered indeterminate progress indicator and a centered
// message.
type Host[V any] interface {
	MarkNeedsBuild()
	PostFrame(fn func())
	BuildLoading() V
	BuildError(message string) V
}
