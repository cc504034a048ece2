package screen

import (
	"github.com/go-drift/rudder/pkg/controller"
	"github.com/go-drift/rudder/pkg/lifecycle"
	"github.com/go-drift/rudder/pkg/navigation"
)

// Option configures a Binding.
type Option func(*options)

type options struct {
	routeObserver *navigation.Observer
	lifecycle     *lifecycle.Service
}

// WithRouteObserver makes the binding subscribe to a specific route observer
// instead of the process-wide default.
func WithRouteObserver(o *navigation.Observer) Option {
	return func(opts *options) { opts.routeObserver = o }
}

// WithLifecycle makes the binding subscribe to a specific lifecycle service
// instead of the process-wide lifecycle.App.
func WithLifecycle(s *lifecycle.Service) Option {
	return func(opts *options) { opts.lifecycle = s }
}

// Binding is the stateful adapter between one screen instance and the host
// toolkit. It owns the screen's controller, forwards navigation and
// app-lifecycle events to the controller's hooks, and derives the render
// mode from controller state.
//
// The host drives the binding's lifecycle: Attach on first mount, Build on
// every render, Detach on permanent removal. SubscribeRoute is called once a
// stable route identity is available (typically from the host's equivalent
// of a dependencies-changed callback).
type Binding[V any] struct {
	screen Screen[V]
	host   Host[V]
	opts   options

	ctrl            controller.Controller
	removeListener  func()
	removeLifecycle func()
	removeRoute     func()

	attached bool
	detached bool
	initDone bool
}

// NewBinding creates a binding for screen, driven by host.
func NewBinding[V any](screen Screen[V], host Host[V], opts ...Option) *Binding[V] {
	if screen == nil {
		panic("screen: NewBinding requires a Screen")
	}
	if host == nil {
		panic("screen: NewBinding requires a Host")
	}
	b := &Binding[V]{screen: screen, host: host}
	for _, opt := range opts {
		opt(&b.opts)
	}
	return b
}

// Attach wires the binding up on first mount: creates the controller
// (exactly once), subscribes to its change notifications and to the
// app-lifecycle channel, and defers OnInit to after the first render pass.
// Attach is idempotent; a detached binding cannot be re-attached.
func (b *Binding[V]) Attach() {
	if b.attached || b.detached {
		return
	}
	b.attached = true

	b.ctrl = b.screen.CreateController()
	if b.ctrl == nil {
		panic("screen: CreateController returned nil")
	}

	b.removeListener = b.ctrl.AddListener(b.onControllerChanged)
	b.removeLifecycle = b.lifecycleService().AddHandler(b.onLifecycle)

	// OnInit runs after the first frame so context-dependent setup is safe.
	b.host.PostFrame(b.runInit)
}

// SubscribeRoute subscribes the controller's navigation hooks to the given
// route identity on the binding's route observer. Resubscribing (e.g. when
// the route identity changes) replaces the previous subscription.
func (b *Binding[V]) SubscribeRoute(route any) {
	if !b.attached || b.detached {
		return
	}
	if b.removeRoute != nil {
		b.removeRoute()
	}
	b.removeRoute = b.routeObserver().Subscribe(routeForwarder{b.ctrl}, route)
}

// Controller returns the controller owned by this binding, or nil before
// Attach.
func (b *Binding[V]) Controller() controller.Controller {
	return b.ctrl
}

// Build evaluates the render policy against current controller state:
// loading wins over error, error replaces the normal view, otherwise the
// normal view renders alone.
func (b *Binding[V]) Build() Frame[V] {
	if b.ctrl == nil {
		return Frame[V]{Mode: ModeContent, Body: b.screen.BuildView()}
	}
	switch {
	case b.ctrl.IsLoading():
		style := b.ctrl.LoadingStyle()
		return Frame[V]{
			Mode:    ModeLoading,
			Body:    b.screen.BuildView(),
			Overlay: b.loadingView(),
			Style:   style,
			Scrim:   ScrimFor(style),
		}
	case b.ctrl.IsError():
		return Frame[V]{Mode: ModeError, Body: b.errorView(b.ctrl.ErrorMessage())}
	default:
		return Frame[V]{Mode: ModeContent, Body: b.screen.BuildView()}
	}
}

// Detach tears the binding down on permanent removal, exactly once:
// unsubscribes the route observer, the lifecycle channel, and the
// controller's notifications, then runs OnDispose followed by the
// controller's guaranteed cleanup, in that order.
func (b *Binding[V]) Detach() {
	if !b.attached || b.detached {
		return
	}
	b.detached = true

	if b.removeRoute != nil {
		b.removeRoute()
		b.removeRoute = nil
	}
	if b.removeLifecycle != nil {
		b.removeLifecycle()
		b.removeLifecycle = nil
	}
	if b.removeListener != nil {
		b.removeListener()
		b.removeListener = nil
	}

	b.ctrl.OnDispose()
	// Cleanup is owed once per disposal whether or not the override called
	// the base; Dispose is idempotent.
	b.ctrl.Dispose()
}

func (b *Binding[V]) runInit() {
	if b.initDone || b.detached {
		return
	}
	b.initDone = true
	b.ctrl.OnInit()
}

func (b *Binding[V]) onControllerChanged() {
	if b.detached {
		return
	}
	if n, ok := b.screen.(Notified); ok {
		n.OnNotify(b.ctrl)
	}
	b.host.MarkNeedsBuild()
}

func (b *Binding[V]) onLifecycle(state lifecycle.State) {
	if b.detached {
		return
	}
	switch state {
	case lifecycle.StateInactive:
		b.ctrl.OnInactive()
	case lifecycle.StatePaused:
		b.ctrl.OnPaused()
	case lifecycle.StateResumed:
		b.ctrl.OnResumed()
	case lifecycle.StateDetached:
		b.ctrl.OnDetached()
	case lifecycle.StateHidden:
		b.ctrl.OnHidden()
	}
}

func (b *Binding[V]) loadingView() V {
	if lb, ok := b.screen.(LoadingBuilder[V]); ok {
		return lb.BuildLoading()
	}
	return b.host.BuildLoading()
}

func (b *Binding[V]) errorView(message string) V {
	if eb, ok := b.screen.(ErrorBuilder[V]); ok {
		return eb.BuildError(message)
	}
	return b.host.BuildError(message)
}

func (b *Binding[V]) routeObserver() *navigation.Observer {
	if b.opts.routeObserver != nil {
		return b.opts.routeObserver
	}
	return navigation.Default()
}

func (b *Binding[V]) lifecycleService() *lifecycle.Service {
	if b.opts.lifecycle != nil {
		return b.opts.lifecycle
	}
	return lifecycle.App
}

// routeForwarder adapts a controller's navigation hooks to the
// navigation.RouteAware interface.
type routeForwarder struct {
	ctrl controller.Controller
}

func (f routeForwarder) DidPush()     { f.ctrl.OnDidPush() }
func (f routeForwarder) DidPushNext() { f.ctrl.OnDidPushNext() }
func (f routeForwarder) DidPopNext()  { f.ctrl.OnDidPopNext() }
func (f routeForwarder) DidPop()      { f.ctrl.OnDidPop() }
