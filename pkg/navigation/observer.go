// Package navigation provides the route observer that delivers navigation
// events to screens.
//
// The host toolkit's navigator reports pushes and pops to an Observer; screen
// bindings subscribe with the identity of their own route and receive the
// four events RouteAware describes. A single process-wide Observer (see
// [Default]) is shared by all screens unless a binding is configured with its
// own instance.
package navigation

import "sync"

// RouteAware receives navigation events for a subscribed route.
type RouteAware interface {
	// DidPush is called when the subscribed route is pushed onto the navigator.
	DidPush()

	// DidPushNext is called when a new route is pushed on top of the
	// subscribed route.
	DidPushNext()

	// DidPopNext is called when the route on top of the subscribed route
	// is popped, making the subscribed route visible again.
	DidPopNext()

	// DidPop is called when the subscribed route is popped off the navigator.
	DidPop()
}

// Observer is a multi-subscriber registry of RouteAware objects keyed by
// route identity. Route identities must be comparable; the host decides what
// identifies a route (a route object, a settings struct, a path string).
//
// Observer is safe for concurrent use, though hosts normally drive it from
// a single UI thread.
type Observer struct {
	mu          sync.Mutex
	subscribers map[any][]RouteAware
}

// NewObserver returns an empty Observer.
func NewObserver() *Observer {
	return &Observer{subscribers: make(map[any][]RouteAware)}
}

var (
	defaultMu       sync.Mutex
	defaultObserver = NewObserver()
)

// Default returns the process-wide observer shared by all screens that are
// not configured with their own instance.
func Default() *Observer {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultObserver
}

// SetDefault replaces the process-wide observer and returns the previous one
// so callers can restore it during cleanup.
func SetDefault(o *Observer) *Observer {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultObserver
	if o != nil {
		defaultObserver = o
	}
	return prev
}

// Subscribe registers aware for events on the given route and returns the
// function that unsubscribes it. Subscribing the same object to the same
// route twice is a no-op; calling the returned function more than once is
// safe.
func (o *Observer) Subscribe(aware RouteAware, route any) func() {
	if aware == nil || route == nil {
		return func() {}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	for _, existing := range o.subscribers[route] {
		if existing == aware {
			return func() { o.remove(aware, route) }
		}
	}
	o.subscribers[route] = append(o.subscribers[route], aware)

	return func() { o.remove(aware, route) }
}

// Unsubscribe removes aware from every route it is subscribed to.
// Unsubscribing an object that was never subscribed is a no-op.
func (o *Observer) Unsubscribe(aware RouteAware) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for route := range o.subscribers {
		o.removeLocked(aware, route)
	}
}

func (o *Observer) remove(aware RouteAware, route any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.removeLocked(aware, route)
}

func (o *Observer) removeLocked(aware RouteAware, route any) {
	subs := o.subscribers[route]
	for i, existing := range subs {
		if existing == aware {
			o.subscribers[route] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(o.subscribers[route]) == 0 {
		delete(o.subscribers, route)
	}
}

// DidPush reports that route was pushed on top of previous.
// Subscribers of route receive DidPush; subscribers of previous receive
// DidPushNext.
func (o *Observer) DidPush(route, previous any) {
	for _, aware := range o.snapshot(route) {
		aware.DidPush()
	}
	for _, aware := range o.snapshot(previous) {
		aware.DidPushNext()
	}
}

// DidPop reports that route was popped, revealing previous.
// Subscribers of route receive DidPop; subscribers of previous receive
// DidPopNext.
func (o *Observer) DidPop(route, previous any) {
	for _, aware := range o.snapshot(route) {
		aware.DidPop()
	}
	for _, aware := range o.snapshot(previous) {
		aware.DidPopNext()
	}
}

// snapshot copies a route's subscriber list so callbacks run outside the lock
// and may subscribe or unsubscribe freely.
func (o *Observer) snapshot(route any) []RouteAware {
	if route == nil {
		return nil
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	subs := o.subscribers[route]
	if len(subs) == 0 {
		return nil
	}
	out := make([]RouteAware, len(subs))
	copy(out, subs)
	return out
}
