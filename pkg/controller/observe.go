package controller

import "github.com/go-drift/rudder/pkg/core"

// Observe subscribes a controller to an observable and registers the
// subscription for automatic cleanup on disposal.
//
//	func (c *searchController) OnInit() {
//	    controller.Observe(c, c.results, func([]string) {
//	        c.NotifyListeners()
//	    })
//	}
func Observe[T any](c Controller, obs *core.Observable[T], fn func(T)) {
	if obs == nil || fn == nil {
		return
	}
	remove := obs.AddListener(fn)
	c.AddSubscription(SubscriptionFunc(func() error {
		remove()
		return nil
	}))
}

// Use forwards an upstream listenable's notifications through the
// controller's own change notifications, with automatic cleanup on disposal.
// Screens that read shared state can re-render on its changes without a
// separate subscription.
func Use(c Controller, l core.Listenable) {
	if l == nil {
		return
	}
	remove := l.AddListener(c.NotifyListeners)
	c.AddSubscription(SubscriptionFunc(func() error {
		remove()
		return nil
	}))
}
