// Package core provides the change-notification primitives the rest of
// rudder is built on.
//
// Listenable is the surface the screen binding consumes: subscribe once,
// get back the function that unsubscribes. Notifier is the standard
// implementation, designed to be embedded:
//
//	type profileController struct {
//	    controller.ScreenController // embeds core.Notifier
//	}
//
// Observable provides thread-safe reactive values for code that wants
// fine-grained, typed subscriptions instead of whole-screen notifications:
//
//	results := core.NewObservable([]string(nil))
//	remove := results.AddListener(func(rs []string) { ... })
//	defer remove()
package core
