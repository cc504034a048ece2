// Package controller provides the UI-agnostic half of a screen: loading and
// error state, a guarded async runner, and registries that guarantee
// subscription and timer cleanup on teardown.
//
// Embed [ScreenController] in your own controller type and override the
// lifecycle hooks you need:
//
//	type profileController struct {
//	    controller.ScreenController
//	    profile *Profile
//	}
//
//	func (c *profileController) OnInit() {
//	    c.AsyncRun(func() error {
//	        p, err := fetchProfile()
//	        if err != nil {
//	            return err
//	        }
//	        c.profile = p
//	        return nil
//	    })
//	}
//
// Every state mutation is followed by a change notification; the screen
// binding in package screen subscribes once and re-renders on each one.
//
// AsyncRun is single-flight per controller: while a guarded task is in
// flight, further AsyncRun calls are no-ops. Task failures are captured and
// stored as the error message, never propagated.
package controller
