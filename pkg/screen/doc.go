// Package screen binds a screen's view tree to its controller.
//
// A Binding owns one controller per screen instance, subscribes to its
// change notifications and to the host's navigation and app-lifecycle
// channels, and renders one of three mutually exclusive modes (normal,
// loading overlay, or error) by reading controller state.
//
// The host toolkit stays behind two narrow contracts: [Screen] (what the
// user's screen supplies) and [Host] (what the toolkit supplies). A minimal
// screen:
//
//	type profileScreen struct {
//	    ctrl *profileController
//	}
//
//	func (s *profileScreen) CreateController() controller.Controller {
//	    s.ctrl = &profileController{}
//	    return s.ctrl
//	}
//
//	func (s *profileScreen) BuildView() myui.Widget {
//	    return myui.Column(...)
//	}
//
// Failures thrown by BuildView, BuildLoading, or BuildError are not caught
// here; only failures inside AsyncRun-wrapped tasks are captured, by the
// controller. Hook panics propagate to the host's top-level handling.
package screen
