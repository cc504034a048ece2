package screen

import (
	"fmt"

	"github.com/go-drift/rudder/pkg/controller"
)

// ViewMode identifies which of the three mutually exclusive render modes a
// frame is in. Loading takes precedence over error.
type ViewMode int

const (
	// ModeContent renders the screen's normal view alone.
	ModeContent ViewMode = iota
	// ModeLoading renders the normal view underneath a scrim with the
	// loading view on top.
	ModeLoading
	// ModeError renders the error view alone, replacing the normal view.
	ModeError
)

// String returns a human-readable representation of the view mode.
func (m ViewMode) String() string {
	switch m {
	case ModeContent:
		return "content"
	case ModeLoading:
		return "loading"
	case ModeError:
		return "error"
	default:
		return fmt.Sprintf("ViewMode(%d)", int(m))
	}
}

// Scrim describes the dismiss-proof barrier drawn between the screen's body
// and the loading view: white, at the given opacity.
type Scrim struct {
	// Alpha is the scrim's opacity in [0, 1].
	Alpha float64
}

// ScrimFor returns the scrim for a loading style: fully opaque white for
// LoadingOpaque, 50%-translucent white otherwise.
func ScrimFor(style controller.LoadingStyle) Scrim {
	if style == controller.LoadingOpaque {
		return Scrim{Alpha: 1.0}
	}
	return Scrim{Alpha: 0.5}
}

// Frame is one evaluation of the render policy. The host maps it onto its
// widget tree:
//
//	switch frame.Mode {
//	case screen.ModeLoading:
//	    // frame.Body underneath, frame.Scrim, frame.Overlay on top
//	case screen.ModeError:
//	    // frame.Body alone
//	default:
//	    // frame.Body alone
//	}
type Frame[V any] struct {
	// Mode selects the render mode.
	Mode ViewMode

	// Body is the view to render: the normal view in content and loading
	// modes, the error view in error mode.
	Body V

	// Overlay is the loading view, set only in loading mode.
	Overlay V

	// Style is the loading style in effect, set only in loading mode.
	Style controller.LoadingStyle

	// Scrim is the barrier between Body and Overlay, set only in loading mode.
	Scrim Scrim
}
