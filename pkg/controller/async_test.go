package controller

import (
	"errors"
	"testing"

	rerrors "github.com/go-drift/rudder/pkg/errors"
)

func TestAsyncRunSuccess(t *testing.T) {
	c := &ScreenController{}
	ran := 0

	c.AsyncRun(func() error {
		ran++
		if !c.IsLoading() {
			t.Error("Expected loading while the task runs")
		}
		return nil
	})

	if ran != 1 {
		t.Errorf("Expected task invoked exactly once, got %d", ran)
	}
	if c.IsLoading() {
		t.Error("Expected loading cleared after the task settles")
	}
	if c.IsError() {
		t.Errorf("Expected no error, got %q", c.ErrorMessage())
	}
}

func TestAsyncRunFailure(t *testing.T) {
	c := &ScreenController{}

	c.AsyncRun(func() error {
		return errors.New("x")
	})

	if c.IsLoading() {
		t.Error("Expected loading cleared after a failing task")
	}
	if c.ErrorMessage() != "x" {
		t.Errorf("Expected error message 'x', got %q", c.ErrorMessage())
	}
}

func TestAsyncRunSingleFlight(t *testing.T) {
	c := &ScreenController{}
	inner := 0

	c.AsyncRun(func() error {
		// Re-entrant call while the guard is held must not run its task.
		c.AsyncRun(func() error {
			inner++
			return nil
		})
		return nil
	})

	if inner != 0 {
		t.Errorf("Expected guarded task to be skipped, ran %d times", inner)
	}
	if c.IsLoading() {
		t.Error("Expected loading cleared after the outer task settles")
	}
}

func TestAsyncRunSkippedWhileLoading(t *testing.T) {
	c := &ScreenController{}
	c.StartLoading()
	ran := false

	c.AsyncRun(func() error {
		ran = true
		return nil
	})

	if ran {
		t.Error("Expected AsyncRun to be a no-op while loading")
	}
	if !c.IsLoading() {
		t.Error("Expected the pre-existing loading state to survive")
	}
}

func TestAsyncRunStyle(t *testing.T) {
	c := &ScreenController{}
	c.AsyncRun(func() error {
		if c.LoadingStyle() != LoadingOpaque {
			t.Errorf("Expected opaque style during the task, got %s", c.LoadingStyle())
		}
		return nil
	}, LoadingOpaque)
}

func TestAsyncRunRecoversPanic(t *testing.T) {
	rerrors.SetHandler(&discardHandler{})
	defer rerrors.SetHandler(nil)

	c := &ScreenController{}
	c.AsyncRun(func() error {
		panic("torn cable")
	})

	if c.IsLoading() {
		t.Error("Expected loading cleared after a panicking task")
	}
	if c.ErrorMessage() != "torn cable" {
		t.Errorf("Expected panic description as error message, got %q", c.ErrorMessage())
	}
}

func TestAsyncRunNotificationSequence(t *testing.T) {
	c := &ScreenController{}
	var loadingStates []bool
	c.AddListener(func() { loadingStates = append(loadingStates, c.IsLoading()) })

	c.AsyncRun(func() error { return nil })

	// One notification entering loading, one leaving it.
	if len(loadingStates) != 2 || !loadingStates[0] || loadingStates[1] {
		t.Errorf("Unexpected notification sequence: %v", loadingStates)
	}
}

func TestAsyncRunNilTask(t *testing.T) {
	c := &ScreenController{}
	c.AsyncRun(nil)

	if c.IsLoading() {
		t.Error("Expected nil task to leave the controller idle")
	}
}

// discardHandler silences expected error reports during tests.
type discardHandler struct{}

func (discardHandler) HandleError(*rerrors.RudderError) {}
func (discardHandler) HandlePanic(*rerrors.PanicError)  {}
