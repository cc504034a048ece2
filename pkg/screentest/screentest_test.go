package screentest

import (
	"testing"
	"time"
)

func TestRecordingHost_Rebuilds(t *testing.T) {
	host := NewRecordingHost[string]()

	host.MarkNeedsBuild()
	host.MarkNeedsBuild()

	if host.Rebuilds() != 2 {
		t.Errorf("expected 2 rebuilds, got %d", host.Rebuilds())
	}
}

func TestRecordingHost_FlushFrames(t *testing.T) {
	host := NewRecordingHost[string]()
	order := []int{}

	host.PostFrame(func() { order = append(order, 1) })
	host.PostFrame(func() { order = append(order, 2) })
	if host.PendingFrames() != 2 {
		t.Fatalf("expected 2 pending callbacks, got %d", host.PendingFrames())
	}

	host.FlushFrames()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("expected in-order flush, got %v", order)
	}
	if host.PendingFrames() != 0 {
		t.Errorf("expected queue drained, got %d", host.PendingFrames())
	}
}

func TestRecordingHost_FlushDefersReentrantCallbacks(t *testing.T) {
	host := NewRecordingHost[string]()
	ran := false

	host.PostFrame(func() {
		host.PostFrame(func() { ran = true })
	})
	host.FlushFrames()

	if ran {
		t.Error("expected callback queued during flush to wait for the next flush")
	}
	host.FlushFrames()
	if !ran {
		t.Error("expected deferred callback to run on the next flush")
	}
}

func TestRecordingHost_DefaultViews(t *testing.T) {
	host := NewRecordingHost[string]()
	host.LoadingView = "spinner"
	host.ErrorView = func(m string) string { return "error: " + m }

	if host.BuildLoading() != "spinner" {
		t.Errorf("unexpected loading view %q", host.BuildLoading())
	}
	if host.BuildError("boom") != "error: boom" {
		t.Errorf("unexpected error view %q", host.BuildError("boom"))
	}

	bare := NewRecordingHost[string]()
	if bare.BuildError("boom") != "" {
		t.Errorf("expected zero value without ErrorView, got %q", bare.BuildError("boom"))
	}
}

func TestManualScheduler_FiresAtDeadline(t *testing.T) {
	s := NewManualScheduler()
	fired := false

	s.AfterFunc(100*time.Millisecond, func() { fired = true })

	s.Advance(99 * time.Millisecond)
	if fired {
		t.Error("fired before the deadline")
	}
	s.Advance(1 * time.Millisecond)
	if !fired {
		t.Error("did not fire at the deadline")
	}
	if s.Pending() != 0 {
		t.Errorf("expected no pending timers, got %d", s.Pending())
	}
}

func TestManualScheduler_Stop(t *testing.T) {
	s := NewManualScheduler()
	fired := false

	timer := s.AfterFunc(50*time.Millisecond, func() { fired = true })
	if !timer.Stop() {
		t.Error("expected Stop to report cancellation")
	}
	if timer.Stop() {
		t.Error("expected second Stop to report false")
	}

	s.Advance(time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
}
