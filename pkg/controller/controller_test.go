package controller

import "testing"

func TestStartLoadingSetsStateAndNotifies(t *testing.T) {
	c := &ScreenController{}
	notifications := 0
	c.AddListener(func() { notifications++ })

	c.StartLoading()

	if !c.IsLoading() {
		t.Error("Expected loading after StartLoading")
	}
	if c.LoadingStyle() != LoadingTranslucent {
		t.Errorf("Expected default translucent style, got %s", c.LoadingStyle())
	}
	if notifications != 1 {
		t.Errorf("Expected 1 notification, got %d", notifications)
	}
}

func TestStartLoadingWhileLoadingUpdatesStyle(t *testing.T) {
	c := &ScreenController{}
	c.StartLoading(LoadingTranslucent)
	c.StartLoading(LoadingOpaque)

	if !c.IsLoading() {
		t.Error("Expected loading to remain set")
	}
	if c.LoadingStyle() != LoadingOpaque {
		t.Errorf("Expected style updated to opaque, got %s", c.LoadingStyle())
	}
}

func TestEndLoading(t *testing.T) {
	c := &ScreenController{}
	notifications := 0
	c.AddListener(func() { notifications++ })

	c.StartLoading()
	c.EndLoading()

	if c.IsLoading() {
		t.Error("Expected loading cleared after EndLoading")
	}
	if notifications != 2 {
		t.Errorf("Expected a notification per call, got %d", notifications)
	}
}

func TestLoadingReflectsMostRecentCall(t *testing.T) {
	c := &ScreenController{}
	calls := []func(){
		c.EndLoading,
		func() { c.StartLoading() },
		func() { c.StartLoading(LoadingOpaque) },
		c.EndLoading,
		func() { c.StartLoading() },
	}
	want := []bool{false, true, true, false, true}

	for i, call := range calls {
		call()
		if c.IsLoading() != want[i] {
			t.Errorf("After call %d: expected loading=%v, got %v", i, want[i], c.IsLoading())
		}
	}
}

func TestShowErrorDoesNotClearLoading(t *testing.T) {
	c := &ScreenController{}
	c.StartLoading()
	c.ShowError("broken")

	if !c.IsLoading() {
		t.Error("Expected ShowError to leave loading set")
	}
	if !c.IsError() || c.ErrorMessage() != "broken" {
		t.Errorf("Expected error 'broken', got %q (isError=%v)", c.ErrorMessage(), c.IsError())
	}
}

func TestClearError(t *testing.T) {
	c := &ScreenController{}
	notifications := 0
	c.AddListener(func() { notifications++ })

	c.ShowError("x")
	c.ClearError()

	if c.IsError() || c.ErrorMessage() != "" {
		t.Errorf("Expected error cleared, got %q", c.ErrorMessage())
	}
	if notifications != 2 {
		t.Errorf("Expected 2 notifications, got %d", notifications)
	}
}

func TestEmptyErrorMessageIsStillAnError(t *testing.T) {
	c := &ScreenController{}
	c.ShowError("")

	if !c.IsError() {
		t.Error("Expected ShowError(\"\") to set the error state")
	}
}

func TestDisposeRunsOnce(t *testing.T) {
	c := &ScreenController{}
	cancels := 0
	c.AddSubscription(SubscriptionFunc(func() error {
		cancels++
		return nil
	}))

	c.Dispose()
	c.Dispose()

	if cancels != 1 {
		t.Errorf("Expected subscription cancelled once, got %d", cancels)
	}
	if !c.IsDisposed() {
		t.Error("Expected IsDisposed after Dispose")
	}
}

func TestOnDisposeBaseRunsCleanup(t *testing.T) {
	c := &ScreenController{}
	cancelled := false
	c.AddSubscription(SubscriptionFunc(func() error {
		cancelled = true
		return nil
	}))

	c.OnDispose()

	if !cancelled {
		t.Error("Expected base OnDispose to cancel subscriptions")
	}
}

func TestLoadingStyleString(t *testing.T) {
	if LoadingTranslucent.String() != "translucent" {
		t.Errorf("Unexpected string: %s", LoadingTranslucent)
	}
	if LoadingOpaque.String() != "opaque" {
		t.Errorf("Unexpected string: %s", LoadingOpaque)
	}
}
