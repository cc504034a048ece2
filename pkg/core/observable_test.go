package core

import "testing"

func TestObservableValue(t *testing.T) {
	obs := NewObservable(42)
	if obs.Value() != 42 {
		t.Errorf("Expected 42, got %d", obs.Value())
	}
}

func TestObservableSetNotifies(t *testing.T) {
	obs := NewObservable("a")
	var seen []string
	obs.AddListener(func(v string) { seen = append(seen, v) })

	obs.Set("b")
	obs.Set("c")

	if len(seen) != 2 || seen[0] != "b" || seen[1] != "c" {
		t.Errorf("Unexpected notifications: %v", seen)
	}
}

func TestObservableUpdate(t *testing.T) {
	obs := NewObservable(10)
	obs.Update(func(v int) int { return v * 2 })

	if obs.Value() != 20 {
		t.Errorf("Expected 20, got %d", obs.Value())
	}
}

func TestObservableRemoveListener(t *testing.T) {
	obs := NewObservable(0)
	calls := 0
	remove := obs.AddListener(func(int) { calls++ })

	obs.Set(1)
	remove()
	obs.Set(2)

	if calls != 1 {
		t.Errorf("Expected 1 call after removal, got %d", calls)
	}
	if obs.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners, got %d", obs.ListenerCount())
	}
}
