package core

import "testing"

func TestNotifierNotifiesAllListeners(t *testing.T) {
	n := NewNotifier()
	first := 0
	second := 0

	n.AddListener(func() { first++ })
	n.AddListener(func() { second++ })

	n.NotifyListeners()
	n.NotifyListeners()

	if first != 2 || second != 2 {
		t.Errorf("Expected both listeners called twice, got %d and %d", first, second)
	}
}

func TestNotifierRemove(t *testing.T) {
	n := NewNotifier()
	calls := 0

	remove := n.AddListener(func() { calls++ })
	n.NotifyListeners()
	remove()
	n.NotifyListeners()

	if calls != 1 {
		t.Errorf("Expected 1 call after removal, got %d", calls)
	}
	if n.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners after removal, got %d", n.ListenerCount())
	}
}

func TestNotifierRemoveTwice(t *testing.T) {
	n := NewNotifier()
	remove := n.AddListener(func() {})
	other := 0
	n.AddListener(func() { other++ })

	remove()
	remove() // must not disturb the remaining listener

	n.NotifyListeners()
	if other != 1 {
		t.Errorf("Expected remaining listener to fire once, got %d", other)
	}
}

func TestNotifierListenerMayRemoveItself(t *testing.T) {
	n := NewNotifier()
	calls := 0
	var remove func()
	remove = n.AddListener(func() {
		calls++
		remove()
	})

	n.NotifyListeners()
	n.NotifyListeners()

	if calls != 1 {
		t.Errorf("Expected self-removing listener to fire once, got %d", calls)
	}
}

func TestNotifierNilListener(t *testing.T) {
	n := NewNotifier()
	remove := n.AddListener(nil)
	remove()
	n.NotifyListeners() // must not panic

	if n.ListenerCount() != 0 {
		t.Errorf("Expected 0 listeners, got %d", n.ListenerCount())
	}
}
