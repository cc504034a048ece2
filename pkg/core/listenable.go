package core

import "sync"

// Listenable is an object that broadcasts change notifications.
// AddListener returns the function that removes the listener again;
// calling the remove function more than once is safe.
type Listenable interface {
	AddListener(listener func()) (remove func())
}

// Notifier is the standard Listenable implementation: a listener registry
// that invokes every registered listener on NotifyListeners.
//
// Embed Notifier in a controller or service to give it a change-notification
// surface:
//
//	type counter struct {
//	    core.Notifier
//	    value int
//	}
//
//	func (c *counter) Increment() {
//	    c.value++
//	    c.NotifyListeners()
//	}
//
// The zero value is ready to use.
type Notifier struct {
	mu        sync.Mutex
	listeners []func()
}

// NewNotifier returns an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// AddListener registers a listener and returns its remove function.
// Calling the remove function more than once is a no-op.
func (n *Notifier) AddListener(listener func()) func() {
	if listener == nil {
		return func() {}
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	index := len(n.listeners)
	n.listeners = append(n.listeners, listener)

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if index < len(n.listeners) {
			n.listeners[index] = nil
		}
	}
}

// NotifyListeners invokes every registered listener in registration order.
// Listeners are snapshotted before invocation, so a listener may safely
// remove itself or add new listeners; additions are not seen until the next
// notification.
func (n *Notifier) NotifyListeners() {
	n.mu.Lock()
	snapshot := make([]func(), len(n.listeners))
	copy(snapshot, n.listeners)
	n.mu.Unlock()

	for _, listener := range snapshot {
		if listener != nil {
			listener()
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (n *Notifier) ListenerCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	count := 0
	for _, listener := range n.listeners {
		if listener != nil {
			count++
		}
	}
	return count
}
