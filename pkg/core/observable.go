package core

import "sync"

// Observable holds a value and notifies typed listeners when it changes.
// Unlike Notifier, listeners receive the new value, which makes Observable
// suitable for fine-grained subscriptions to derived projections of state
// instead of whole-tree rebuilds.
//
// Observable is safe for concurrent use. Listeners are invoked outside the
// internal lock, on the goroutine that called Set or Update.
type Observable[T any] struct {
	mu        sync.Mutex
	value     T
	listeners []func(T)
}

// NewObservable creates an observable with the given initial value.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set stores a new value and notifies listeners.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	o.value = value
	snapshot := make([]func(T), len(o.listeners))
	copy(snapshot, o.listeners)
	o.mu.Unlock()

	for _, listener := range snapshot {
		if listener != nil {
			listener(value)
		}
	}
}

// Update applies a transformation to the current value and notifies listeners.
func (o *Observable[T]) Update(transform func(T) T) {
	o.mu.Lock()
	o.value = transform(o.value)
	value := o.value
	snapshot := make([]func(T), len(o.listeners))
	copy(snapshot, o.listeners)
	o.mu.Unlock()

	for _, listener := range snapshot {
		if listener != nil {
			listener(value)
		}
	}
}

// AddListener registers a listener and returns its remove function.
func (o *Observable[T]) AddListener(listener func(T)) func() {
	if listener == nil {
		return func() {}
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	index := len(o.listeners)
	o.listeners = append(o.listeners, listener)

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if index < len(o.listeners) {
			o.listeners[index] = nil
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	count := 0
	for _, listener := range o.listeners {
		if listener != nil {
			count++
		}
	}
	return count
}
