package controller

import (
	"errors"
	"reflect"
)

// Subscription is a cancellable handle, typically a stream or observer
// subscription. Cancel must complete the cancellation before returning and
// must tolerate being the handle's only Cancel call; the controller
// guarantees it invokes Cancel at most once per registration.
type Subscription interface {
	Cancel() error
}

// SubscriptionFunc adapts a plain function to the Subscription interface.
//
//	remove := results.AddListener(onResults)
//	c.AddSubscription(controller.SubscriptionFunc(func() error {
//	    remove()
//	    return nil
//	}))
//
// Func-typed handles are deregistered by their function identity, so two
// SubscriptionFunc values created at the same code location count as the
// same handle for CancelSubscription. Wrap the function in a small struct
// type when individual handles from one location must be cancellable
// separately.
type SubscriptionFunc func() error

// Cancel calls f.
func (f SubscriptionFunc) Cancel() error {
	if f == nil {
		return nil
	}
	return f()
}

// AddSubscription registers a handle for automatic cleanup on disposal.
// If the controller is already disposed the handle is cancelled immediately,
// with any failure reported through CancelSubscription's usual path.
func (s *ScreenController) AddSubscription(sub Subscription) {
	if sub == nil {
		return
	}
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		sub.Cancel()
		return
	}
	s.subs = append(s.subs, sub)
	s.mu.Unlock()
}

// CancelSubscription cancels one handle and removes it from the registry.
// The handle is deregistered only after its cancellation has completed, and
// it is deregistered even when cancellation fails, so teardown never cancels
// it a second time. The cancellation error, if any, is returned.
func (s *ScreenController) CancelSubscription(sub Subscription) error {
	if sub == nil {
		return nil
	}
	err := sub.Cancel()

	s.mu.Lock()
	for i, existing := range s.subs {
		if sameSubscription(existing, sub) {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return err
}

// sameSubscription reports whether two handles are the same registration.
// Handles of uncomparable dynamic types (SubscriptionFunc and other
// func-typed adapters) are matched by function identity; comparing them
// with == would panic.
func sameSubscription(a, b Subscription) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() == reflect.Func {
		return va.Pointer() == vb.Pointer()
	}
	return false
}

// CancelSubscriptionAll cancels every registered handle in registration
// order, waiting for each cancellation to complete before starting the next,
// and leaves the registry empty. Cancellation failures are collected and
// returned joined; a failure does not stop the remaining cancellations.
func (s *ScreenController) CancelSubscriptionAll() error {
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	var errs []error
	for _, sub := range subs {
		if err := sub.Cancel(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
