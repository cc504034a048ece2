// Package errors provides structured error handling for rudder.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindTask indicates a failure inside a guarded async task.
	KindTask
	// KindCancel indicates a subscription cancellation failure.
	KindCancel
	// KindTimer indicates a failure inside a debounce timer callback.
	KindTimer
	// KindConfig indicates a configuration loading or resolution error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindTask:
		return "task"
	case KindCancel:
		return "cancel"
	case KindTimer:
		return "timer"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// RudderError represents a structured error in rudder.
type RudderError struct {
	// Op is the operation that failed (e.g., "controller.AsyncRun").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RudderError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RudderError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "controller.AsyncRun").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Describe converts a task failure to its textual description.
// Errors use their Error() string; any other value (a recovered panic
// value, typically) is formatted with %v.
func Describe(v any) string {
	switch failure := v.(type) {
	case nil:
		return ""
	case error:
		return failure.Error()
	default:
		return fmt.Sprintf("%v", failure)
	}
}

// ErrorHandler receives errors reported by rudder.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *RudderError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
