// Package errors provides structured error handling for the Weft framework.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrDestroyed is the sentinel wrapped by errors reported when a destroyed
// handler is used. Callers test for it with errors.Is.
var ErrDestroyed = stderrors.New("already destroyed")

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindRegistry indicates a registry handler or injector error.
	KindRegistry
	// KindRender indicates a rendering error.
	KindRender
	// KindMeta indicates a meta provider error.
	KindMeta
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindRegistry:
		return "registry"
	case KindRender:
		return "render"
	case KindMeta:
		return "meta"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// WeftError represents a structured error in the Weft framework.
type WeftError struct {
	// Op is the operation that failed (e.g., "registry.Handler.Own").
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

func (e *WeftError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WeftError) Unwrap() error {
	return e.Err
}

// NewDestroyed returns the error reported when an operation is attempted on a
// handler that has already been destroyed. The returned error matches
// ErrDestroyed under errors.Is.
func NewDestroyed(op string) *WeftError {
	return &WeftError{
		Op:        op,
		Kind:      KindRegistry,
		Err:       ErrDestroyed,
		Timestamp: time.Now(),
	}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "widget.RenderLifecycle").
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

// ErrorHandler receives errors reported by the Weft framework.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *WeftError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
