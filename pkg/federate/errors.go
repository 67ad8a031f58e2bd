package federate

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrNilHandler is the panic value raised when a nil handler is registered.
var ErrNilHandler = errors.New("federate: nil handler")

// PanicError captures a handler panic raised inside InvokeAsync.
// It is delivered through the panicking handler's Future only.
type PanicError struct {
	// Registry is the name of the registry that scheduled the handler.
	Registry string
	// Index is the entry position of the handler at scheduling time.
	Index int
	// Value is the value passed to panic().
	Value any
	// Stack is the goroutine stack trace at the point of panic.
	Stack string
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("federate %s: handler %d panicked: %v", e.Registry, e.Index, e.Value)
}

// Unwrap returns the panic value when it is an error, for errors.Is/As support.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func newPanicError(registry string, index int, value any) *PanicError {
	return &PanicError{
		Registry: registry,
		Index:    index,
		Value:    value,
		Stack:    string(debug.Stack()),
	}
}
