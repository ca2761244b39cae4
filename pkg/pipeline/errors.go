package pipeline

import (
	"fmt"
	"runtime/debug"

	"github.com/pkg/errors"
)

var (
	ErrNilHandler        = errors.New("handler must be set")
	ErrDuplicateStepName = errors.New("step name already registered")
	ErrUnexpectedType    = errors.New("unexpected value type")
)

// PanicError carries a panic raised by a handler whose value is not an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// recovered turns a recovered panic value into the error carried by a call.
// Errors are kept as is so that their identity survives the panic.
func recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}

	return &PanicError{Value: r, Stack: debug.Stack()}
}

// cast converts a carried value to the type expected by a typed step.
// A nil value becomes the zero value of T.
func cast[T any](v any) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}

	out, ok := v.(T)
	if !ok {
		return zero, errors.Wrapf(ErrUnexpectedType, "got %T, want %T", v, zero)
	}

	return out, nil
}
