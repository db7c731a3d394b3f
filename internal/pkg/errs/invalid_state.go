package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidState is the sentinel for operations the current state of an aggregate forbids.
var ErrInvalidState = errors.New("invalid state")

// InvalidStateError reports an operation rejected because of the object's current state.
type InvalidStateError struct {
	Object string
	State  string
	Reason string
}

func NewInvalidStateError(object, state, reason string) *InvalidStateError {
	return &InvalidStateError{
		Object: object,
		State:  state,
		Reason: reason,
	}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s is %s, %s", ErrInvalidState, e.Object, e.State, e.Reason)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
