package errs

import (
	"errors"
	"fmt"
)

// ErrConflict is the sentinel for writes rejected by a uniqueness rule.
var ErrConflict = errors.New("conflict")

// ConflictError reports that Value is already taken for ParamName.
type ConflictError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewConflictError(paramName string, value any) *ConflictError {
	return &ConflictError{
		ParamName: paramName,
		Value:     value,
	}
}

func NewConflictErrorWithCause(paramName string, value any, cause error) *ConflictError {
	return &ConflictError{
		ParamName: paramName,
		Value:     value,
		Cause:     cause,
	}
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("%s: %s %s already exists", ErrConflict, e.ParamName, sanitize(fmt.Sprintf("%v", e.Value)))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
