package domain

import (
	"errors"
	"fmt"
)

// ErrStepNotFound indicates a referenced step name does not exist in the flow.
var ErrStepNotFound = errors.New("step not found")

// ErrInvalidOperation indicates an operation's arguments are structurally
// incompatible with the flow it targets (e.g. a step location the parent's
// kind doesn't support). Callers distinguish this from ErrStepNotFound via
// errors.Is rather than by matching on Message text.
var ErrInvalidOperation = errors.New("flow operation invalid")

// OperationError wraps a flow-operation failure with the context needed to
// report it: which operation, on which step, and why. Operation handlers
// (DUPLICATE_ACTION among them) surface a missing step name as an
// OperationError wrapping ErrStepNotFound rather than a bare error.
type OperationError struct {
	Op      string // operation kind, e.g. "MOVE_ACTION"
	Name    string // step name the operation concerned, if any
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s (step %q): %v", e.Op, e.Message, e.Name, e.Err)
	}

	return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func (e *OperationError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewOperationError builds a flow-operation-invalid error.
func NewOperationError(op, name, message string, err error) *OperationError {
	if err == nil {
		err = errors.New(message)
	}

	return &OperationError{Op: op, Name: name, Message: message, Err: err}
}

// IsOperationInvalid reports whether err is a flow-operation-invalid failure.
func IsOperationInvalid(err error) bool {
	var opErr *OperationError

	return errors.As(err, &opErr)
}
