package errs

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrPersistence       = errors.New("persistence failed")
)

// ValidationReason names the rule a submission broke.
type ValidationReason string

const (
	EmptyCart    ValidationReason = "EmptyCart"
	InvalidTable ValidationReason = "InvalidTable"
)

// ValidationError is returned when a cart and table number cannot become an order.
// The user can recover by correcting the input.
type ValidationError struct {
	Reason ValidationReason
	Cause  error
}

func NewValidationError(reason ValidationReason) *ValidationError {
	return &ValidationError{Reason: reason}
}

func NewValidationErrorWithCause(reason ValidationReason, cause error) *ValidationError {
	return &ValidationError{Reason: reason, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValidation, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// IsValidationReason reports whether err carries a ValidationError with the given reason.
func IsValidationReason(err error, reason ValidationReason) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr) && vErr.Reason == reason
}

// IllegalTransitionError is returned when a lifecycle change is not the immediate successor
// of the current state. It points at a caller defect rather than bad user input.
type IllegalTransitionError struct {
	From string
	To   string
}

func NewIllegalTransitionError(from, to fmt.Stringer) *IllegalTransitionError {
	return &IllegalTransitionError{From: from.String(), To: to.String()}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// PersistenceError wraps a failure of the order store. Nothing was applied, so retrying is safe.
type PersistenceError struct {
	Op    string
	Cause error
}

func NewPersistenceError(op string, cause error) *PersistenceError {
	return &PersistenceError{Op: op, Cause: cause}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s (cause: %v)", ErrPersistence, e.Op, e.Cause)
}

// Unwrap exposes both the sentinel and the cause so callers can match either.
func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistence, e.Cause}
}
