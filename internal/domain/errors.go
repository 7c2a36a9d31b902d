package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters is matched by every ValidationError.
var ErrInvalidParameters = errors.New("invalid projection parameters")

// ValidationError describes a single rejected input field.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

// NewValidationError creates a ValidationError.
func NewValidationError(field string, value any, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidParameters
}
