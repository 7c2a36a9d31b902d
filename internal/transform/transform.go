package transform

import (
	"fmt"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

// PlanTransform defines the interface for all plan transformations.
// Transforms are composable operations that modify a parameter set in predictable
// ways, enabling what-if comparison and interactive exploration.
type PlanTransform interface {
	// Apply returns a modified copy of base.
	Apply(base domain.InputParameters) (domain.InputParameters, error)

	// Name returns a short identifier for this transform (e.g., "extend_accumulation").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string

	// Validate checks if the transform can be applied to base without applying it.
	Validate(base domain.InputParameters) error
}

// ApplyTransforms applies a sequence of transforms to a base parameter set.
// Each transform receives the output of the previous one. The result is validated
// as a whole before it is returned.
func ApplyTransforms(base domain.InputParameters, transforms []PlanTransform) (domain.InputParameters, error) {
	current := base

	for i, transform := range transforms {
		if transform == nil {
			return base, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := transform.Validate(current); err != nil {
			return base, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(current)
		if err != nil {
			return base, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}

		current = next
	}

	if err := current.Validate(); err != nil {
		return base, fmt.Errorf("transformed plan is invalid: %w", err)
	}
	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError.
func NewTransformError(transformName, operation, reason string, err error) error {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}
