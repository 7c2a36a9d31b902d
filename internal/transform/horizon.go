package transform

import (
	"fmt"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

// ExtendAccumulation adds years to the accumulation phase. A negative value retires earlier.
type ExtendAccumulation struct {
	Years int
}

func (ea *ExtendAccumulation) Name() string {
	return "extend_accumulation"
}

func (ea *ExtendAccumulation) Description() string {
	if ea.Years < 0 {
		return fmt.Sprintf("Retire %d years earlier", -ea.Years)
	}
	return fmt.Sprintf("Keep contributing for %d more years", ea.Years)
}

func (ea *ExtendAccumulation) Validate(base domain.InputParameters) error {
	if base.Years+ea.Years < 1 {
		return NewTransformError(ea.Name(), "validate",
			fmt.Sprintf("accumulation would last %d years, need at least 1", base.Years+ea.Years), nil)
	}
	return nil
}

func (ea *ExtendAccumulation) Apply(base domain.InputParameters) (domain.InputParameters, error) {
	base.Years += ea.Years
	return base, nil
}

// ExtendRetirement adds years to the retirement phase. A negative value shortens it.
type ExtendRetirement struct {
	Years int
}

func (er *ExtendRetirement) Name() string {
	return "extend_retirement"
}

func (er *ExtendRetirement) Description() string {
	return fmt.Sprintf("Plan for a retirement %+d years long", er.Years)
}

func (er *ExtendRetirement) Validate(base domain.InputParameters) error {
	if base.RetirementYears+er.Years < 1 {
		return NewTransformError(er.Name(), "validate",
			fmt.Sprintf("retirement would last %d years, need at least 1", base.RetirementYears+er.Years), nil)
	}
	return nil
}

func (er *ExtendRetirement) Apply(base domain.InputParameters) (domain.InputParameters, error) {
	base.RetirementYears += er.Years
	return base, nil
}
