package transform

import (
	"fmt"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

// SetReturn replaces the expected annual return.
type SetReturn struct {
	Pct float64
}

func (sr *SetReturn) Name() string {
	return "set_return"
}

func (sr *SetReturn) Description() string {
	return fmt.Sprintf("Set annual return to %.1f%%", sr.Pct)
}

func (sr *SetReturn) Validate(base domain.InputParameters) error {
	if sr.Pct <= -100 {
		return NewTransformError(sr.Name(), "validate", fmt.Sprintf("return must be greater than -100%%, got %.2f", sr.Pct), nil)
	}
	return nil
}

func (sr *SetReturn) Apply(base domain.InputParameters) (domain.InputParameters, error) {
	base.AnnualReturnPct = sr.Pct
	return base, nil
}

// AdjustReturn shifts the expected annual return by a number of percentage points.
type AdjustReturn struct {
	DeltaPct float64
}

func (ar *AdjustReturn) Name() string {
	return "adjust_return"
}

func (ar *AdjustReturn) Description() string {
	return fmt.Sprintf("Shift annual return by %+.1f pp", ar.DeltaPct)
}

func (ar *AdjustReturn) Validate(base domain.InputParameters) error {
	if base.AnnualReturnPct+ar.DeltaPct <= -100 {
		return NewTransformError(ar.Name(), "validate", "shifted return must stay above -100%", nil)
	}
	return nil
}

func (ar *AdjustReturn) Apply(base domain.InputParameters) (domain.InputParameters, error) {
	base.AnnualReturnPct += ar.DeltaPct
	return base, nil
}

// SetInflation replaces the expected annual inflation.
type SetInflation struct {
	Pct float64
}

func (si *SetInflation) Name() string {
	return "set_inflation"
}

func (si *SetInflation) Description() string {
	return fmt.Sprintf("Set annual inflation to %.1f%%", si.Pct)
}

func (si *SetInflation) Validate(base domain.InputParameters) error {
	if si.Pct <= -100 {
		return NewTransformError(si.Name(), "validate", fmt.Sprintf("inflation must be greater than -100%%, got %.2f", si.Pct), nil)
	}
	return nil
}

func (si *SetInflation) Apply(base domain.InputParameters) (domain.InputParameters, error) {
	base.InflationPct = si.Pct
	return base, nil
}

// AdjustInflation shifts the expected annual inflation by a number of percentage points.
type AdjustInflation struct {
	DeltaPct float64
}

func (ai *AdjustInflation) Name() string {
	return "adjust_inflation"
}

func (ai *AdjustInflation) Description() string {
	return fmt.Sprintf("Shift annual inflation by %+.1f pp", ai.DeltaPct)
}

func (ai *AdjustInflation) Validate(base domain.InputParameters) error {
	if base.InflationPct+ai.DeltaPct <= -100 {
		return NewTransformError(ai.Name(), "validate", "shifted inflation must stay above -100%", nil)
	}
	return nil
}

func (ai *AdjustInflation) Apply(base domain.InputParameters) (domain.InputParameters, error) {
	base.InflationPct += ai.DeltaPct
	return base, nil
}
