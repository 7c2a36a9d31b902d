package transform

import (
	"fmt"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

// ScaleContribution multiplies the initial monthly contribution.
type ScaleContribution struct {
	Factor float64
}

func (sc *ScaleContribution) Name() string {
	return "scale_contribution"
}

func (sc *ScaleContribution) Description() string {
	return fmt.Sprintf("Scale monthly contribution by %.2fx", sc.Factor)
}

func (sc *ScaleContribution) Validate(base domain.InputParameters) error {
	if sc.Factor < 0 {
		return NewTransformError(sc.Name(), "validate", fmt.Sprintf("factor must be non-negative, got %.2f", sc.Factor), nil)
	}
	return nil
}

func (sc *ScaleContribution) Apply(base domain.InputParameters) (domain.InputParameters, error) {
	base.MonthlyContribution *= sc.Factor
	return base, nil
}

// SetContribution replaces the initial monthly contribution.
type SetContribution struct {
	Amount float64
}

func (sc *SetContribution) Name() string {
	return "set_contribution"
}

func (sc *SetContribution) Description() string {
	return fmt.Sprintf("Contribute %.2f per month", sc.Amount)
}

func (sc *SetContribution) Validate(base domain.InputParameters) error {
	if sc.Amount < 0 {
		return NewTransformError(sc.Name(), "validate", fmt.Sprintf("amount must be non-negative, got %.2f", sc.Amount), nil)
	}
	return nil
}

func (sc *SetContribution) Apply(base domain.InputParameters) (domain.InputParameters, error) {
	base.MonthlyContribution = sc.Amount
	return base, nil
}

// SetInflationAdjustment turns the yearly inflation step-up of contributions on or off.
type SetInflationAdjustment struct {
	Enabled bool
}

func (sa *SetInflationAdjustment) Name() string {
	return "set_inflation_adjustment"
}

func (sa *SetInflationAdjustment) Description() string {
	if sa.Enabled {
		return "Raise contributions with inflation every year"
	}
	return "Keep contributions flat"
}

func (sa *SetInflationAdjustment) Validate(base domain.InputParameters) error {
	return nil
}

func (sa *SetInflationAdjustment) Apply(base domain.InputParameters) (domain.InputParameters, error) {
	base.AdjustContributionForInflation = sa.Enabled
	return base, nil
}

// SetTargetIncome replaces the desired monthly retirement income in today's money.
type SetTargetIncome struct {
	Amount float64
}

func (st *SetTargetIncome) Name() string {
	return "set_target_income"
}

func (st *SetTargetIncome) Description() string {
	return fmt.Sprintf("Target %.2f per month in today's money", st.Amount)
}

func (st *SetTargetIncome) Validate(base domain.InputParameters) error {
	if st.Amount < 0 {
		return NewTransformError(st.Name(), "validate", fmt.Sprintf("amount must be non-negative, got %.2f", st.Amount), nil)
	}
	return nil
}

func (st *SetTargetIncome) Apply(base domain.InputParameters) (domain.InputParameters, error) {
	base.TargetMonthlyIncomeToday = st.Amount
	return base, nil
}
