package domain

import (
	"fmt"
	"math"
)

// InputParameters is the full input of a projection. Values are plain float64 so the
// struct stays comparable and can key a memoization cache.
type InputParameters struct {
	Years                          int     `yaml:"years" json:"years"`
	AnnualReturnPct                float64 `yaml:"annual_return_pct" json:"annualReturnPct"`
	MonthlyContribution            float64 `yaml:"monthly_contribution" json:"monthlyContribution"`
	InflationPct                   float64 `yaml:"inflation_pct" json:"inflationPct"`
	RetirementYears                int     `yaml:"retirement_years" json:"retirementYears"`
	TargetMonthlyIncomeToday       float64 `yaml:"target_monthly_income_today" json:"targetMonthlyIncomeToday"`
	AdjustContributionForInflation bool    `yaml:"adjust_contribution_for_inflation" json:"adjustContributionForInflation"`
}

// DefaultInputParameters returns the starting plan shown by the calculator.
func DefaultInputParameters() InputParameters {
	return InputParameters{
		Years:                          30,
		AnnualReturnPct:                10,
		MonthlyContribution:            1000,
		InflationPct:                   5,
		RetirementYears:                25,
		TargetMonthlyIncomeToday:       5000,
		AdjustContributionForInflation: true,
	}
}

// Validate rejects parameter sets for which the projection is undefined.
func (p InputParameters) Validate() error {
	if p.Years < 1 {
		return NewValidationError("years", p.Years, "must be at least 1")
	}
	if p.RetirementYears < 1 {
		return NewValidationError("retirementYears", p.RetirementYears, "must be at least 1")
	}
	if !isFinite(p.AnnualReturnPct) || p.AnnualReturnPct <= -100 {
		return NewValidationError("annualReturnPct", p.AnnualReturnPct, "must be a finite value greater than -100")
	}
	if !isFinite(p.InflationPct) || p.InflationPct <= -100 {
		return NewValidationError("inflationPct", p.InflationPct, "must be a finite value greater than -100")
	}
	if !isFinite(p.MonthlyContribution) || p.MonthlyContribution < 0 {
		return NewValidationError("monthlyContribution", p.MonthlyContribution, "must be a finite, non-negative amount")
	}
	if !isFinite(p.TargetMonthlyIncomeToday) || p.TargetMonthlyIncomeToday < 0 {
		return NewValidationError("targetMonthlyIncomeToday", p.TargetMonthlyIncomeToday, "must be a finite, non-negative amount")
	}
	return nil
}

// String renders the parameters on one line for logs.
func (p InputParameters) String() string {
	return fmt.Sprintf("years=%d return=%.2f%% contribution=%.2f inflation=%.2f%% retirement=%d target=%.2f adjust=%t",
		p.Years, p.AnnualReturnPct, p.MonthlyContribution, p.InflationPct,
		p.RetirementYears, p.TargetMonthlyIncomeToday, p.AdjustContributionForInflation)
}

// Plan is a named parameter set as stored in plan files.
type Plan struct {
	Name            string `yaml:"name" json:"name"`
	Description     string `yaml:"description,omitempty" json:"description,omitempty"`
	InputParameters `yaml:",inline"`
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
