package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	plan, err := NewInputParser().LoadFromFile("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, plan, "Should return nil plan")
	assert.Contains(t, err.Error(), "failed to read file", "Should have specific error message")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	path := writeFile(t, "invalid.yaml", "invalid: yaml: content: [unclosed")

	plan, err := NewInputParser().LoadFromFile(path)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, plan)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestInputParser_LoadFromFile_SinglePlan(t *testing.T) {
	path := writeFile(t, "plan.yaml", `
name: Base
years: 20
annual_return_pct: 8
monthly_contribution: 2500
`)

	plan, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Base", plan.Name)
	assert.Equal(t, 20, plan.Years)
	assert.Equal(t, 8.0, plan.AnnualReturnPct)
	assert.Equal(t, 2500.0, plan.MonthlyContribution)

	defaults := domain.DefaultInputParameters()
	assert.Equal(t, defaults.InflationPct, plan.InflationPct, "missing fields take defaults")
	assert.Equal(t, defaults.RetirementYears, plan.RetirementYears)
	assert.Equal(t, defaults.TargetMonthlyIncomeToday, plan.TargetMonthlyIncomeToday)
	assert.True(t, plan.AdjustContributionForInflation)
}

func TestInputParser_LoadFromFile_ExplicitFalseOverridesDefault(t *testing.T) {
	path := writeFile(t, "plan.yaml", "adjust_contribution_for_inflation: false\n")

	plan, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.False(t, plan.AdjustContributionForInflation)
	assert.Equal(t, "Plan 1", plan.Name, "unnamed plans get a positional name")
}

func TestInputParser_LoadPlans(t *testing.T) {
	path := writeFile(t, "plans.yaml", `
plans:
  - name: Base
  - name: Aggressive
    annual_return_pct: 12
    years: 25
  - name: Late start
    years: 15
    monthly_contribution: 4000
`)

	plans, err := NewInputParser().LoadPlans(path)
	require.NoError(t, err)
	require.Len(t, plans, 3)

	assert.Equal(t, domain.DefaultInputParameters(), plans[0].InputParameters)
	assert.Equal(t, 12.0, plans[1].AnnualReturnPct)
	assert.Equal(t, 25, plans[1].Years)
	assert.Equal(t, 5.0, plans[1].InflationPct)
	assert.Equal(t, "Late start", plans[2].Name)
	assert.Equal(t, 4000.0, plans[2].MonthlyContribution)
}

func TestInputParser_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"zero years", "years: 0\n", "years"},
		{"negative contribution", "monthly_contribution: -10\n", "monthlyContribution"},
		{"total loss", "annual_return_pct: -100\n", "annualReturnPct"},
		{"duplicate names", "plans:\n  - name: A\n  - name: A\n", "duplicate plan name"},
		{"bad plan in list", "plans:\n  - name: A\n  - name: B\n    retirement_years: 0\n", "plan 1 (B)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "configuration validation failed")
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestInputParser_ValidationErrorIsMatchable(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("inflation_pct: -150\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidParameters))
}

func TestInputParser_ValidatePlans_Empty(t *testing.T) {
	err := NewInputParser().ValidatePlans(nil)
	assert.EqualError(t, err, "no plans provided")
}
