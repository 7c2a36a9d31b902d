package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

func TestApplyTransforms_Chain(t *testing.T) {
	base := domain.DefaultInputParameters()

	result, err := ApplyTransforms(base, []PlanTransform{
		&ExtendAccumulation{Years: 5},
		&AdjustReturn{DeltaPct: -2},
		&ScaleContribution{Factor: 1.5},
		&SetInflationAdjustment{Enabled: false},
	})
	require.NoError(t, err)

	assert.Equal(t, 35, result.Years)
	assert.Equal(t, 8.0, result.AnnualReturnPct)
	assert.Equal(t, 1500.0, result.MonthlyContribution)
	assert.False(t, result.AdjustContributionForInflation)

	assert.Equal(t, domain.DefaultInputParameters(), base, "base must not be modified")
}

func TestApplyTransforms_Empty(t *testing.T) {
	base := domain.DefaultInputParameters()
	result, err := ApplyTransforms(base, nil)
	require.NoError(t, err)
	assert.Equal(t, base, result)
}

func TestApplyTransforms_NilTransform(t *testing.T) {
	_, err := ApplyTransforms(domain.DefaultInputParameters(), []PlanTransform{nil})
	assert.EqualError(t, err, "transform at index 0 is nil")
}

func TestApplyTransforms_ValidationFailureStopsChain(t *testing.T) {
	base := domain.DefaultInputParameters()

	result, err := ApplyTransforms(base, []PlanTransform{
		&ExtendAccumulation{Years: 5},
		&ExtendAccumulation{Years: -40},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extend_accumulation validation failed")
	assert.Equal(t, base, result)

	var terr *TransformError
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, "validate", terr.Operation)
}

func TestApplyTransforms_ResultIsValidated(t *testing.T) {
	// Each step is fine on its own; the plan they produce is not.
	base := domain.DefaultInputParameters()
	base.InflationPct = -50

	_, err := ApplyTransforms(base, []PlanTransform{&AdjustInflation{DeltaPct: -49}})
	require.NoError(t, err)

	_, err = ApplyTransforms(base, []PlanTransform{&SetContribution{Amount: 10}, &ScaleContribution{Factor: 0}})
	require.NoError(t, err)

	base.MonthlyContribution = -1
	_, err = ApplyTransforms(base, []PlanTransform{&SetReturn{Pct: 4}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidParameters))
}

func TestTransforms_Validate(t *testing.T) {
	base := domain.DefaultInputParameters()

	tests := []struct {
		transform PlanTransform
		wantErr   bool
	}{
		{&ExtendAccumulation{Years: -29}, false},
		{&ExtendAccumulation{Years: -30}, true},
		{&ExtendRetirement{Years: -24}, false},
		{&ExtendRetirement{Years: -25}, true},
		{&SetReturn{Pct: -99}, false},
		{&SetReturn{Pct: -100}, true},
		{&AdjustReturn{DeltaPct: -110}, true},
		{&SetInflation{Pct: 0}, false},
		{&SetInflation{Pct: -100}, true},
		{&AdjustInflation{DeltaPct: -105}, true},
		{&ScaleContribution{Factor: 0}, false},
		{&ScaleContribution{Factor: -1}, true},
		{&SetContribution{Amount: -1}, true},
		{&SetTargetIncome{Amount: 0}, false},
		{&SetTargetIncome{Amount: -1}, true},
		{&SetInflationAdjustment{Enabled: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.transform.Description(), func(t *testing.T) {
			err := tt.transform.Validate(base)
			if tt.wantErr {
				assert.Error(t, err, tt.transform.Name())
			} else {
				assert.NoError(t, err, tt.transform.Name())
			}
		})
	}
}

func TestTransformError(t *testing.T) {
	inner := errors.New("boom")
	err := NewTransformError("set_return", "apply", "bad input", inner)

	assert.Equal(t, "transform set_return (apply): bad input: boom", err.Error())
	assert.True(t, errors.Is(err, inner))

	err = NewTransformError("set_return", "validate", "bad input", nil)
	assert.Equal(t, "transform set_return (validate): bad input", err.Error())
}
