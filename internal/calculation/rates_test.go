package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyRate(t *testing.T) {
	tests := []struct {
		annual float64
	}{
		{10}, {5}, {0.5}, {-20}, {150},
	}

	for _, tt := range tests {
		r := MonthlyRate(tt.annual)
		assert.InDelta(t, 1+tt.annual/100, math.Pow(1+r, 12), 1e-12, "annual %v%%", tt.annual)
	}

	assert.Equal(t, 0.0, MonthlyRate(0))
	assert.Equal(t, -1.0, MonthlyRate(-100))
	assert.Less(t, MonthlyRate(10), 10.0/1200, "compounded rate is below the nominal split")
}

func TestAnnualFactor(t *testing.T) {
	assert.Equal(t, 1.0, AnnualFactor(5, 0))
	assert.InDelta(t, 1.05, AnnualFactor(5, 1), 1e-15)
	assert.InDelta(t, 4.321942375150668, AnnualFactor(5, 30), 1e-12)
	assert.InDelta(t, AnnualFactor(5, 30), monthlyDeflator(MonthlyRate(5), 360), 1e-9,
		"twelve monthly steps compound to one yearly step")
}

func TestRoundCurrency(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{1.5, 2},
		{2.5, 3},
		{-0.5, 0},
		{-1.5, -1},
		{-1.51, -2},
		{1234567.89, 1234568},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, roundCurrency(tt.in), "round %v", tt.in)
	}
}

func TestMoneyWriter(t *testing.T) {
	w := &moneyWriter{}

	assert.Equal(t, "1234.5", w.exact("a", 1234.5).String())
	assert.Equal(t, "1235", w.whole("b", 1234.5).String())
	assert.NoError(t, w.err)

	assert.True(t, w.exact("c", math.Inf(1)).IsZero())
	assert.True(t, w.whole("d", math.NaN()).IsZero())
	assert.ErrorIs(t, w.err, ErrNonFinite)
	assert.Contains(t, w.err.Error(), "c is", "first failure wins")
}
