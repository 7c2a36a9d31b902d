package output

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyFormatter_Default(t *testing.T) {
	cf := DefaultCurrencyFormatter()

	assert.Equal(t, "R$", cf.Symbol())

	tests := []struct {
		value   float64
		compact bool
		want    string
	}{
		{1234567.6, false, "R$ 1.234.568"},
		{999.4, false, "R$ 999"},
		{0, false, "R$ 0"},
		{2500000, true, "R$ 2.5M"},
		{1000000, true, "R$ 1.0M"},
		{235400, true, "R$ 235K"},
		{1000, true, "R$ 1K"},
		{999, true, "R$ 999"},
		{-2500000, true, "R$ -2.5M"},
		{-1234.4, false, "-R$ 1.234"},
		{-0.4, false, "R$ 0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cf.Format(tt.value, tt.compact), "format %v compact=%t", tt.value, tt.compact)
	}

	assert.Equal(t, "R$ 1.235", cf.FormatDecimal(decimal.NewFromFloat(1234.5), false))
}

func TestCurrencyFormatter_OtherLocale(t *testing.T) {
	cf, err := NewCurrencyFormatter("en-US", "USD")
	require.NoError(t, err)

	assert.Equal(t, "$ 1,234,568", cf.Format(1234567.6, false))
	assert.Equal(t, "$ 12K", cf.Format(12345, true))
}

func TestNewCurrencyFormatter_Errors(t *testing.T) {
	_, err := NewCurrencyFormatter("not a locale!", "BRL")
	assert.ErrorContains(t, err, "invalid locale")

	_, err = NewCurrencyFormatter("pt-BR", "R$")
	assert.ErrorContains(t, err, "invalid currency")
}

func TestCurrencyFormatter_BeyondInt64(t *testing.T) {
	cf := DefaultCurrencyFormatter()

	got := cf.Format(3.160508251652831e25, false)
	assert.True(t, strings.HasPrefix(got, "R$ 31.605.082.516.528."), got)
	assert.Len(t, strings.Split(strings.TrimPrefix(got, "R$ "), "."), 9, got)

	got = cf.FormatDecimal(decimal.RequireFromString("-12345678901234567890123"), false)
	assert.True(t, strings.HasPrefix(got, "-R$ 12.345.678.901.234."), got)
}
