package calculation

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// moneyWriter converts float64 amounts into decimals and remembers the first
// amount that was not a finite number.
type moneyWriter struct {
	err error
}

// exact converts v without rounding.
func (w *moneyWriter) exact(field string, v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		if w.err == nil {
			w.err = fmt.Errorf("%w: %s is %v", ErrNonFinite, field, v)
		}
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// whole converts v rounded to whole currency units.
func (w *moneyWriter) whole(field string, v float64) decimal.Decimal {
	return w.exact(field, roundCurrency(v))
}
