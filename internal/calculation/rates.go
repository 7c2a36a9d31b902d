package calculation

import "math"

const monthsPerYear = 12

// MonthlyRate converts an annual percentage into the equivalent compounded monthly rate.
// It is the twelfth root of the annual growth factor, not annualPct/1200.
func MonthlyRate(annualPct float64) float64 {
	return math.Pow(1+annualPct/100, 1.0/monthsPerYear) - 1
}

// AnnualFactor returns (1 + annualPct/100)^years.
func AnnualFactor(annualPct float64, years int) float64 {
	return math.Pow(1+annualPct/100, float64(years))
}

// monthlyDeflator returns the cumulative inflation factor after elapsedMonths months.
func monthlyDeflator(monthlyInflation float64, elapsedMonths int) float64 {
	return math.Pow(1+monthlyInflation, float64(elapsedMonths))
}

// roundCurrency rounds to the nearest whole unit, halves toward positive infinity.
func roundCurrency(v float64) float64 {
	r := math.Floor(v)
	if v-r >= 0.5 {
		r++
	}
	return r
}
