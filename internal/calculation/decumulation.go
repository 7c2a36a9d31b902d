package calculation

import (
	"math"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

// SafeWithdrawalRate is the annual withdrawal rate of the 4% rule.
const SafeWithdrawalRate = 0.04

// decumulationInput holds what the retirement phase needs.
type decumulationInput struct {
	accumulationYears     int
	retirementYears       int
	startingBalance       float64
	safeWithdrawalMonthly float64
	monthlyRate           float64
	monthlyInflation      float64
	inflationPct          float64
}

// safeMonthlyWithdrawal applies the 4% rule to a portfolio and splits it into months.
func safeMonthlyWithdrawal(portfolio float64) float64 {
	return portfolio * SafeWithdrawalRate / monthsPerYear
}

// simulateDecumulation draws the inflation-adjusted safe withdrawal every month. The
// withdrawal base is fixed at the start of retirement and inflated once per year. A
// balance that reaches zero stays at zero. Deflators count months from the start of
// the plan, not from the start of retirement.
func simulateDecumulation(in decumulationInput, w *moneyWriter) (monthly, yearly []domain.DecumulationPoint) {
	monthly = make([]domain.DecumulationPoint, 0, in.retirementYears*monthsPerYear)
	yearly = make([]domain.DecumulationPoint, 0, in.retirementYears)

	balance := in.startingBalance

	for y := 1; y <= in.retirementYears; y++ {
		withdrawal := in.safeWithdrawalMonthly * AnnualFactor(in.inflationPct, y)

		yearReturn := 0.0
		yearWithdrawal := 0.0

		for m := 1; m <= monthsPerYear; m++ {
			prev := balance
			monthReturn := prev * in.monthlyRate
			balance = math.Max(prev+monthReturn-withdrawal, 0)

			yearReturn += monthReturn
			yearWithdrawal += withdrawal

			elapsed := in.accumulationYears*monthsPerYear + (y-1)*monthsPerYear + m
			deflator := monthlyDeflator(in.monthlyInflation, elapsed)
			monthly = append(monthly, decumulationPoint(w, y, m, withdrawal, monthReturn, balance, deflator))
		}

		deflator := AnnualFactor(in.inflationPct, in.accumulationYears+y)
		yearly = append(yearly, decumulationPoint(w, y, monthsPerYear, yearWithdrawal, yearReturn, balance, deflator))
	}

	return monthly, yearly
}

func decumulationPoint(w *moneyWriter, year, month int, withdrawal, periodReturn, balance, deflator float64) domain.DecumulationPoint {
	return domain.DecumulationPoint{
		Year:             year,
		Month:            month,
		PeriodWithdrawal: w.whole("periodWithdrawal", withdrawal),
		PeriodReturn:     w.whole("periodReturn", periodReturn),
		Balance:          w.whole("balance", balance),
		BalanceDeflated:  w.whole("balanceDeflated", balance/deflator),
	}
}
