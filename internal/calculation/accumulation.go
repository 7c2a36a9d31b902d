package calculation

import (
	"github.com/rgehrsitz/nestegg/internal/domain"
)

// accumulationInput holds what the accumulation phase needs, already normalized.
type accumulationInput struct {
	years               int
	monthlyRate         float64
	monthlyInflation    float64
	monthlyContribution float64
	inflationPct        float64
	adjustForInflation  bool
}

// accumulationRun is the outcome of the accumulation phase. Running totals are unrounded.
type accumulationRun struct {
	monthly            []domain.AccumulationPoint
	yearly             []domain.AccumulationPoint
	finalPortfolio     float64
	totalContributions float64
}

// contributionForYear returns the monthly contribution paid during year y (1-based).
func contributionForYear(base, inflationPct float64, adjust bool, y int) float64 {
	if !adjust {
		return base
	}
	return base * AnnualFactor(inflationPct, y-1)
}

// simulateAccumulation compounds the portfolio month by month. Each month the return
// accrues on the opening balance and the contribution lands at the end of the month.
func simulateAccumulation(in accumulationInput, w *moneyWriter) accumulationRun {
	run := accumulationRun{
		monthly: make([]domain.AccumulationPoint, 0, in.years*monthsPerYear),
		yearly:  make([]domain.AccumulationPoint, 0, in.years),
	}

	portfolio := 0.0
	totalContrib := 0.0

	for y := 1; y <= in.years; y++ {
		contrib := contributionForYear(in.monthlyContribution, in.inflationPct, in.adjustForInflation, y)

		yearReturn := 0.0
		yearContrib := 0.0

		for m := 1; m <= monthsPerYear; m++ {
			prev := portfolio
			monthReturn := prev * in.monthlyRate
			portfolio = prev + monthReturn + contrib
			totalContrib += contrib

			yearReturn += monthReturn
			yearContrib += contrib

			deflator := monthlyDeflator(in.monthlyInflation, (y-1)*monthsPerYear+m)
			run.monthly = append(run.monthly, accumulationPoint(w, y, m, contrib, monthReturn, totalContrib, portfolio, deflator))
		}

		run.yearly = append(run.yearly, accumulationPoint(w, y, monthsPerYear, yearContrib, yearReturn, totalContrib, portfolio, AnnualFactor(in.inflationPct, y)))
	}

	run.finalPortfolio = portfolio
	run.totalContributions = totalContrib
	return run
}

// accumulationPoint rounds the exact state into an emitted point. Gains are derived from
// the rounded portfolio and contributions so the two always add up.
func accumulationPoint(w *moneyWriter, year, month int, periodContrib, periodReturn, totalContrib, portfolio, deflator float64) domain.AccumulationPoint {
	portfolioValue := w.whole("portfolioValue", portfolio)
	contributions := w.whole("cumulativeContributions", totalContrib)
	return domain.AccumulationPoint{
		Year:                            year,
		Month:                           month,
		PeriodContribution:              w.whole("periodContribution", periodContrib),
		PeriodReturn:                    w.whole("periodReturn", periodReturn),
		CumulativeContributions:         contributions,
		CumulativeContributionsDeflated: w.whole("cumulativeContributionsDeflated", totalContrib/deflator),
		PortfolioValue:                  portfolioValue,
		PortfolioValueDeflated:          w.whole("portfolioValueDeflated", portfolio/deflator),
		Gains:                           portfolioValue.Sub(contributions),
	}
}

// finalPortfolioFor runs the accumulation loop without emitting points and returns the
// closing nominal portfolio. The solver calls it once per bisection step.
func finalPortfolioFor(monthlyContribution float64, in accumulationInput) float64 {
	p := 0.0
	for y := 1; y <= in.years; y++ {
		contrib := contributionForYear(monthlyContribution, in.inflationPct, in.adjustForInflation, y)
		for m := 0; m < monthsPerYear; m++ {
			p = p*(1+in.monthlyRate) + contrib
		}
	}
	return p
}
