package calculation

import (
	"errors"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

// ErrNonFinite is returned when extreme inputs push an amount outside the float64 range.
var ErrNonFinite = errors.New("projection produced a non-finite amount")

// Projector computes a projection from a parameter set.
type Projector interface {
	Project(params domain.InputParameters) (*domain.ProjectionResult, error)
}

// ProjectionEngine runs the accumulation, retirement and contribution-solver
// calculations. It holds no state between calls.
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a projection engine with a no-op logger.
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. A nil logger restores the no-op logger.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

func (pe *ProjectionEngine) logger() Logger {
	if pe.Logger == nil {
		return NopLogger{}
	}
	return pe.Logger
}

// Project validates params and computes the full projection.
func (pe *ProjectionEngine) Project(params domain.InputParameters) (*domain.ProjectionResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	log := pe.logger()
	log.Debugf("projecting %s", params)

	acc := accumulationInput{
		years:               params.Years,
		monthlyRate:         MonthlyRate(params.AnnualReturnPct),
		monthlyInflation:    MonthlyRate(params.InflationPct),
		monthlyContribution: params.MonthlyContribution,
		inflationPct:        params.InflationPct,
		adjustForInflation:  params.AdjustContributionForInflation,
	}

	w := &moneyWriter{}
	run := simulateAccumulation(acc, w)

	finalPortfolio := run.finalPortfolio
	safeWithdrawal := safeMonthlyWithdrawal(finalPortfolio)

	retMonthly, retYearly := simulateDecumulation(decumulationInput{
		accumulationYears:     params.Years,
		retirementYears:       params.RetirementYears,
		startingBalance:       finalPortfolio,
		safeWithdrawalMonthly: safeWithdrawal,
		monthlyRate:           acc.monthlyRate,
		monthlyInflation:      acc.monthlyInflation,
		inflationPct:          params.InflationPct,
	}, w)

	deflatorAtRetirement := AnnualFactor(params.InflationPct, params.Years)
	targetNominalMonthly := params.TargetMonthlyIncomeToday * deflatorAtRetirement
	neededPortfolio := targetNominalMonthly * monthsPerYear / SafeWithdrawalRate
	search := solveContribution(neededPortfolio, acc)
	if search.saturated {
		log.Warnf("required contribution capped at search bound %.2f: target portfolio %.2f is out of reach", neededPortfolio/10, neededPortfolio)
	}

	gains := finalPortfolio - run.totalContributions
	result := &domain.ProjectionResult{
		Parameters: params,

		AccumulationMonthly: run.monthly,
		AccumulationYearly:  run.yearly,
		RetirementMonthly:   retMonthly,
		RetirementYearly:    retYearly,

		FinalPortfolio:                w.exact("finalPortfolio", finalPortfolio),
		FinalPortfolioDeflated:        w.exact("finalPortfolioDeflated", finalPortfolio/deflatorAtRetirement),
		SafeWithdrawalMonthly:         w.exact("safeWithdrawalMonthly", safeWithdrawal),
		SafeWithdrawalMonthlyDeflated: w.exact("safeWithdrawalMonthlyDeflated", safeWithdrawal/deflatorAtRetirement),
		TotalContributions:            w.exact("totalContributions", run.totalContributions),
		TotalContributionsDeflated:    w.exact("totalContributionsDeflated", run.totalContributions/deflatorAtRetirement),
		Gains:                         w.exact("gains", gains),
		GainsDeflated:                 w.exact("gainsDeflated", gains/deflatorAtRetirement),

		TargetNominalMonthly:    w.exact("targetNominalMonthly", targetNominalMonthly),
		NeededPortfolio:         w.exact("neededPortfolio", neededPortfolio),
		NeededPortfolioDeflated: w.exact("neededPortfolioDeflated", neededPortfolio/deflatorAtRetirement),
		NeededMonthly:           w.exact("neededMonthly", search.contribution),
		Solver: domain.SolverResult{
			MonthlyContribution: w.exact("solver.monthlyContribution", search.contribution),
			Lo:                  w.exact("solver.lo", search.lo),
			Hi:                  w.exact("solver.hi", search.hi),
			Iterations:          search.iterations,
			BracketSaturated:    search.saturated,
		},
	}
	if w.err != nil {
		log.Errorf("projection failed for %s: %v", params, w.err)
		return nil, w.err
	}

	log.Debugf("final portfolio %.2f, safe withdrawal %.2f/month, needed contribution %.2f/month",
		finalPortfolio, safeWithdrawal, search.contribution)
	return result, nil
}
