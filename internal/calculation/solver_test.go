package calculation

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

func TestSolver_RequiredContributionReachesTarget(t *testing.T) {
	params := baseParams()

	result, err := NewProjectionEngine().Project(params)
	require.NoError(t, err)

	targetNominal := 5000 * AnnualFactor(5, 30)
	assert.InEpsilon(t, targetNominal, result.TargetNominalMonthly.InexactFloat64(), 1e-12)
	assert.InEpsilon(t, targetNominal*12/0.04, result.NeededPortfolio.InexactFloat64(), 1e-12)
	assert.InEpsilon(t, targetNominal*12/0.04/AnnualFactor(5, 30), result.NeededPortfolioDeflated.InexactFloat64(), 1e-12)

	// Projecting with the solved contribution lands on the needed portfolio.
	params.MonthlyContribution = result.NeededMonthly.InexactFloat64()
	check, err := NewProjectionEngine().Project(params)
	require.NoError(t, err)
	assert.InEpsilon(t, result.NeededPortfolio.InexactFloat64(), check.FinalPortfolio.InexactFloat64(), 1e-9)
	assert.InEpsilon(t, result.TargetNominalMonthly.InexactFloat64(), check.SafeWithdrawalMonthly.InexactFloat64(), 1e-9,
		"solved plan pays the target income at retirement")
}

func TestSolver_Diagnostics(t *testing.T) {
	result, err := NewProjectionEngine().Project(baseParams())
	require.NoError(t, err)

	s := result.Solver
	assert.Equal(t, SolverIterations, s.Iterations)
	assert.False(t, s.BracketSaturated)
	assert.True(t, s.MonthlyContribution.Equal(result.NeededMonthly))
	assert.True(t, s.Lo.LessThanOrEqual(s.Hi))
	assert.True(t, s.Lo.LessThanOrEqual(s.MonthlyContribution))
	assert.True(t, s.MonthlyContribution.LessThanOrEqual(s.Hi))
}

func TestSolver_IterationCountIsFixed(t *testing.T) {
	in := accumulationInput{years: 30, monthlyRate: MonthlyRate(10), monthlyInflation: MonthlyRate(5), inflationPct: 5, adjustForInflation: true}

	for _, target := range []float64{0, 10, 1e6, 1e12} {
		search := solveContribution(target, in)
		assert.Equal(t, 60, search.iterations, "target %v", target)
	}
}

func TestSolver_ZeroTargetSettlesOnLowerBound(t *testing.T) {
	params := baseParams()
	params.TargetMonthlyIncomeToday = 0

	result, err := NewProjectionEngine().Project(params)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, result.NeededMonthly.InexactFloat64(), 1e-9)
	assert.False(t, result.Solver.BracketSaturated)
}

func TestSolver_MatchesForwardSimulation(t *testing.T) {
	in := accumulationInput{years: 20, monthlyRate: MonthlyRate(7.5), monthlyInflation: MonthlyRate(3), inflationPct: 3, adjustForInflation: true}
	w := &moneyWriter{}

	in.monthlyContribution = 850
	run := simulateAccumulation(in, w)
	require.NoError(t, w.err)

	assert.InEpsilon(t, run.finalPortfolio, finalPortfolioFor(850, in), 1e-12)
}

func TestSolver_SaturatedBracketIsReported(t *testing.T) {
	// One year at -50% cannot turn target/10 a month into the target.
	params := domain.InputParameters{
		Years:                    1,
		AnnualReturnPct:          -50,
		MonthlyContribution:      100,
		InflationPct:             0,
		RetirementYears:          10,
		TargetMonthlyIncomeToday: 1000,
	}

	logger := &TestLogger{}
	engine := NewProjectionEngine()
	engine.SetLogger(logger)

	result, err := engine.Project(params)
	require.NoError(t, err)

	assert.True(t, result.Solver.BracketSaturated)
	assert.InDelta(t, 30000, result.NeededMonthly.InexactFloat64(), 1e-6)

	warned := false
	for _, msg := range logger.messages {
		if strings.HasPrefix(msg, "WARN: ") {
			warned = true
		}
	}
	assert.True(t, warned, "saturation should be logged as a warning")
}

func TestSolver_HigherReturnNeedsLessContribution(t *testing.T) {
	engine := NewProjectionEngine()
	prev := math.Inf(1)

	for _, ret := range []float64{3, 6, 9, 12, 15} {
		params := baseParams()
		params.AnnualReturnPct = ret

		result, err := engine.Project(params)
		require.NoError(t, err)

		needed := result.NeededMonthly.InexactFloat64()
		assert.Less(t, needed, prev, "return %v%%", ret)
		prev = needed
	}
}
