package calculation

// SolverIterations is the fixed number of bisection steps used by the contribution solver.
const SolverIterations = 60

// solverLowerBound is the smallest monthly contribution the solver considers.
const solverLowerBound = 1.0

// contributionSearch is the state of the contribution bisection once it stops.
type contributionSearch struct {
	contribution float64
	lo, hi       float64
	iterations   int
	saturated    bool
}

// solveContribution bisects the initial monthly contribution that grows the portfolio
// to target over the accumulation phase. The bracket is [1, target/10] and the search
// always runs SolverIterations steps. saturated reports that even the upper bound of
// the bracket falls short of the target, so the answer is capped.
func solveContribution(target float64, in accumulationInput) contributionSearch {
	lo := solverLowerBound
	hi := target / 10
	mid := 0.0

	search := contributionSearch{
		saturated: finalPortfolioFor(hi, in) < target,
	}

	for i := 0; i < SolverIterations; i++ {
		mid = (lo + hi) / 2
		if finalPortfolioFor(mid, in) < target {
			lo = mid
		} else {
			hi = mid
		}
		search.iterations++
	}

	search.contribution = mid
	search.lo = lo
	search.hi = hi
	return search
}
