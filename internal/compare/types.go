package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

// ComparisonResult represents a single plan with its headline metrics
type ComparisonResult struct {
	ScenarioName string                   `json:"scenarioName"`
	Description  string                   `json:"description"`
	Parameters   domain.InputParameters   `json:"parameters"`
	Result       *domain.ProjectionResult `json:"-"`

	// Key Metrics
	FinalPortfolio       decimal.Decimal `json:"finalPortfolio"`
	FinalPortfolioToday  decimal.Decimal `json:"finalPortfolioToday"`
	SafeWithdrawal       decimal.Decimal `json:"safeWithdrawal"`
	SafeWithdrawalToday  decimal.Decimal `json:"safeWithdrawalToday"`
	RequiredContribution decimal.Decimal `json:"requiredContribution"`
	DepletionYear        int             `json:"depletionYear"` // 0 when the portfolio outlasts retirement
	EndingBalance        decimal.Decimal `json:"endingBalance"`

	// Comparison to Base
	PortfolioDiffFromBase    decimal.Decimal `json:"portfolioDiffFromBase"`
	PortfolioPctFromBase     decimal.Decimal `json:"portfolioPctFromBase"`
	WithdrawalTodayDiff      decimal.Decimal `json:"withdrawalTodayDiff"`
	RequiredContributionDiff decimal.Decimal `json:"requiredContributionDiff"`
}

// Depleted reports whether the portfolio runs out during retirement.
func (cr *ComparisonResult) Depleted() bool {
	return cr.DepletionYear > 0
}

// ComparisonSet represents a collection of plan comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath,omitempty"`
}

// MetricsCalculator extracts key metrics from projections
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for a projection
func (mc *MetricsCalculator) CalculateMetrics(name string, result *domain.ProjectionResult) ComparisonResult {
	return ComparisonResult{
		ScenarioName:         name,
		Parameters:           result.Parameters,
		Result:               result,
		FinalPortfolio:       result.FinalPortfolio,
		FinalPortfolioToday:  result.FinalPortfolioDeflated,
		SafeWithdrawal:       result.SafeWithdrawalMonthly,
		SafeWithdrawalToday:  result.SafeWithdrawalMonthlyDeflated,
		RequiredContribution: result.NeededMonthly,
		DepletionYear:        result.DepletionYear(),
		EndingBalance:        result.FinalBalance(),
	}
}

// CalculateComparison computes deltas between a plan and the base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.PortfolioDiffFromBase = scenario.FinalPortfolio.Sub(base.FinalPortfolio)

	if !base.FinalPortfolio.IsZero() {
		scenario.PortfolioPctFromBase = scenario.PortfolioDiffFromBase.
			Div(base.FinalPortfolio).
			Mul(decimal.NewFromInt(100))
	}

	scenario.WithdrawalTodayDiff = scenario.SafeWithdrawalToday.Sub(base.SafeWithdrawalToday)
	scenario.RequiredContributionDiff = scenario.RequiredContribution.Sub(base.RequiredContribution)

	return scenario
}

// outlasts reports whether a keeps money longer than b.
func outlasts(a, b *ComparisonResult) bool {
	switch {
	case !a.Depleted() && !b.Depleted():
		return a.EndingBalance.GreaterThan(b.EndingBalance)
	case !a.Depleted():
		return true
	case !b.Depleted():
		return false
	}
	return a.DepletionYear > b.DepletionYear
}

// GenerateRecommendations creates recommendations based on comparison results.
// Money is compared in today's value so plans with different horizons are comparable.
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	bestIncome := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.SafeWithdrawalToday.GreaterThan(bestIncome.SafeWithdrawalToday) {
			bestIncome = alt
		}
	}
	if bestIncome != base {
		diff := bestIncome.SafeWithdrawalToday.Sub(base.SafeWithdrawalToday)
		recommendations = append(recommendations,
			fmt.Sprintf("Best Income: %s pays %s more per month in today's money than the base plan",
				bestIncome.ScenarioName, diff.StringFixed(0)))
	}

	cheapest := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.RequiredContribution.LessThan(cheapest.RequiredContribution) {
			cheapest = alt
		}
	}
	if cheapest != base {
		diff := base.RequiredContribution.Sub(cheapest.RequiredContribution)
		recommendations = append(recommendations,
			fmt.Sprintf("Easiest Target: %s needs %s less per month to reach the target income",
				cheapest.ScenarioName, diff.StringFixed(0)))
	}

	if base.Depleted() {
		longest := base
		for i := range compSet.AlternativeResults {
			alt := &compSet.AlternativeResults[i]
			if outlasts(alt, longest) {
				longest = alt
			}
		}
		if longest != base {
			if longest.Depleted() {
				recommendations = append(recommendations,
					fmt.Sprintf("Best Longevity: %s lasts until retirement year %d instead of %d",
						longest.ScenarioName, longest.DepletionYear, base.DepletionYear))
			} else {
				recommendations = append(recommendations,
					fmt.Sprintf("Best Longevity: %s never runs out of money", longest.ScenarioName))
			}
		}
	}

	return recommendations
}
