package compare

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func result(name string, withdrawalToday, required int64, depletion int, ending int64) ComparisonResult {
	return ComparisonResult{
		ScenarioName:         name,
		SafeWithdrawalToday:  decimal.NewFromInt(withdrawalToday),
		RequiredContribution: decimal.NewFromInt(required),
		DepletionYear:        depletion,
		EndingBalance:        decimal.NewFromInt(ending),
		FinalPortfolio:       decimal.NewFromInt(withdrawalToday * 300),
	}
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	mc := NewMetricsCalculator()
	base := result("base", 4000, 1500, 0, 100)
	alt := result("alt", 5000, 1200, 0, 100)

	cmp := mc.CalculateComparison(alt, base)

	assert.True(t, cmp.PortfolioDiffFromBase.Equal(decimal.NewFromInt(300000)))
	assert.True(t, cmp.PortfolioPctFromBase.Equal(decimal.NewFromInt(25)))
	assert.True(t, cmp.WithdrawalTodayDiff.Equal(decimal.NewFromInt(1000)))
	assert.True(t, cmp.RequiredContributionDiff.Equal(decimal.NewFromInt(-300)))
}

func TestMetricsCalculator_ZeroBasePortfolio(t *testing.T) {
	mc := NewMetricsCalculator()
	base := result("base", 0, 1500, 0, 0)
	alt := result("alt", 10, 1500, 0, 0)

	cmp := mc.CalculateComparison(alt, base)
	assert.True(t, cmp.PortfolioPctFromBase.IsZero(), "no percentage against an empty base")
}

func TestGenerateRecommendations(t *testing.T) {
	base := result("base", 4000, 1500, 20, 0)
	set := &ComparisonSet{
		BaseResult: &base,
		AlternativeResults: []ComparisonResult{
			result("richer", 5000, 1400, 22, 0),
			result("cheaper", 3000, 900, 18, 0),
			result("lasting", 3500, 1600, 0, 50000),
		},
	}

	recs := GenerateRecommendations(set)
	joined := strings.Join(recs, "\n")

	assert.Len(t, recs, 3)
	assert.Contains(t, joined, "Best Income: richer pays 1000 more")
	assert.Contains(t, joined, "Easiest Target: cheaper needs 600 less")
	assert.Contains(t, joined, "Best Longevity: lasting never runs out of money")
}

func TestGenerateRecommendations_BaseIsBest(t *testing.T) {
	base := result("base", 5000, 900, 0, 10)
	set := &ComparisonSet{
		BaseResult:         &base,
		AlternativeResults: []ComparisonResult{result("worse", 4000, 1000, 0, 5)},
	}

	assert.Empty(t, GenerateRecommendations(set))
	assert.Empty(t, GenerateRecommendations(&ComparisonSet{BaseResult: &base}))
}

func TestOutlasts(t *testing.T) {
	never := result("never", 0, 0, 0, 10)
	neverMore := result("neverMore", 0, 0, 0, 20)
	early := result("early", 0, 0, 5, 0)
	late := result("late", 0, 0, 9, 0)

	assert.True(t, outlasts(&neverMore, &never))
	assert.True(t, outlasts(&never, &late))
	assert.False(t, outlasts(&early, &never))
	assert.True(t, outlasts(&late, &early))
	assert.False(t, outlasts(&early, &late))
}
