package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Plan",
		"Type",
		"Final Portfolio",
		"Final Portfolio (today)",
		"Safe Withdrawal",
		"Safe Withdrawal (today)",
		"Required Contribution",
		"Depletion Year",
		"Portfolio Diff from Base",
		"Portfolio % Change",
		"Withdrawal (today) Diff",
		"Required Contribution Diff",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.FinalPortfolio.StringFixed(2),
		result.FinalPortfolioToday.StringFixed(2),
		result.SafeWithdrawal.StringFixed(2),
		result.SafeWithdrawalToday.StringFixed(2),
		result.RequiredContribution.StringFixed(2),
		strconv.Itoa(result.DepletionYear),
		result.PortfolioDiffFromBase.StringFixed(2),
		result.PortfolioPctFromBase.StringFixed(2),
		result.WithdrawalTodayDiff.StringFixed(2),
		result.RequiredContributionDiff.StringFixed(2),
	}
}
