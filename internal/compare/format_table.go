package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/nestegg/internal/output"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct {
	Currency *output.CurrencyFormatter
}

func (tf *TableFormatter) currency() *output.CurrencyFormatter {
	if tf.Currency == nil {
		return output.DefaultCurrencyFormatter()
	}
	return tf.Currency
}

// Format generates a formatted table comparing plans
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("RETIREMENT PLAN COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 96) + "\n")
	sb.WriteString(fmt.Sprintf("Base Plan: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 30
	numWidth := 15

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Plan",
		numWidth, "Portfolio",
		numWidth, "Income (today)",
		numWidth, "Needed/month",
		numWidth, "Lasts"))
	sb.WriteString(strings.Repeat("-", 96) + "\n")

	sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 96) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 96) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 96) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(" " + alt.Description)
			}
			sb.WriteString("\n")

			sb.WriteString(fmt.Sprintf("  Final Portfolio:   %s%s (%s%%)\n",
				tf.deltaSymbol(alt.PortfolioDiffFromBase),
				tf.formatDecimal(alt.PortfolioDiffFromBase),
				alt.PortfolioPctFromBase.StringFixed(1)))

			sb.WriteString(fmt.Sprintf("  Income (today):    %s%s\n",
				tf.deltaSymbol(alt.WithdrawalTodayDiff),
				tf.formatDecimal(alt.WithdrawalTodayDiff)))

			if !alt.RequiredContributionDiff.IsZero() {
				// Needing less is better
				sb.WriteString(fmt.Sprintf("  Needed/month:      %s%s\n",
					tf.deltaSymbol(alt.RequiredContributionDiff),
					tf.formatDecimal(alt.RequiredContributionDiff)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 96) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single plan row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	lasts := "always"
	if result.Depleted() {
		lasts = fmt.Sprintf("%d years", result.DepletionYear)
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, tf.formatDecimal(result.FinalPortfolio),
		numWidth, tf.formatDecimal(result.SafeWithdrawalToday),
		numWidth, tf.formatDecimal(result.RequiredContribution),
		numWidth, lasts)
}

// formatDecimal formats an amount in compact currency form
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	return tf.currency().FormatDecimal(d.Abs(), true)
}

// deltaSymbol returns a + or - symbol for deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each plan
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !alt.PortfolioDiffFromBase.IsZero() {
			change = tf.deltaSymbol(alt.PortfolioDiffFromBase) + tf.formatDecimal(alt.PortfolioDiffFromBase)
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}
