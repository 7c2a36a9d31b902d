package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

// ConsoleFormatter renders a human-readable projection report.
type ConsoleFormatter struct {
	Currency    *CurrencyFormatter
	Granularity domain.Granularity
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(r *domain.ProjectionResult) ([]byte, error) {
	cf := c.Currency
	if cf == nil {
		cf = DefaultCurrencyFormatter()
	}
	money := func(d decimal.Decimal) string { return cf.FormatDecimal(d, false) }
	p := r.Parameters

	var buf bytes.Buffer
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf, "RETIREMENT PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintf(&buf, "Accumulation:      %d years at %.2f%% a year\n", p.Years, p.AnnualReturnPct)
	fmt.Fprintf(&buf, "Contribution:      %s per month", money(decimal.NewFromFloat(p.MonthlyContribution)))
	if p.AdjustContributionForInflation {
		fmt.Fprint(&buf, ", raised with inflation every year")
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Inflation:         %.2f%% a year\n", p.InflationPct)
	fmt.Fprintf(&buf, "Retirement:        %d years\n", p.RetirementYears)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "AT RETIREMENT                          NOMINAL          TODAY")
	fmt.Fprintln(&buf, strings.Repeat("-", 64))
	row := func(label string, nominal, today decimal.Decimal) {
		fmt.Fprintf(&buf, "%-30s %15s %15s\n", label, money(nominal), money(today))
	}
	row("Final portfolio", r.FinalPortfolio, r.FinalPortfolioDeflated)
	row("Total contributed", r.TotalContributions, r.TotalContributionsDeflated)
	row("Investment gains", r.Gains, r.GainsDeflated)
	row("Safe monthly withdrawal (4%)", r.SafeWithdrawalMonthly, r.SafeWithdrawalMonthlyDeflated)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "REQUIRED CONTRIBUTION")
	fmt.Fprintln(&buf, strings.Repeat("-", 64))
	fmt.Fprintf(&buf, "Target income today:           %15s\n", money(decimal.NewFromFloat(p.TargetMonthlyIncomeToday)))
	fmt.Fprintf(&buf, "Target income at retirement:   %15s\n", money(r.TargetNominalMonthly))
	row("Portfolio needed", r.NeededPortfolio, r.NeededPortfolioDeflated)
	fmt.Fprintf(&buf, "Monthly contribution needed:   %15s\n", money(r.NeededMonthly))
	if r.Solver.BracketSaturated {
		fmt.Fprintln(&buf, "Warning: the target is out of reach within the search range; the figure above is capped.")
	}
	fmt.Fprintln(&buf)

	if depleted := r.DepletionYear(); depleted > 0 {
		fmt.Fprintf(&buf, "The portfolio runs out in retirement year %d.\n\n", depleted)
	} else {
		fmt.Fprintf(&buf, "The portfolio lasts all %d years of retirement, ending at %s.\n\n", p.RetirementYears, money(r.FinalBalance()))
	}

	for _, phase := range []domain.Phase{domain.PhaseAccumulation, domain.PhaseRetirement} {
		t, err := SeriesTable(r, phase, c.Granularity)
		if err != nil {
			return nil, err
		}
		writeTextTable(&buf, t, cf)
		fmt.Fprintln(&buf)
	}

	return buf.Bytes(), nil
}

// writeTextTable renders t with right-aligned columns sized to their content.
func writeTextTable(buf *bytes.Buffer, t *Table, cf *CurrencyFormatter) {
	cells := make([][]string, len(t.Rows))
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for r, row := range t.Rows {
		cells[r] = make([]string, len(row))
		for i, c := range row {
			text := c.String()
			if c.Kind == MoneyCell {
				text = cf.FormatDecimal(c.Money, false)
			}
			cells[r][i] = text
			if n := len([]rune(text)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	fmt.Fprintln(buf, strings.ToUpper(t.Title))
	for i, h := range t.Headers {
		fmt.Fprintf(buf, "%*s  ", widths[i], h)
	}
	fmt.Fprintln(buf)
	for _, row := range cells {
		for i, text := range row {
			fmt.Fprintf(buf, "%*s  ", widths[i], text)
		}
		fmt.Fprintln(buf)
	}
}
