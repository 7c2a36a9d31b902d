package output

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

// Table is a header plus rows of cells ready for tabular export.
// Money cells hold whole currency units.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]Cell
}

// Cell is one table value. Numeric cells keep their number so spreadsheet writers can
// store them as numbers.
type Cell struct {
	Int   int
	Money decimal.Decimal
	Kind  CellKind
}

type CellKind int

const (
	IntCell CellKind = iota
	MoneyCell
)

// String renders the cell as plain text without grouping or symbol.
func (c Cell) String() string {
	if c.Kind == IntCell {
		return strconv.Itoa(c.Int)
	}
	return c.Money.StringFixed(0)
}

// Float returns the numeric value of the cell.
func (c Cell) Float() float64 {
	if c.Kind == IntCell {
		return float64(c.Int)
	}
	return c.Money.InexactFloat64()
}

func intCell(v int) Cell {
	return Cell{Int: v, Kind: IntCell}
}

func moneyCell(v decimal.Decimal) Cell {
	return Cell{Money: v, Kind: MoneyCell}
}

// Column headers shared by every export format.
var (
	accumulationHeaders = []string{"Period Contribution", "Period Return", "Total Contributed", "Accumulated Gains", "Portfolio", "Portfolio (today)"}
	retirementHeaders   = []string{"Period Withdrawal", "Period Return", "Balance", "Balance (today)"}
)

// SeriesTable lays out one series of a projection, one row per point. Monthly tables
// carry a Month column after Year.
func SeriesTable(result *domain.ProjectionResult, phase domain.Phase, granularity domain.Granularity) (*Table, error) {
	if result == nil {
		return nil, fmt.Errorf("no projection to tabulate")
	}

	monthly := granularity == domain.GranularityMonthly
	headers := []string{"Year"}
	if monthly {
		headers = append(headers, "Month")
	}

	t := &Table{Title: fmt.Sprintf("%s (%s)", phaseTitle(phase), granularity)}

	switch phase {
	case domain.PhaseAccumulation:
		t.Headers = append(headers, accumulationHeaders...)
		for _, p := range result.Accumulation(granularity) {
			row := periodCells(p.Year, p.Month, monthly)
			row = append(row,
				moneyCell(p.PeriodContribution),
				moneyCell(p.PeriodReturn),
				moneyCell(p.CumulativeContributions),
				moneyCell(p.Gains),
				moneyCell(p.PortfolioValue),
				moneyCell(p.PortfolioValueDeflated),
			)
			t.Rows = append(t.Rows, row)
		}
	case domain.PhaseRetirement:
		t.Headers = append(headers, retirementHeaders...)
		for _, p := range result.Retirement(granularity) {
			row := periodCells(p.Year, p.Month, monthly)
			row = append(row,
				moneyCell(p.PeriodWithdrawal),
				moneyCell(p.PeriodReturn),
				moneyCell(p.Balance),
				moneyCell(p.BalanceDeflated),
			)
			t.Rows = append(t.Rows, row)
		}
	default:
		return nil, fmt.Errorf("unknown phase %q", phase)
	}

	return t, nil
}

func periodCells(year, month int, monthly bool) []Cell {
	if monthly {
		return []Cell{intCell(year), intCell(month)}
	}
	return []Cell{intCell(year)}
}

func phaseTitle(phase domain.Phase) string {
	if phase == domain.PhaseRetirement {
		return "Retirement"
	}
	return "Accumulation"
}

// ExportFileName returns the default file name for an exported series,
// e.g. "accumulation_yearly.xlsx".
func ExportFileName(phase domain.Phase, granularity domain.Granularity, ext string) string {
	return fmt.Sprintf("%s_%s.%s", phase, granularity, ext)
}
