package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Phase selects one side of the projection.
type Phase string

const (
	PhaseAccumulation Phase = "accumulation"
	PhaseRetirement   Phase = "retirement"
)

// Granularity selects monthly or yearly point series.
type Granularity string

const (
	GranularityYearly  Granularity = "yearly"
	GranularityMonthly Granularity = "monthly"
)

// ParsePhase accepts "accumulation"/"acc" and "retirement"/"ret"/"decumulation".
func ParsePhase(s string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "accumulation", "acc":
		return PhaseAccumulation, nil
	case "retirement", "ret", "decumulation":
		return PhaseRetirement, nil
	}
	return "", fmt.Errorf("unknown phase %q (valid: accumulation, retirement)", s)
}

// ParseGranularity accepts "yearly"/"annual" and "monthly".
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yearly", "annual", "year":
		return GranularityYearly, nil
	case "monthly", "month":
		return GranularityMonthly, nil
	}
	return "", fmt.Errorf("unknown granularity %q (valid: yearly, monthly)", s)
}

// AccumulationPoint is the state of the portfolio at the end of a month (or year)
// before retirement. Money is rounded to whole currency units.
type AccumulationPoint struct {
	Year                            int             `json:"year"`
	Month                           int             `json:"month"`
	PeriodContribution              decimal.Decimal `json:"periodContribution"`
	PeriodReturn                    decimal.Decimal `json:"periodReturn"`
	CumulativeContributions         decimal.Decimal `json:"cumulativeContributions"`
	CumulativeContributionsDeflated decimal.Decimal `json:"cumulativeContributionsDeflated"`
	PortfolioValue                  decimal.Decimal `json:"portfolioValue"`
	PortfolioValueDeflated          decimal.Decimal `json:"portfolioValueDeflated"`
	Gains                           decimal.Decimal `json:"gains"`
}

// DecumulationPoint is the state of the portfolio at the end of a retirement month (or year).
type DecumulationPoint struct {
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	PeriodWithdrawal decimal.Decimal `json:"periodWithdrawal"`
	PeriodReturn     decimal.Decimal `json:"periodReturn"`
	Balance          decimal.Decimal `json:"balance"`
	BalanceDeflated  decimal.Decimal `json:"balanceDeflated"`
}

// IsDepleted reports whether the balance has reached zero.
func (p DecumulationPoint) IsDepleted() bool {
	return p.Balance.IsZero()
}

// SolverResult carries the required contribution found by bisection and the state
// of the search when it stopped.
type SolverResult struct {
	MonthlyContribution decimal.Decimal `json:"monthlyContribution"`
	Lo                  decimal.Decimal `json:"lo"`
	Hi                  decimal.Decimal `json:"hi"`
	Iterations          int             `json:"iterations"`
	BracketSaturated    bool            `json:"bracketSaturated"`
}

// ProjectionResult is the full output of one projection. Summary figures are not rounded.
type ProjectionResult struct {
	Parameters InputParameters `json:"parameters"`

	AccumulationMonthly []AccumulationPoint `json:"accumulationMonthly"`
	AccumulationYearly  []AccumulationPoint `json:"accumulationYearly"`
	RetirementMonthly   []DecumulationPoint `json:"retirementMonthly"`
	RetirementYearly    []DecumulationPoint `json:"retirementYearly"`

	FinalPortfolio                decimal.Decimal `json:"finalPortfolio"`
	FinalPortfolioDeflated        decimal.Decimal `json:"finalPortfolioDeflated"`
	SafeWithdrawalMonthly         decimal.Decimal `json:"safeWithdrawalMonthly"`
	SafeWithdrawalMonthlyDeflated decimal.Decimal `json:"safeWithdrawalMonthlyDeflated"`
	TotalContributions            decimal.Decimal `json:"totalContributions"`
	TotalContributionsDeflated    decimal.Decimal `json:"totalContributionsDeflated"`
	Gains                         decimal.Decimal `json:"gains"`
	GainsDeflated                 decimal.Decimal `json:"gainsDeflated"`

	TargetNominalMonthly    decimal.Decimal `json:"targetNominalMonthly"`
	NeededPortfolio         decimal.Decimal `json:"neededPortfolio"`
	NeededPortfolioDeflated decimal.Decimal `json:"neededPortfolioDeflated"`
	NeededMonthly           decimal.Decimal `json:"neededMonthly"`
	Solver                  SolverResult    `json:"solver"`
}

// Accumulation returns the accumulation series at the requested granularity.
func (r *ProjectionResult) Accumulation(g Granularity) []AccumulationPoint {
	if g == GranularityMonthly {
		return r.AccumulationMonthly
	}
	return r.AccumulationYearly
}

// Retirement returns the decumulation series at the requested granularity.
func (r *ProjectionResult) Retirement(g Granularity) []DecumulationPoint {
	if g == GranularityMonthly {
		return r.RetirementMonthly
	}
	return r.RetirementYearly
}

// DepletionYear returns the first retirement year that closes with a zero balance,
// or 0 when the portfolio lasts the whole retirement.
func (r *ProjectionResult) DepletionYear() int {
	for _, p := range r.RetirementYearly {
		if p.IsDepleted() {
			return p.Year
		}
	}
	return 0
}

// FinalBalance returns the balance at the end of retirement.
func (r *ProjectionResult) FinalBalance() decimal.Decimal {
	if len(r.RetirementYearly) == 0 {
		return decimal.Zero
	}
	return r.RetirementYearly[len(r.RetirementYearly)-1].Balance
}
