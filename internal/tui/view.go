package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/nestegg/internal/domain"
	"github.com/rgehrsitz/nestegg/internal/tui/components"
	"github.com/rgehrsitz/nestegg/internal/tui/tuistyles"
)

const sidebarWidth = 44

// View renders the current state of the application
func (m Model) View() string {
	title := tuistyles.TitleStyle.Render("NESTEGG · Retirement Projection")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		tuistyles.BorderStyle.Width(sidebarWidth).Render(m.renderInputs()),
		" ",
		m.renderResults(),
	)

	return tuistyles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		body,
		m.renderStatusBar(),
	))
}

func (m Model) renderInputs() string {
	rows := make([]string, 0, len(m.sliders)+2)
	rows = append(rows, tuistyles.SubtitleStyle.Render("Parameters"))
	for _, s := range m.sliders {
		rows = append(rows, s.WithWidth(sidebarWidth-24).Render())
	}
	rows = append(rows, m.adjust.Render())
	return strings.Join(rows, "\n")
}

func (m Model) contentWidth() int {
	return max(m.width-sidebarWidth-8, 40)
}

func (m Model) renderResults() string {
	if m.err != nil {
		return tuistyles.ErrorStyle.Render("Error: " + m.err.Error())
	}
	if m.result == nil {
		return tuistyles.InfoStyle.Render("Calculating...")
	}

	var panel string
	switch m.tab {
	case TabChart:
		panel = m.renderChart()
	case TabTable:
		panel = m.table.View()
	case TabReverse:
		panel = m.renderReverse()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderCards(),
		m.renderTabs(),
		panel,
	)
}

func (m Model) money(d decimal.Decimal) string {
	return m.currency.FormatDecimal(d, true)
}

func (m Model) renderCards() string {
	r := m.result
	today := func(d decimal.Decimal) string { return "today " + m.money(d) }
	width := max(m.contentWidth()/4-2, 18)

	cards := []*components.MetricCard{
		components.NewMetricCard("Final portfolio", m.money(r.FinalPortfolio)).WithDescription(today(r.FinalPortfolioDeflated)),
		components.NewMetricCard("Safe withdrawal /mo", m.money(r.SafeWithdrawalMonthly)).WithDescription(today(r.SafeWithdrawalMonthlyDeflated)),
		components.NewMetricCard("Total contributed", m.money(r.TotalContributions)).WithDescription(today(r.TotalContributionsDeflated)),
		components.NewMetricCard("Gains", m.money(r.Gains)).WithDescription(today(r.GainsDeflated)),
	}
	for _, c := range cards {
		c.WithWidth(width)
	}
	columns := 4
	if m.contentWidth() < 4*20 {
		columns = 2
	}
	return components.MetricGrid(cards, columns)
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		style := tuistyles.TabStyle
		if Tab(i) == m.tab {
			style = tuistyles.ActiveTabStyle
		}
		tabs[i] = style.Render(name)
	}
	scope := tuistyles.SubtitleStyle.Render(fmt.Sprintf("  %s · %s", m.phase, m.granularity))
	return lipgloss.JoinHorizontal(lipgloss.Top, append(tabs, scope)...)
}

func (m Model) renderChart() string {
	compact := func(v float64) string { return m.currency.Format(v, true) }
	chart := components.NewASCIIChart("").
		WithSize(m.contentWidth(), 12).
		WithValueFormatter(compact)

	switch m.phase {
	case domain.PhaseRetirement:
		points := m.result.Retirement(m.granularity)
		nominal := make([]float64, len(points))
		deflated := make([]float64, len(points))
		labels := make([]string, len(points))
		for i, p := range points {
			nominal[i] = p.Balance.InexactFloat64()
			deflated[i] = p.BalanceDeflated.InexactFloat64()
			labels[i] = periodLabel(p.Year, p.Month, m.granularity)
		}
		chart.Title = "Retirement balance"
		chart.AddSeries("Balance", nominal, tuistyles.ColorChartLine1).
			AddSeries("Balance (today)", deflated, tuistyles.ColorChartLine2).
			WithLabels(labels)
	default:
		points := m.result.Accumulation(m.granularity)
		portfolio := make([]float64, len(points))
		contributed := make([]float64, len(points))
		labels := make([]string, len(points))
		for i, p := range points {
			portfolio[i] = p.PortfolioValue.InexactFloat64()
			contributed[i] = p.CumulativeContributions.InexactFloat64()
			labels[i] = periodLabel(p.Year, p.Month, m.granularity)
		}
		chart.Title = "Portfolio growth"
		chart.AddSeries("Portfolio", portfolio, tuistyles.ColorChartLine1).
			AddSeries("Contributed", contributed, tuistyles.ColorChartLine2).
			WithLabels(labels)
	}
	return chart.Render()
}

func periodLabel(year, month int, g domain.Granularity) string {
	if g == domain.GranularityMonthly {
		return fmt.Sprintf("%d/%d", year, month)
	}
	return strconv.Itoa(year)
}

// renderReverse shows what it takes to reach the target income.
func (m Model) renderReverse() string {
	r := m.result
	full := func(d decimal.Decimal) string { return m.currency.FormatDecimal(d, false) }

	lines := []string{
		tuistyles.SubtitleStyle.Render("To retire on the target income"),
		"",
		fmt.Sprintf("Target income (today)      %s", full(decimal.NewFromFloat(r.Parameters.TargetMonthlyIncomeToday))),
		fmt.Sprintf("Target income at year %-4d  %s", r.Parameters.Years, full(r.TargetNominalMonthly)),
		fmt.Sprintf("Portfolio needed           %s (today %s)", full(r.NeededPortfolio), full(r.NeededPortfolioDeflated)),
		"",
		fmt.Sprintf("Required contribution      %s /mo", tuistyles.MetricValueStyle.Render(full(r.NeededMonthly))),
		fmt.Sprintf("Current contribution       %s /mo", full(decimal.NewFromFloat(r.Parameters.MonthlyContribution))),
	}

	funded := components.NewProgressBar(r.Parameters.MonthlyContribution, r.NeededMonthly.InexactFloat64()).
		WithLabel("Funded").
		WithWidth(30)
	lines = append(lines, funded.Render())

	gap := r.NeededMonthly.Sub(decimal.NewFromFloat(r.Parameters.MonthlyContribution))
	if gap.IsPositive() {
		lines = append(lines, tuistyles.MetricNegativeStyle.Render(fmt.Sprintf("Short by %s per month", full(gap))))
	} else {
		lines = append(lines, tuistyles.MetricPositiveStyle.Render(fmt.Sprintf("On track with %s to spare per month", full(gap.Neg()))))
	}

	if r.Solver.BracketSaturated {
		lines = append(lines, "", tuistyles.WarningStyle.Render("Warning: target out of reach within the search range; the figure above is the search limit."))
	}
	if year := r.DepletionYear(); year > 0 {
		lines = append(lines, "", tuistyles.WarningStyle.Render(fmt.Sprintf("At the current pace the money runs out in retirement year %d.", year)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatusBar() string {
	parts := []string{m.help.View(m.keys)}
	if m.status != "" {
		parts = append([]string{tuistyles.InfoStyle.Render(m.status)}, parts...)
	}
	return tuistyles.StatusBarStyle.Render(strings.Join(parts, "\n"))
}
