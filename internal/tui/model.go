package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/nestegg/internal/calculation"
	"github.com/rgehrsitz/nestegg/internal/domain"
	"github.com/rgehrsitz/nestegg/internal/output"
	"github.com/rgehrsitz/nestegg/internal/tui/components"
)

const tablePageSize = 12

const (
	sliderYears = iota
	sliderReturn
	sliderContribution
	sliderInflation
	sliderRetirement
	sliderTarget
	sliderCount
)

// Config holds what the model needs to start.
type Config struct {
	Projector calculation.Projector
	Currency  *output.CurrencyFormatter
	Params    domain.InputParameters
	ExportDir string
}

// Model is the interactive calculator: parameter sliders on the left, results on the right.
type Model struct {
	width  int
	height int

	projector calculation.Projector
	currency  *output.CurrencyFormatter
	exportDir string

	sliders []*components.ParameterSlider
	adjust  *components.Toggle
	focus   int // len(sliders) focuses the toggle

	tab         Tab
	phase       domain.Phase
	granularity domain.Granularity
	table       *components.DataTable

	result *domain.ProjectionResult
	err    error
	status string

	keys keyMap
	help help.Model
}

// NewModel creates the model with sliders set from cfg.Params.
func NewModel(cfg Config) Model {
	if cfg.Projector == nil {
		cfg.Projector = calculation.NewProjectionEngine()
	}
	if cfg.Currency == nil {
		cfg.Currency = output.DefaultCurrencyFormatter()
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "."
	}

	m := Model{
		width:       100,
		height:      40,
		projector:   cfg.Projector,
		currency:    cfg.Currency,
		exportDir:   cfg.ExportDir,
		adjust:      &components.Toggle{Label: "Raise contribution with inflation", On: cfg.Params.AdjustContributionForInflation},
		phase:       domain.PhaseAccumulation,
		granularity: domain.GranularityYearly,
		table:       components.NewDataTable(tablePageSize),
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
	m.sliders = m.buildSliders(cfg.Params)
	m.setFocus(0)
	return m
}

func (m Model) buildSliders(p domain.InputParameters) []*components.ParameterSlider {
	money := func(v float64) string { return m.currency.Format(v, false) }

	sliders := make([]*components.ParameterSlider, sliderCount)
	sliders[sliderYears] = components.NewParameterSlider("Years investing", float64(p.Years), 5, 45, 1).WithUnit(" yrs")
	sliders[sliderReturn] = components.NewParameterSlider("Annual return", p.AnnualReturnPct, 3, 20, 0.5).WithFormat("%.1f").WithUnit("%")
	sliders[sliderContribution] = components.NewParameterSlider("Monthly contribution", p.MonthlyContribution, 100, 20000, 100).WithValueFunc(money)
	sliders[sliderInflation] = components.NewParameterSlider("Annual inflation", p.InflationPct, 2, 15, 0.5).WithFormat("%.1f").WithUnit("%")
	sliders[sliderRetirement] = components.NewParameterSlider("Years in retirement", float64(p.RetirementYears), 10, 40, 1).WithUnit(" yrs")
	sliders[sliderTarget] = components.NewParameterSlider("Target income (today)", p.TargetMonthlyIncomeToday, 500, 50000, 500).WithValueFunc(money)
	return sliders
}

// Params returns the parameters currently set on the sliders.
func (m Model) Params() domain.InputParameters {
	return domain.InputParameters{
		Years:                          int(m.sliders[sliderYears].Value),
		AnnualReturnPct:                m.sliders[sliderReturn].Value,
		MonthlyContribution:            m.sliders[sliderContribution].Value,
		InflationPct:                   m.sliders[sliderInflation].Value,
		RetirementYears:                int(m.sliders[sliderRetirement].Value),
		TargetMonthlyIncomeToday:       m.sliders[sliderTarget].Value,
		AdjustContributionForInflation: m.adjust.On,
	}
}

// Result returns the latest projection, or nil before the first one arrives.
func (m Model) Result() *domain.ProjectionResult {
	return m.result
}

func (m *Model) setFocus(i int) {
	m.focus = max(0, min(i, len(m.sliders)))
	for idx, s := range m.sliders {
		s.SetFocused(idx == m.focus)
	}
	m.adjust.IsFocused = m.focus == len(m.sliders)
}

// rebuildTable refreshes the data table from the active phase and granularity.
func (m *Model) rebuildTable() {
	if m.result == nil {
		m.table.SetTable(nil, nil)
		return
	}
	t, err := output.SeriesTable(m.result, m.phase, m.granularity)
	if err != nil {
		m.err = err
		return
	}
	m.table.SetTable(t, m.formatCell)
}

func (m Model) formatCell(c output.Cell) string {
	if c.Kind == output.IntCell {
		return c.String()
	}
	return m.currency.FormatDecimal(c.Money, false)
}

// Init starts the first projection.
func (m Model) Init() tea.Cmd {
	return projectCmd(m.projector, m.Params())
}

// projectCmd runs the projection for params off the update loop.
func projectCmd(projector calculation.Projector, params domain.InputParameters) tea.Cmd {
	return func() tea.Msg {
		result, err := projector.Project(params)
		return ProjectionMsg{Params: params, Result: result, Err: err}
	}
}

// exportCmd writes the active series as an XLSX file in dir.
func exportCmd(result *domain.ProjectionResult, phase domain.Phase, granularity domain.Granularity, dir string) tea.Cmd {
	return func() tea.Msg {
		path := filepath.Join(dir, output.ExportFileName(phase, granularity, "xlsx"))
		f, err := os.Create(path)
		if err != nil {
			return ExportCompleteMsg{Path: path, Err: fmt.Errorf("failed to create %s: %w", path, err)}
		}
		if err := output.ExportSeries(f, result, phase, granularity, "xlsx"); err != nil {
			f.Close()
			return ExportCompleteMsg{Path: path, Err: err}
		}
		if err := f.Close(); err != nil {
			return ExportCompleteMsg{Path: path, Err: err}
		}
		return ExportCompleteMsg{Path: path}
	}
}
