package components

import (
	"fmt"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/nestegg/internal/output"
)

func TestMetricCard_Render(t *testing.T) {
	card := NewMetricCard("Final portfolio", "R$ 2.5M").
		WithTrend(true, "R$ 500K today").
		WithDescription("nominal")

	out := card.Render()
	assert.Contains(t, out, "Final portfolio")
	assert.Contains(t, out, "R$ 2.5M")
	assert.Contains(t, out, "▲ R$ 500K today")
	assert.Contains(t, out, "nominal")
}

func TestMetricGrid(t *testing.T) {
	assert.Empty(t, MetricGrid(nil, 2))

	cards := []*MetricCard{
		NewMetricCard("A", "1"),
		NewMetricCard("B", "2"),
		NewMetricCard("C", "3"),
	}
	one := lipgloss.Height(cards[0].Render())
	assert.Equal(t, 2*one, lipgloss.Height(MetricGrid(cards, 2)))
	assert.Equal(t, one, lipgloss.Height(MetricGrid(cards, 3)))
}

func TestASCIIChart_Empty(t *testing.T) {
	assert.Contains(t, NewASCIIChart("x").Render(), "No data")
	assert.Contains(t, NewASCIIChart("x").AddSeries("empty", nil, "#fff").Render(), "No data")
}

func TestASCIIChart_Render(t *testing.T) {
	chart := NewASCIIChart("Portfolio").
		WithSize(50, 8).
		WithLabels([]string{"1", "2", "3", "4"}).
		AddSeries("Nominal", []float64{0, 10, 20, 30}, "#7D56F4").
		AddSeries("Today", []float64{0, 5, 10, 15}, "#43BF6D")

	out := chart.Render()
	assert.Contains(t, out, "Portfolio")
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "■")
	assert.Contains(t, out, "Nominal")
	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "└")
}

func TestASCIIChart_FlatSeries(t *testing.T) {
	chart := NewASCIIChart("").WithSize(30, 4).AddSeries("flat", []float64{7, 7, 7}, "#fff")
	assert.NotPanics(t, func() { chart.Render() })
}

func TestASCIIChart_SinglePoint(t *testing.T) {
	chart := NewASCIIChart("").WithLabels([]string{"1"}).AddSeries("one", []float64{3}, "#fff")
	assert.NotPanics(t, func() { chart.Render() })
}

func TestDrawLine(t *testing.T) {
	grid := make([][]rune, 3)
	for i := range grid {
		grid[i] = []rune("   ")
	}
	drawLine(grid, 0, 2, 2, 0, '*')
	assert.Equal(t, "  *", string(grid[0]))
	assert.Equal(t, " * ", string(grid[1]))
	assert.Equal(t, "*  ", string(grid[2]))
}

func sampleTable(rows int) *output.Table {
	t := &output.Table{Title: "Accumulation (yearly)", Headers: []string{"Year", "Portfolio"}}
	for i := 1; i <= rows; i++ {
		t.Rows = append(t.Rows, []output.Cell{
			{Int: i, Kind: output.IntCell},
			{Money: decimal.NewFromInt(int64(i * 1000)), Kind: output.MoneyCell},
		})
	}
	return t
}

func TestDataTable_Paging(t *testing.T) {
	dt := NewDataTable(4)
	dt.SetTable(sampleTable(10), output.Cell.String)

	assert.Equal(t, 3, dt.TotalPages())
	assert.Equal(t, 0, dt.Page())
	require.Len(t, dt.VisibleRows(), 4)
	assert.Equal(t, "1", dt.VisibleRows()[0][0])

	dt.NextPage()
	dt.NextPage()
	assert.Equal(t, 2, dt.Page())
	require.Len(t, dt.VisibleRows(), 2)
	assert.Equal(t, "9", dt.VisibleRows()[0][0])

	dt.NextPage()
	assert.Equal(t, 2, dt.Page(), "stays on the last page")

	dt.PrevPage()
	assert.Equal(t, 1, dt.Page())
	assert.Contains(t, dt.View(), "page 2 of 3")
	assert.Contains(t, dt.View(), "Accumulation (yearly)")
}

func TestDataTable_ShrinkingTableClampsPage(t *testing.T) {
	dt := NewDataTable(5)
	dt.SetTable(sampleTable(20), output.Cell.String)
	dt.NextPage()
	dt.NextPage()
	dt.NextPage()
	assert.Equal(t, 3, dt.Page())

	dt.SetTable(sampleTable(6), output.Cell.String)
	assert.Equal(t, 1, dt.Page())
	assert.Len(t, dt.VisibleRows(), 1)
}

func TestDataTable_ColumnCountChange(t *testing.T) {
	dt := NewDataTable(3)
	dt.SetTable(sampleTable(5), output.Cell.String)

	wide := &output.Table{Title: "Accumulation (monthly)", Headers: []string{"Year", "Month", "Portfolio"}}
	for m := 1; m <= 3; m++ {
		wide.Rows = append(wide.Rows, []output.Cell{
			{Int: 1, Kind: output.IntCell},
			{Int: m, Kind: output.IntCell},
			{Money: decimal.NewFromInt(100), Kind: output.MoneyCell},
		})
	}
	assert.NotPanics(t, func() { dt.SetTable(wide, output.Cell.String) })
	assert.Contains(t, dt.View(), "Month")
}

func TestDataTable_Empty(t *testing.T) {
	dt := NewDataTable(3)
	assert.Contains(t, dt.View(), "No rows")

	dt.SetTable(nil, func(c output.Cell) string { return fmt.Sprint(c) })
	assert.Contains(t, dt.View(), "No rows")
	assert.Equal(t, 1, dt.TotalPages())
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		goal     float64
		pct      float64
		complete bool
		text     string
	}{
		{"half", 500, 1000, 50, false, "50%"},
		{"over goal", 1500, 1000, 150, true, "150%"},
		{"zero goal", 100, 0, 100, true, "100%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewProgressBar(tt.current, tt.goal).WithWidth(10).WithLabel("Funded")
			assert.InDelta(t, tt.pct, bar.Percentage(), 1e-9)
			assert.Equal(t, tt.complete, bar.IsComplete())
			assert.Contains(t, bar.Render(), tt.text)
			assert.Contains(t, bar.Render(), "Funded")
		})
	}
}
