package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/nestegg/internal/tui/tuistyles"
)

const yAxisWidth = 12

// DataSeries represents a single line in a chart
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart plots one or more series on a character grid.
type ASCIIChart struct {
	Title       string
	Series      []*DataSeries
	Labels      []string // x-axis labels, one per point
	Width       int
	Height      int
	ShowLegend  bool
	XAxisLabel  string
	FormatValue func(float64) string
}

// NewASCIIChart creates a new ASCII chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:       title,
		Width:       60,
		Height:      12,
		ShowLegend:  true,
		FormatValue: func(v float64) string { return fmt.Sprintf("%.0f", v) },
	}
}

// AddSeries adds a data series to the chart
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// WithLabels sets the X-axis labels
func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// WithValueFormatter sets how y-axis values are printed.
func (c *ASCIIChart) WithValueFormatter(f func(float64) string) *ASCIIChart {
	c.FormatValue = f
	return c
}

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	if !c.hasPoints() {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder
	if c.Title != "" {
		content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
		content.WriteString("\n")
	}

	minVal, maxVal := c.bounds()
	content.WriteString(c.renderGrid(minVal, maxVal))

	if c.XAxisLabel != "" {
		content.WriteString("\n")
		content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Italic(true).Render(c.XAxisLabel))
	}
	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n")
		content.WriteString(c.renderLegend())
	}
	return content.String()
}

func (c *ASCIIChart) hasPoints() bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return true
		}
	}
	return false
}

// bounds returns the padded value range across all series. A flat range is
// widened so points still map onto the grid.
func (c *ASCIIChart) bounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, v := range s.Points {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if hi == lo {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

func (c *ASCIIChart) plotWidth() int {
	return max(c.Width-yAxisWidth-3, 2)
}

func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	width, height := c.plotWidth(), max(c.Height, 2)

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	toCell := func(i, n int, v float64) (int, int) {
		x := 0
		if n > 1 {
			x = int(math.Round(float64(i) / float64(n-1) * float64(width-1)))
		}
		y := height - 1 - int(math.Round((v-minVal)/(maxVal-minVal)*float64(height-1)))
		return x, y
	}

	for idx, s := range c.Series {
		char := seriesChar(idx)
		for i, v := range s.Points {
			x, y := toCell(i, len(s.Points), v)
			if i > 0 {
				px, py := toCell(i-1, len(s.Points), s.Points[i-1])
				drawLine(grid, px, py, x, y, char)
			}
			if inGrid(grid, x, y) {
				grid[y][x] = char
			}
		}
	}

	axisStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)

	var out strings.Builder
	for i, row := range grid {
		label := ""
		if i == 0 || i == height-1 || i == height/2 {
			label = c.FormatValue(maxVal - float64(i)/float64(height-1)*(maxVal-minVal))
		}
		out.WriteString(axisStyle.Render(label))
		out.WriteString(" │ ")
		out.WriteString(c.colorRow(row))
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth))
	out.WriteString(" └")
	out.WriteString(strings.Repeat("─", width+1))

	if len(c.Labels) > 0 {
		out.WriteString("\n")
		out.WriteString(c.renderXAxisLabels(width))
	}
	return out.String()
}

// colorRow renders a grid row, colouring each series by its character.
func (c *ASCIIChart) colorRow(row []rune) string {
	var b strings.Builder
	for _, r := range row {
		if r == ' ' {
			b.WriteRune(r)
			continue
		}
		style := lipgloss.NewStyle()
		for idx, s := range c.Series {
			if seriesChar(idx) == r {
				style = style.Foreground(s.Color)
				break
			}
		}
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

func seriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

func inGrid(grid [][]rune, x, y int) bool {
	return y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y])
}

// drawLine connects two cells using Bresenham's algorithm without overwriting points.
func drawLine(grid [][]rune, x0, y0, x1, y1 int, char rune) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for x, y := x0, y0; ; {
		if inGrid(grid, x, y) && grid[y][x] == ' ' {
			grid[y][x] = char
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// renderXAxisLabels prints up to five labels at their point positions.
func (c *ASCIIChart) renderXAxisLabels(width int) string {
	const maxLabels = 5
	n := len(c.Labels)
	line := []rune(strings.Repeat(" ", width+yAxisWidth+3))

	count := min(n, maxLabels)
	for k := 0; k < count; k++ {
		i := 0
		if count > 1 {
			i = k * (n - 1) / (count - 1)
		}
		x := 0
		if n > 1 {
			x = int(math.Round(float64(i) / float64(n-1) * float64(width-1)))
		}
		label := []rune(c.Labels[i])
		start := yAxisWidth + 3 + x
		if start+len(label) > len(line) {
			start = len(line) - len(label)
		}
		for j, r := range label {
			if start+j >= 0 {
				line[start+j] = r
			}
		}
	}
	return lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render(strings.TrimRight(string(line), " "))
}

func (c *ASCIIChart) renderLegend() string {
	items := make([]string, 0, len(c.Series))
	for i, s := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesChar(i)))
		items = append(items, fmt.Sprintf("%s %s", symbol, s.Name))
	}
	return lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Render(strings.Join(items, "   "))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
