package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/nestegg/internal/tui/tuistyles"
)

// ProgressBar shows how far a value is towards a goal. Values past the goal fill
// the bar and the percentage keeps counting.
type ProgressBar struct {
	Current float64
	Goal    float64
	Width   int
	Label   string
}

// NewProgressBar creates a new progress bar
func NewProgressBar(current, goal float64) *ProgressBar {
	return &ProgressBar{
		Current: current,
		Goal:    goal,
		Width:   30,
	}
}

// WithLabel sets the progress label
func (p *ProgressBar) WithLabel(label string) *ProgressBar {
	p.Label = label
	return p
}

// WithWidth sets the bar width
func (p *ProgressBar) WithWidth(width int) *ProgressBar {
	p.Width = width
	return p
}

// Percentage returns Current as a percentage of Goal. A zero goal counts as reached.
func (p *ProgressBar) Percentage() float64 {
	if p.Goal <= 0 {
		return 100
	}
	return p.Current / p.Goal * 100
}

// IsComplete reports whether the goal is reached.
func (p *ProgressBar) IsComplete() bool {
	return p.Percentage() >= 100
}

// Render returns the styled progress bar
func (p *ProgressBar) Render() string {
	var content strings.Builder

	if p.Label != "" {
		content.WriteString(tuistyles.ParameterLabelStyle.Render(p.Label))
		content.WriteString(" ")
	}

	percentage := p.Percentage()
	filled := int(math.Round(float64(p.Width) * math.Min(math.Max(percentage, 0), 100) / 100))
	empty := p.Width - filled

	barColor := tuistyles.ColorAccent
	if p.IsComplete() {
		barColor = tuistyles.ColorSuccess
	}
	barStyle := lipgloss.NewStyle().Foreground(barColor)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	content.WriteString("[")
	if filled > 0 {
		content.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	}
	if empty > 0 {
		content.WriteString(emptyStyle.Render(strings.Repeat("░", empty)))
	}
	content.WriteString("] ")
	content.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorPrimary).Bold(true).Render(fmt.Sprintf("%.0f%%", percentage)))

	return content.String()
}
