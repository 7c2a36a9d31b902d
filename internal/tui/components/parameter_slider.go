package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/nestegg/internal/tui/tuistyles"
)

// ParameterSlider is a bounded numeric input moved in fixed steps.
type ParameterSlider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Unit      string // suffix such as "%" or " yrs"
	Format    string // fmt verb used when ValueFunc is nil
	ValueFunc func(float64) string
	Width     int
	IsFocused bool
}

// NewParameterSlider creates a slider. The value is clamped to [min, max].
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	p := &ParameterSlider{
		Label:  label,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.0f",
		Width:  24,
	}
	p.SetValue(value)
	return p
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format string
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// WithValueFunc renders values with f instead of Format and Unit.
func (p *ParameterSlider) WithValueFunc(f func(float64) string) *ParameterSlider {
	p.ValueFunc = f
	return p
}

// WithWidth sets the slider width
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// SetFocused sets the focus state
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// Increment moves one step up. It reports whether the value changed.
func (p *ParameterSlider) Increment() bool {
	return p.move(1)
}

// Decrement moves one step down. It reports whether the value changed.
func (p *ParameterSlider) Decrement() bool {
	return p.move(-1)
}

func (p *ParameterSlider) move(dir float64) bool {
	old := p.Value
	next := p.Value + dir*p.Step
	if p.Step > 0 {
		next = p.Min + math.Round((next-p.Min)/p.Step)*p.Step
		// keep fractional steps free of binary noise
		next = math.Round(next*1e6) / 1e6
	}
	p.SetValue(next)
	return p.Value != old
}

// SetValue sets the value directly, clamping to min/max
func (p *ParameterSlider) SetValue(value float64) {
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Percentage returns the position of the value within the range, from 0 to 1.
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// ValueString renders the current value.
func (p *ParameterSlider) ValueString() string {
	return p.format(p.Value)
}

func (p *ParameterSlider) format(v float64) string {
	if p.ValueFunc != nil {
		return p.ValueFunc(v)
	}
	return fmt.Sprintf(p.Format, v) + p.Unit
}

// Render returns the label, value and bar on two lines.
func (p *ParameterSlider) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary).Bold(true)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	marker := "  "
	if p.IsFocused {
		marker = "▸ "
	}

	var b strings.Builder
	b.WriteString(marker)
	b.WriteString(labelStyle.Render(p.Label))
	b.WriteString(" ")
	b.WriteString(valueStyle.Render(p.ValueString()))
	b.WriteString("\n  ")
	b.WriteString(p.renderBar())

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	b.WriteString(" ")
	b.WriteString(rangeStyle.Render(fmt.Sprintf("%s–%s", p.format(p.Min), p.format(p.Max))))
	return b.String()
}

func (p *ParameterSlider) renderBar() string {
	width := p.Width
	if width < 2 {
		width = 2
	}
	thumb := int(math.Round(float64(width-1) * p.Percentage()))

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	if thumb > 0 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", thumb)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if rest := width - thumb - 1; rest > 0 {
		bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", rest)))
	}
	bar.WriteString("]")
	return bar.String()
}

// Toggle is an on/off input rendered like a slider row.
type Toggle struct {
	Label     string
	On        bool
	IsFocused bool
}

// Flip inverts the toggle.
func (t *Toggle) Flip() {
	t.On = !t.On
}

// Render returns the toggle on one line.
func (t *Toggle) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle
	marker := "  "
	if t.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary).Bold(true)
		marker = "▸ "
	}
	state := tuistyles.MetricNegativeStyle.Render("[ ] off")
	if t.On {
		state = tuistyles.MetricPositiveStyle.Render("[x] on")
	}
	return marker + labelStyle.Render(t.Label) + " " + state
}
