// Package tuistyles holds the colour palette and lipgloss styles shared by the
// terminal UI and its components.
package tuistyles

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorPrimary   = lipgloss.Color("#7D56F4")
	ColorSecondary = lipgloss.Color("#43BF6D")
	ColorAccent    = lipgloss.Color("#F2B134")
	ColorSuccess   = lipgloss.Color("#04B575")
	ColorDanger    = lipgloss.Color("#E5534B")
	ColorInfo      = lipgloss.Color("#39A0ED")

	ColorForeground = lipgloss.Color("#FAFAFA")
	ColorMuted      = lipgloss.Color("#8A8A8A")
	ColorBorder     = lipgloss.Color("#3C3C3C")

	ColorChartLine1 = lipgloss.Color("#7D56F4")
	ColorChartLine2 = lipgloss.Color("#43BF6D")
)

var (
	AppStyle       = lipgloss.NewStyle().Padding(0, 1)
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(ColorForeground).Background(ColorPrimary).Padding(0, 1)
	SubtitleStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	StatusBarStyle = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)

	BorderStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorBorder).Padding(0, 1)
	ActiveBorderStyle = BorderStyle.BorderForeground(ColorPrimary)

	TabStyle       = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
	ActiveTabStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorForeground).Background(ColorPrimary).Padding(0, 1)

	MetricLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorForeground)
	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	ParameterLabelStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	ParameterValueStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
	SliderTrackStyle    = lipgloss.NewStyle().Foreground(ColorBorder)
	SliderThumbStyle    = lipgloss.NewStyle().Foreground(ColorPrimary)

	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	InfoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)

	TableHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(ColorBorder)
	TableSelectedStyle = lipgloss.NewStyle().Foreground(ColorForeground).Background(ColorPrimary)
)

// MetricTrendStyle returns the style for a positive or negative change.
func MetricTrendStyle(positive bool) lipgloss.Style {
	if positive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns an arrow for the change direction.
func TrendIndicator(positive bool) string {
	if positive {
		return "▲"
	}
	return "▼"
}
