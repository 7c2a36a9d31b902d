package tui

import "github.com/rgehrsitz/nestegg/internal/domain"

// Tab selects the panel shown under the stat cards.
type Tab int

const (
	TabChart Tab = iota
	TabTable
	TabReverse
)

var tabNames = []string{"Chart", "Table", "Reverse calculator"}

func (t Tab) String() string {
	if int(t) < len(tabNames) {
		return tabNames[t]
	}
	return "Unknown"
}

// ProjectionMsg carries the result of a recalculation.
type ProjectionMsg struct {
	Params domain.InputParameters
	Result *domain.ProjectionResult
	Err    error
}

// ExportCompleteMsg signals an export has finished
type ExportCompleteMsg struct {
	Path string
	Err  error
}
