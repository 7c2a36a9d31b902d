package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/nestegg/internal/domain"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ProjectionMsg:
		// a slower result for parameters that have since changed is dropped
		if msg.Params != m.Params() {
			return m, nil
		}
		m.err = msg.Err
		if msg.Err == nil {
			m.result = msg.Result
		}
		m.rebuildTable()
		return m, nil

	case ExportCompleteMsg:
		if msg.Err != nil {
			m.status = fmt.Sprintf("Export failed: %v", msg.Err)
		} else {
			m.status = "Exported " + msg.Path
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.setFocus(m.focus - 1)

	case key.Matches(msg, m.keys.Down):
		m.setFocus(m.focus + 1)

	case key.Matches(msg, m.keys.Decrease):
		return m.adjustFocused(-1)

	case key.Matches(msg, m.keys.Increase):
		return m.adjustFocused(1)

	case key.Matches(msg, m.keys.Toggle):
		if m.adjust.IsFocused {
			return m.adjustFocused(1)
		}

	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % Tab(len(tabNames))

	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))

	case key.Matches(msg, m.keys.Phase):
		if m.phase == domain.PhaseAccumulation {
			m.phase = domain.PhaseRetirement
		} else {
			m.phase = domain.PhaseAccumulation
		}
		m.rebuildTable()

	case key.Matches(msg, m.keys.Granularity):
		if m.granularity == domain.GranularityYearly {
			m.granularity = domain.GranularityMonthly
		} else {
			m.granularity = domain.GranularityYearly
		}
		m.rebuildTable()

	case key.Matches(msg, m.keys.NextPage):
		m.table.NextPage()

	case key.Matches(msg, m.keys.PrevPage):
		m.table.PrevPage()

	case key.Matches(msg, m.keys.Export):
		if m.result == nil {
			m.status = "Nothing to export yet"
			return m, nil
		}
		m.status = "Exporting..."
		return m, exportCmd(m.result, m.phase, m.granularity, m.exportDir)
	}

	return m, nil
}

// adjustFocused moves the focused slider by one step, or flips the toggle, and
// recalculates when the parameters changed.
func (m Model) adjustFocused(dir int) (tea.Model, tea.Cmd) {
	changed := false
	if m.adjust.IsFocused {
		m.adjust.Flip()
		changed = true
	} else if dir > 0 {
		changed = m.sliders[m.focus].Increment()
	} else {
		changed = m.sliders[m.focus].Decrement()
	}

	if !changed {
		return m, nil
	}
	m.status = ""
	return m, projectCmd(m.projector, m.Params())
}
