package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all Bubbletea update logic for the review model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 2
		m.viewport.Height = max(msg.Height-chromeHeight, 3)
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func handleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	if m.outcome != OutcomePending {
		return m, tea.Quit
	}
	switch msg.String() {
	case "y", "enter":
		if err := m.patcher.Commit(m.plan); err != nil {
			m.outcome = OutcomeFailed
			m.err = err
			return m, tea.Quit
		}
		m.outcome = OutcomeApplied
		return m, tea.Quit
	case "n", "q", "esc", "ctrl+c":
		m.outcome = OutcomeCancelled
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}
