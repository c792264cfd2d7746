package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"blockpatch/internal/core"
)

// Run shows the prepared plan and commits it only if the user confirms.
func Run(plan *core.Plan, patcher *core.Patcher) (Outcome, error) {
	m := InitialModel(plan, patcher, defaultWidth, defaultHeight)
	a := &teaModelAdapter{m}
	p := tea.NewProgram(a, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return OutcomeFailed, err
	}
	return a.m.Outcome()
}

// teaModelAdapter adapts our model to the tea.Model interface using Update and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return nil
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
