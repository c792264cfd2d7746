package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	blockStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#555555"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	okStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00"))
	errStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
)

// ModelView renders the review model's view as a string.
func ModelView(m model) string {
	switch m.outcome {
	case OutcomeApplied:
		return okStyle.Render("Block rewritten: "+m.plan.Path) + "\n"
	case OutcomeCancelled:
		return "No changes written.\n"
	case OutcomeFailed:
		return errStyle.Render(fmt.Sprintf("Write failed: %v", m.err)) + "\n"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(headerLine(m)),
		blockStyle.Render(m.viewport.View()),
		helpStyle.Render("y/enter: write  •  n/q/esc: cancel  •  ↑/↓ pgup/pgdn: scroll"),
	)
}

// headerLine describes the replaced span, truncated to the terminal width.
func headerLine(m model) string {
	line := fmt.Sprintf("%s: replace lines %d-%d (%d%%)",
		m.plan.Path, m.plan.StartLine, m.plan.EndLine-1, int(m.viewport.ScrollPercent()*100))
	return runewidth.Truncate(line, m.width, "…")
}
