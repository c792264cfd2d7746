package tui

import (
	"github.com/charmbracelet/bubbles/viewport"

	"blockpatch/internal/core"
)

// Outcome is how a review session ended.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeApplied
	OutcomeCancelled
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFailed:
		return "failed"
	default:
		return "pending"
	}
}

// model is the Bubbletea model for the review screen.
type model struct {
	plan    *core.Plan
	patcher *core.Patcher

	viewport viewport.Model
	width    int
	height   int

	outcome Outcome
	err     error
}

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeHeight  = 6 // header, borders and help line around the viewport
)

// InitialModel creates the review model for a prepared plan.
func InitialModel(plan *core.Plan, patcher *core.Patcher, width, height int) model {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	vp := viewport.New(width-2, max(height-chromeHeight, 3))
	vp.SetContent(plan.Block)
	return model{
		plan:     plan,
		patcher:  patcher,
		viewport: vp,
		width:    width,
		height:   height,
	}
}

// Outcome reports how the session ended and the commit error, if any.
func (m model) Outcome() (Outcome, error) {
	return m.outcome, m.err
}
