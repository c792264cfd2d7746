package core

import (
	"fmt"

	"github.com/rs/zerolog"

	"blockpatch/internal/hero"
	"blockpatch/internal/rewrite"
)

// Plan is a fully assembled rewrite that has not been written yet.
type Plan struct {
	Path       string
	Source     string
	Region     rewrite.Region
	Decoration string
	Block      string
	Output     string

	// StartLine and EndLine are the 1-based lines of the two markers.
	StartLine int
	EndLine   int
}

// Patcher replaces the region between two markers with a rendered template.
type Patcher struct {
	Store       DocumentStore
	Template    hero.Template
	StartMarker string
	EndMarker   string
	Logger      zerolog.Logger
}

// NewPatcher returns a Patcher for the Programs hero block backed by store.
func NewPatcher(store DocumentStore, logger zerolog.Logger) *Patcher {
	return &Patcher{
		Store:       store,
		Template:    hero.Programs,
		StartMarker: hero.StartMarker,
		EndMarker:   hero.EndMarker,
		Logger:      logger,
	}
}

// Prepare reads path and assembles the rewritten document without writing it.
func (p *Patcher) Prepare(path string) (*Plan, error) {
	source, err := p.Store.Read(path)
	if err != nil {
		return nil, err
	}

	region, err := rewrite.Locate(source, p.StartMarker, p.EndMarker)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	lines := rewrite.NewLineIndex(source)
	plan := &Plan{
		Path:      path,
		Source:    source,
		Region:    region,
		StartLine: lines.LineOf(region.Start) + 1,
		EndLine:   lines.LineOf(region.End) + 1,
	}
	plan.Decoration = rewrite.Decoration(region.Text(source))
	plan.Block = p.Template.Render(plan.Decoration)
	plan.Output = rewrite.Splice(source, region, plan.Block)

	p.Logger.Debug().
		Str("path", path).
		Int("start_line", plan.StartLine).
		Int("end_line", plan.EndLine).
		Int("decoration_bytes", len(plan.Decoration)).
		Msg("located block")
	return plan, nil
}

// Commit writes plan.Output over plan.Path in a single write.
func (p *Patcher) Commit(plan *Plan) error {
	if err := p.Store.Write(plan.Path, plan.Output); err != nil {
		return err
	}
	p.Logger.Info().
		Str("path", plan.Path).
		Int("replaced_lines", plan.EndLine-plan.StartLine).
		Msg("rewrote block")
	return nil
}

// Apply prepares and commits the rewrite of path. Nothing is written unless
// the whole document was assembled.
func (p *Patcher) Apply(path string) error {
	plan, err := p.Prepare(path)
	if err != nil {
		return err
	}
	return p.Commit(plan)
}
