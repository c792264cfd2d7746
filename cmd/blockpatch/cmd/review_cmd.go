package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"blockpatch/internal/core"
	"blockpatch/internal/tui"
)

// newReviewCmd shows the rewritten block and writes it only on confirmation.
func newReviewCmd(store core.DocumentStore, logger zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "review [file]",
		Short: "Preview the rewritten hero block before writing it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patcher := core.NewPatcher(store, logger)
			plan, err := patcher.Prepare(targetPath(args))
			if err != nil {
				return err
			}
			outcome, err := tui.Run(plan, patcher)
			if err != nil {
				return err
			}
			if outcome == tui.OutcomeCancelled {
				logger.Info().Str("path", plan.Path).Msg("review cancelled, nothing written")
			}
			return nil
		},
	}
}
