package cmd

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"blockpatch/internal/core"
	"blockpatch/internal/hero"
)

// NewRootCmd builds the blockpatch command tree over store, logging to logOut.
func NewRootCmd(store core.DocumentStore, logOut io.Writer) *cobra.Command {
	logger := newLogger(logOut)

	rootCmd := &cobra.Command{
		Use:   "blockpatch [file]",
		Short: "Rewrite the hero block of a page with the fixed hero template",
		Long: `blockpatch finds the block between the "Hero Section" and "Section Divider"
comments, keeps every line of it after the marker line, and rebuilds the block
around them from a fixed template. The file is overwritten in place.

The file defaults to ` + hero.DefaultTarget + `.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return core.NewPatcher(store, logger).Apply(targetPath(args))
		},
	}

	rootCmd.AddCommand(newReviewCmd(store, logger))
	return rootCmd
}

// Execute runs the root command against the local filesystem.
// This is called by main.main().
func Execute() {
	err := NewRootCmd(core.NewFileStore(), os.Stderr).Execute()
	if err != nil {
		os.Exit(1)
	}
}

func targetPath(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return hero.DefaultTarget
}

// newLogger writes human-readable logs to w; stdout is never used.
func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}
