// Command lvlseq exposes the sequence toolkit on the command line:
// chain reversal, anagram checks, sliding-window search and pair finding.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvlseq/stopwatch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags.
	verbose bool
	timing  bool

	// logger and sw are rebuilt by the root PersistentPreRunE; the
	// defaults keep directly-invoked run funcs safe in tests.
	logger = zap.NewNop()
	sw     = stopwatch.New(nil)
)

// rootCmd is the base command; every subcommand hangs off it.
var rootCmd = &cobra.Command{
	Use:   "lvlseq",
	Short: "Sequence toolkit: linked chains, rune multisets, sliding windows",
	Long: `lvlseq bundles the sequence primitives of the lvlseq library
into one binary:

  reverse   invert a singly linked chain in place
  anagram   compare two strings as rune multisets
  unique    find the first non-repeating rune
  window    find the longest duplicate-free substring
  group     partition words into anagram classes
  twosum    find two values summing to a target

Use --timing to print per-command wall-clock durations and --verbose
for structured debug logs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1. Build the logger: production config, debug level on demand.
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		// 2. Build the stopwatch: silent unless --timing is set.
		if timing {
			sw = stopwatch.New(stopwatch.MultiSink(
				stopwatch.NewWriterSink(cmd.ErrOrStderr()),
				stopwatch.NewZapSink(logger),
			))
		} else {
			sw = stopwatch.New(nil)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	// Global flags.
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&timing, "timing", "t", false, "Report wall-clock duration of each command")

	// Command-local flags.
	reverseCmd.Flags().BoolVar(&reverseArena, "arena", false, "Use the index-linked arena layout")
	twosumCmd.Flags().Int64Var(&twosumTarget, "target", 0, "Required pair sum")
	_ = twosumCmd.MarkFlagRequired("target")

	// Attach commands to the root.
	rootCmd.AddCommand(reverseCmd)
	rootCmd.AddCommand(anagramCmd)
	rootCmd.AddCommand(uniqueCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(twosumCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
