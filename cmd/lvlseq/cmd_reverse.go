package main

import (
	"fmt"

	"github.com/katalvlaran/lvlseq/chain"
	"github.com/katalvlaran/lvlseq/stopwatch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reverseArena switches the backing layout from pointer nodes to the
// index-linked arena.
var reverseArena bool

// reverseCmd inverts its arguments as a singly linked chain.
var reverseCmd = &cobra.Command{
	Use:   "reverse [value ...]",
	Short: "Reverse values as a singly linked chain",
	Long: `Builds a singly linked chain from the arguments, inverts it in
place by rewiring the links, and prints the reversed sequence.

  lvlseq reverse 10 20 30        → [30 20 10]
  lvlseq reverse --arena a b c   → [c b a]`,
	Args: cobra.ArbitraryArgs,
	RunE: runReverse,
}

// runReverse executes the reversal over the chosen layout.
func runReverse(cmd *cobra.Command, args []string) error {
	return stopwatch.Time(sw, "reverse", func() error {
		if reverseArena {
			a := chain.NewArena(args...)
			a.Reverse()
			fmt.Fprintln(cmd.OutOrStdout(), a)
			logger.Debug("reversed chain", zap.Int("length", a.Len()), zap.Bool("arena", true))
			return nil
		}

		l := chain.New(args...)
		l.Reverse()
		fmt.Fprintln(cmd.OutOrStdout(), l)
		logger.Debug("reversed chain", zap.Int("length", l.Len()), zap.Bool("arena", false))
		return nil
	})
}
