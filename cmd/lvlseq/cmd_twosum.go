package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvlseq/stopwatch"
	"github.com/katalvlaran/lvlseq/twosum"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// twosumTarget is the required pair sum, set via --target.
var twosumTarget int64

// twosumCmd finds two values summing to the target.
var twosumCmd = &cobra.Command{
	Use:   "twosum --target <sum> <num> <num> [num ...]",
	Short: "Find two numbers summing to a target",
	Long: `Scans the numbers left to right and prints the first pair of
indices whose values sum to the target.

  lvlseq twosum --target 10 2 3 4 5 6 7  → nums[2] + nums[4] = 4 + 6`,
	Args: cobra.MinimumNArgs(2),
	RunE: runTwoSum,
}

// pairResult carries the answer of one lookup through stopwatch.Timed.
type pairResult struct {
	i, j int
	ok   bool
}

// runTwoSum parses the arguments and executes the one-pass lookup.
func runTwoSum(cmd *cobra.Command, args []string) error {
	// 1. Parse every argument as a signed integer.
	nums := make([]int64, len(args))
	for i, raw := range args {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("twosum: parse %q: %w", raw, err)
		}
		nums[i] = v
	}

	// 2. Search, timing the scan itself rather than the parsing.
	res, _ := stopwatch.Timed(sw, "twosum", func() (pairResult, error) {
		i, j, ok := twosum.Find(nums, twosumTarget)
		return pairResult{i: i, j: j, ok: ok}, nil
	})

	// 3. Report.
	if !res.ok {
		fmt.Fprintf(cmd.OutOrStdout(), "no pair sums to %d\n", twosumTarget)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "nums[%d] + nums[%d] = %d + %d\n",
		res.i, res.j, nums[res.i], nums[res.j])
	logger.Debug("pair found", zap.Int("i", res.i), zap.Int("j", res.j), zap.Int64("target", twosumTarget))

	return nil
}
