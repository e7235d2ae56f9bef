package main

import (
	"fmt"

	"github.com/katalvlaran/lvlseq/freq"
	"github.com/katalvlaran/lvlseq/stopwatch"
	"github.com/katalvlaran/lvlseq/window"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// anagramCmd compares two strings as rune multisets.
var anagramCmd = &cobra.Command{
	Use:   "anagram <a> <b>",
	Short: "Report whether two strings are anagrams",
	Long: `Compares two strings as rune multisets and prints true or false.
The check is strict: case, spaces and punctuation all count.

  lvlseq anagram cat tac   → true
  lvlseq anagram cat dogs  → false`,
	Args: cobra.ExactArgs(2),
	RunE: runAnagram,
}

// runAnagram executes the multiset comparison.
func runAnagram(cmd *cobra.Command, args []string) error {
	return stopwatch.Time(sw, "anagram", func() error {
		ok := freq.IsAnagram(args[0], args[1])
		fmt.Fprintln(cmd.OutOrStdout(), ok)
		logger.Debug("anagram check", zap.String("a", args[0]), zap.String("b", args[1]), zap.Bool("anagram", ok))

		return nil
	})
}

// uniqueCmd finds the first non-repeating rune of a string.
var uniqueCmd = &cobra.Command{
	Use:   "unique <string>",
	Short: "Print the first non-repeating rune",
	Long: `Scans the string in reading order and prints the first rune that
occurs exactly once.

  lvlseq unique naveena  → v`,
	Args: cobra.ExactArgs(1),
	RunE: runUnique,
}

// runUnique executes the first-unique lookup.
func runUnique(cmd *cobra.Command, args []string) error {
	return stopwatch.Time(sw, "unique", func() error {
		r, ok := freq.FirstUnique(args[0])
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "no unique character")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%c\n", r)

		return nil
	})
}

// windowCmd finds the longest duplicate-free substring.
var windowCmd = &cobra.Command{
	Use:   "window <string>",
	Short: "Print the longest substring without repeating runes",
	Long: `Runs a sliding window over the string and prints the longest
duplicate-free substring with its rune length. Among equal-length
candidates the leftmost wins.

  lvlseq window abcababcabcd  → abcd (length 4)`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

// runWindow executes the sliding-window search.
func runWindow(cmd *cobra.Command, args []string) error {
	return stopwatch.Time(sw, "window", func() error {
		longest := window.LongestUniqueSubstring(args[0])
		fmt.Fprintf(cmd.OutOrStdout(), "%s (length %d)\n", longest, window.LongestUniqueLen(args[0]))

		return nil
	})
}

// groupCmd partitions words into anagram classes.
var groupCmd = &cobra.Command{
	Use:   "group <word> [word ...]",
	Short: "Partition words into anagram classes",
	Long: `Groups the words by rune multiset and prints one class per line,
classes in first-appearance order.

  lvlseq group eat tea tan ate  → [eat tea ate]
                                  [tan]`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGroup,
}

// runGroup executes the anagram partition.
func runGroup(cmd *cobra.Command, args []string) error {
	return stopwatch.Time(sw, "group", func() error {
		for _, class := range freq.Group(args) {
			fmt.Fprintln(cmd.OutOrStdout(), class)
		}
		logger.Debug("grouped words", zap.Int("words", len(args)))

		return nil
	})
}
