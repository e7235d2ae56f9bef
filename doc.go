// Package lvlseq is your in-memory playground for building, walking,
// and transforming sequences: from a classic linked chain to sliding
// windows, frequency maps and scoped timing.
//
// 🚀 What is lvlseq?
//
//	A modern, generics-first library that brings together:
//		• Chain primitives: build singly linked lists, traverse them lazily,
//		  reverse them in place with O(1) extra space
//		• Arena chains: index-linked nodes in one contiguous allocation
//		• Frequency tools: anagram checks, anagram grouping, first unique rune
//		• Sliding windows: longest run of pairwise-distinct elements
//		• Flattening: collapse arbitrarily nested sequences into one
//		• Two-sum: one-pass complement search over integer slices
//		• Stopwatch: scoped timers that emit to pluggable sinks
//		  (writer, zap, Prometheus)
//
// ✨ Why choose lvlseq?
//
//   - Beginner-friendly: minimal API, clear, intuitive naming
//   - Deterministic: every operation documents its ordering guarantees
//   - Generic: chains, windows and pair search work over your own types
//   - Lazy where it matters: traversal yields iter.Seq, the sink is yours
//
// Under the hood, everything is organized under focused subpackages:
//
//	chain/     : Node, List and Arena (construct, traverse, reverse)
//	freq/      : rune-frequency operations (anagrams, first unique)
//	window/    : longest-distinct-run sliding window
//	flatten/   : nested sequence flattening
//	twosum/    : pair-with-target-sum search
//	stopwatch/ : scoped timing with pluggable sinks
//	cmd/lvlseq : a small CLI exposing the lot
//
// Quick ASCII example:
//
//	    10 → 20 → 30 → ∅        Reverse
//	    30 → 20 → 10 → ∅        (same nodes, links inverted)
//
// Dive into the per-package docs for guarantees, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/lvlseq
package lvlseq
