// Package window finds the longest run of pairwise-distinct elements in a
// sequence using a single sliding-window pass.
//
// 🚀 What is window?
//
//	A sliding window [left, right] grows to the right and jumps its left
//	edge past the previous occurrence whenever the incoming element is
//	already inside the window.  One pass suffices to find the longest
//	duplicate-free stretch.  Typical uses:
//	  • Longest substring without repeating characters
//	  • Deduplicated burst detection in event streams
//	  • Token-window sizing for parsers
//
// ✨ Key features:
//   - LongestDistinct: generic over any comparable element type
//   - LongestUniqueSubstring: rune-aware convenience for strings
//   - leftmost-wins tie break: among equal-length runs the first is kept
//   - result is a view into the input, no copying for slices
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlseq/window"
//
//	window.LongestUniqueSubstring("abcababcabcd") // "abcd"
//	window.LongestDistinct([]int{1, 2, 1, 3, 4})  // [2 1 3 4]
//
// Performance:
//
//   - Time:   O(n): each element enters and leaves the window once
//   - Memory: O(k) for k distinct elements in the widest window
package window
