package window

// LongestDistinct returns the longest contiguous run of seq in which no
// element occurs twice. Among runs of equal length the leftmost wins. The
// result is a subslice of seq, not a copy; callers who mutate it mutate
// the input.
//
// Complexity: O(n) time, O(k) memory for k distinct elements.
func LongestDistinct[T comparable](seq []T) []T {
	// 1. Track the most recent index of every element seen so far.
	seen := make(map[T]int, len(seq))

	// 2. Slide: left marks the window start, start/maxLen the best run.
	var left, start, maxLen int
	for right, v := range seq {
		if prev, ok := seen[v]; ok && prev >= left {
			// Duplicate inside the window: jump past its previous slot.
			left = prev + 1
		}
		seen[v] = right

		if width := right - left + 1; width > maxLen {
			maxLen = width
			start = left
		}
	}

	return seq[start : start+maxLen]
}

// LongestUniqueSubstring returns the longest substring of s without
// repeating runes, leftmost on ties. Input is treated as a rune sequence,
// so multi-byte characters never split.
//
// Complexity: O(n) time, O(k) memory.
func LongestUniqueSubstring(s string) string {
	return string(LongestDistinct([]rune(s)))
}

// LongestUniqueLen returns the rune length of the longest duplicate-free
// substring of s.
func LongestUniqueLen(s string) int {
	return len(LongestDistinct([]rune(s)))
}
