package freq

import (
	"maps"
	"slices"
)

// Count returns the rune histogram of s: how many times each rune occurs.
// The returned map is freshly allocated and safe to mutate.
//
// Complexity: O(n) time, O(k) memory for k distinct runes.
func Count(s string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range s {
		counts[r]++
	}

	return counts
}

// IsAnagram reports whether a and b contain exactly the same runes with
// the same multiplicities. The comparison is strict: case, spaces and
// punctuation all count.
//
// Complexity: O(n+m) time, O(k) memory.
func IsAnagram(a, b string) bool {
	return maps.Equal(Count(a), Count(b))
}

// FirstUnique returns the first rune of s that occurs exactly once, in
// reading order. The second result is false when every rune repeats or s
// is empty.
//
// Complexity: O(n) time over two passes, O(k) memory.
func FirstUnique(s string) (rune, bool) {
	// 1. Build the histogram.
	counts := Count(s)

	// 2. Re-scan in reading order; the first multiplicity-1 rune wins.
	for _, r := range s {
		if counts[r] == 1 {
			return r, true
		}
	}

	return 0, false
}

// Group partitions words into anagram classes. Classes appear in order of
// their first member's appearance, and each class lists its members in
// input order. Duplicates stay: two equal words land in the same class
// twice.
//
// Complexity: O(w·n·log n) time for w words of length ≤ n, O(w·n) memory.
func Group(words []string) [][]string {
	// 1. Bucket words by their sorted-rune signature.
	index := make(map[string]int, len(words))
	groups := make([][]string, 0, len(words))
	for _, w := range words {
		key := signature(w)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], w)
	}

	return groups
}

// signature canonicalizes a word to its sorted rune sequence, so that all
// anagrams of the word share one key.
func signature(w string) string {
	rs := []rune(w)
	slices.Sort(rs)

	return string(rs)
}
