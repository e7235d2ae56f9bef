package window_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvlseq/window"
)

// benchmarkLongestUnique is a helper that scans an n-rune string with a
// period-10 alphabet, so every window tops out at 10 runes.
func benchmarkLongestUnique(b *testing.B, n int) {
	s := strings.Repeat("abcdefghij", n/10+1)[:n]

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_ = window.LongestUniqueSubstring(s)
	}
}

// benchmarkLongestDistinctInts is a helper over an int sequence with the
// same period-10 collision pattern, without the rune conversion cost.
func benchmarkLongestDistinctInts(b *testing.B, n int) {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = i % 10
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = window.LongestDistinct(seq)
	}
}

// BenchmarkLongestUniqueSubstring_Small benchmarks a 100-rune scan.
func BenchmarkLongestUniqueSubstring_Small(b *testing.B) {
	benchmarkLongestUnique(b, 100)
}

// BenchmarkLongestUniqueSubstring_Medium benchmarks a 10_000-rune scan.
func BenchmarkLongestUniqueSubstring_Medium(b *testing.B) {
	benchmarkLongestUnique(b, 10_000)
}

// BenchmarkLongestDistinct_Small benchmarks a 100-element int scan.
func BenchmarkLongestDistinct_Small(b *testing.B) {
	benchmarkLongestDistinctInts(b, 100)
}

// BenchmarkLongestDistinct_Medium benchmarks a 10_000-element int scan.
func BenchmarkLongestDistinct_Medium(b *testing.B) {
	benchmarkLongestDistinctInts(b, 10_000)
}
