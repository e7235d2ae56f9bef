package chain_test

import (
	"testing"

	"github.com/katalvlaran/lvlseq/chain"
)

// benchmarkListReverse is a helper that reverses a list of n elements on
// every iteration. It resets the timer after construction so only the
// pointer walk is measured.
func benchmarkListReverse(b *testing.B, n int) {
	values := make([]int, n)
	for i := 0; i < n; i++ {
		values[i] = i
	}
	l := chain.New(values...)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		l.Reverse()
	}
}

// benchmarkListTraverse is a helper that drains Values over n elements on
// every iteration, accumulating into sink so the walk is not elided.
func benchmarkListTraverse(b *testing.B, n int) {
	values := make([]int, n)
	for i := 0; i < n; i++ {
		values[i] = i
	}
	l := chain.New(values...)

	var sink int
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for v := range l.Values() {
			sink += v
		}
	}
	_ = sink
}

// benchmarkArenaReverse is a helper that reverses an index-linked arena of
// n elements on every iteration.
func benchmarkArenaReverse(b *testing.B, n int) {
	values := make([]int, n)
	for i := 0; i < n; i++ {
		values[i] = i
	}
	a := chain.NewArena(values...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Reverse()
	}
}

// BenchmarkList_ReverseSmall benchmarks reversal of a 100-element list.
func BenchmarkList_ReverseSmall(b *testing.B) {
	benchmarkListReverse(b, 100)
}

// BenchmarkList_ReverseMedium benchmarks reversal of a 10_000-element list.
func BenchmarkList_ReverseMedium(b *testing.B) {
	benchmarkListReverse(b, 10_000)
}

// BenchmarkList_ReverseLarge benchmarks reversal of a 1_000_000-element list.
func BenchmarkList_ReverseLarge(b *testing.B) {
	benchmarkListReverse(b, 1_000_000)
}

// BenchmarkList_TraverseSmall benchmarks a full lazy traversal of 100 elements.
func BenchmarkList_TraverseSmall(b *testing.B) {
	benchmarkListTraverse(b, 100)
}

// BenchmarkList_TraverseMedium benchmarks a full lazy traversal of 10_000 elements.
func BenchmarkList_TraverseMedium(b *testing.B) {
	benchmarkListTraverse(b, 10_000)
}

// BenchmarkArena_ReverseSmall benchmarks index-link reversal of 100 slots.
func BenchmarkArena_ReverseSmall(b *testing.B) {
	benchmarkArenaReverse(b, 100)
}

// BenchmarkArena_ReverseMedium benchmarks index-link reversal of 10_000 slots.
func BenchmarkArena_ReverseMedium(b *testing.B) {
	benchmarkArenaReverse(b, 10_000)
}

// BenchmarkArena_ReverseLarge benchmarks index-link reversal of 1_000_000 slots.
func BenchmarkArena_ReverseLarge(b *testing.B) {
	benchmarkArenaReverse(b, 1_000_000)
}
