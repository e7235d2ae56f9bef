// Package chain provides a generic singly linked list with three core
// operations (construct, traverse, reverse) plus the usual lifecycle
// helpers, and an arena-backed variant that links nodes by index instead
// of by pointer.
//
// 🚀 What is chain?
//
//	A forward chain of nodes: each Node holds an opaque payload and a
//	reference to its successor (nil marks the tail). The List handle
//	owns the head and keeps tail and length bookkeeping so appends and
//	length queries stay O(1).
//
// ✨ Key guarantees:
//   - Construct: one node per value, in input order; empty input gives an
//     empty list. Complexity: O(n).
//   - Traverse: Values() yields a lazy iter.Seq: finite, restartable,
//     read-only; ranging twice over the same list produces the identical
//     sequence. Complexity: O(n), O(1) space.
//   - Reverse: in-place link inversion with the classic three-reference
//     walk (previous/current/upcoming). Node identities and payloads are
//     untouched; only next links change. Complexity: O(n) time, O(1)
//     auxiliary space. Empty and single-node lists are no-ops.
//
// Ownership and safety:
//
//	Node links are unexported and every mutation goes through List
//	methods, so a chain reachable from a List is acyclic by construction:
//	following next from any node terminates at the tail in a finite
//	number of steps. Reverse mutates the handle in place; callers keep
//	using the same *List and never hold a stale head reference.
//
// Concurrency:
//
//	A List carries no internal locking. It is not designed for concurrent
//	access: concurrent Values() passes over an unmodified list are safe,
//	but Reverse (or any mutator) must never run concurrently with anything
//	else on the same list: guard the whole structure with an external
//	lock if you must share it.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlseq/chain"
//
//	l := chain.New(10, 20, 30)
//	for v := range l.Values() {
//	    fmt.Println(v) // 10, 20, 30
//	}
//	l.Reverse()
//	fmt.Println(l) // [30 20 10]
//
// The Arena type mirrors the same construct/traverse/reverse contract over
// nodes allocated in one contiguous slice, linked by index with -1 as the
// "absent" sentinel. Use it when you want bulk allocation or index-stable
// references.
//
// See examples in example_test.go.
package chain
