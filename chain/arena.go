// Package chain: arena-backed chain representation.
//
// Arena keeps every node of a chain in one contiguous slice and links
// nodes by index instead of by pointer, with nilIndex (-1) standing in
// for "absent". The construct/traverse/reverse contract is identical to
// List; what changes is the allocation story: one bulk allocation, stable
// indices, and no per-node pointer for the garbage collector to chase.
package chain

import (
	"fmt"
	"iter"
	"strings"
)

// nilIndex is the sentinel index meaning "no node": the next of a tail
// node, or the head of an empty arena.
const nilIndex = -1

// arenaNode is one slot of the arena: a payload and the index of its
// successor (nilIndex for the tail).
type arenaNode[T any] struct {
	data T
	next int
}

// Arena is a singly linked chain whose nodes live in a single contiguous
// slice, referenced by index. Nodes are never freed individually; the
// whole arena owns them, which is exactly what makes reversal free of
// ownership questions: links move, slots stay put.
//
// The zero value is a valid empty arena.
type Arena[T any] struct {
	nodes []arenaNode[T]
	head  int // index of the first node, nilIndex when empty
	tail  int // index of the last node, nilIndex when empty
}

// NewArena builds an arena-backed chain from values in order, allocating
// all node slots in one go. NewArena() with no arguments returns a valid
// empty arena.
// Complexity: O(n), single backing allocation.
func NewArena[T any](values ...T) *Arena[T] {
	a := &Arena[T]{
		nodes: make([]arenaNode[T], 0, len(values)),
		head:  nilIndex,
		tail:  nilIndex,
	}
	a.Append(values...)

	return a
}

// Append adds values at the back of the chain, in the given order.
// Complexity: amortized O(1) per value.
func (a *Arena[T]) Append(values ...T) {
	for _, v := range values {
		idx := len(a.nodes)
		a.nodes = append(a.nodes, arenaNode[T]{data: v, next: nilIndex})
		if idx == 0 {
			// First node of the arena: head and tail in one.
			a.head = idx
		} else {
			a.nodes[a.tail].next = idx
		}
		a.tail = idx
	}
}

// Len returns the number of nodes in the arena.
// Complexity: O(1).
func (a *Arena[T]) Len() int { return len(a.nodes) }

// Head returns the index of the first node, or nilIndex (-1) when the
// arena is empty.
func (a *Arena[T]) Head() int {
	if len(a.nodes) == 0 {
		return nilIndex
	}

	return a.head
}

// Next returns the index of the node following i, or nilIndex (-1) when
// i is the tail. It panics if i is out of range, matching slice indexing.
func (a *Arena[T]) Next(i int) int { return a.nodes[i].next }

// Value returns the payload stored at index i. It panics if i is out of
// range, matching slice indexing.
func (a *Arena[T]) Value(i int) T { return a.nodes[i].data }

// Values returns a lazy forward traversal of the payloads, head to tail.
// Like List.Values it mutates nothing and can be restarted at will.
// Complexity: O(n) to drain, O(1) space.
func (a *Arena[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(a.nodes) == 0 {
			return
		}
		for i := a.head; i != nilIndex; i = a.nodes[i].next {
			if !yield(a.nodes[i].data) {
				return
			}
		}
	}
}

// Slice drains the arena into a fresh slice, head to tail.
// Complexity: O(n) time and space.
func (a *Arena[T]) Slice() []T {
	out := make([]T, 0, len(a.nodes))
	if len(a.nodes) == 0 {
		return out
	}
	for i := a.head; i != nilIndex; i = a.nodes[i].next {
		out = append(out, a.nodes[i].data)
	}

	return out
}

// Reverse inverts the chain in place using the same three-reference walk
// as List.Reverse, over indices instead of pointers. Payloads stay in
// their slots; only next indices change.
// Complexity: O(n) time, O(1) auxiliary space.
func (a *Arena[T]) Reverse() {
	if len(a.nodes) == 0 {
		return
	}
	a.tail = a.head

	previous := nilIndex
	current := a.head
	for current != nilIndex {
		upcoming := a.nodes[current].next
		a.nodes[current].next = previous
		previous = current
		current = upcoming
	}
	a.head = previous
}

// String renders the payloads head to tail in slice notation, e.g.
// "[10 20 30]". An empty arena renders as "[]".
func (a *Arena[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for v := range a.Values() {
		if !first {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", v)
		first = false
	}
	b.WriteByte(']')

	return b.String()
}
