// Package chain: List method implementations.
//
// This file provides construction, traversal, and in-place reversal for
// the List type declared in types.go, plus the small lifecycle helpers
// (Append, Prepend, PopFront, Clone, Clear). Traversal is exposed as a
// lazy iter.Seq so the sink (printing, collecting, anything) stays with
// the caller. Every method documents its complexity.
package chain

import (
	"fmt"
	"iter"
	"strings"
)

// New builds a list from values, one node per value, preserving order:
// the first value becomes the head. New() with no arguments returns a
// valid empty list.
// Complexity: O(n).
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	l.Append(values...)

	return l
}

// FromSeq builds a list by draining a finite iterator in order. It is the
// bridge from any iter.Seq source, including Values() of another list,
// back into a chain.
// Complexity: O(n) over the sequence length.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := &List[T]{}
	for v := range seq {
		l.Append(v)
	}

	return l
}

// Append adds values at the back of the list, in the given order.
// Complexity: O(1) per value, via the tail reference.
func (l *List[T]) Append(values ...T) {
	for _, v := range values {
		n := &Node[T]{data: v}
		if l.tail == nil {
			// First node: it is both head and tail.
			l.head = n
			l.tail = n
		} else {
			l.tail.next = n
			l.tail = n
		}
		l.length++
	}
}

// Prepend inserts values at the front of the list, keeping their given
// order: Prepend(1, 2) on [3] yields [1 2 3].
// Complexity: O(k) in the number of inserted values.
func (l *List[T]) Prepend(values ...T) {
	if len(values) == 0 {
		return
	}
	// Build the sub-chain first, then splice it in front of the head.
	var subHead, subTail *Node[T]
	for _, v := range values {
		n := &Node[T]{data: v}
		if subTail == nil {
			subHead = n
		} else {
			subTail.next = n
		}
		subTail = n
	}
	subTail.next = l.head
	l.head = subHead
	if l.tail == nil {
		l.tail = subTail
	}
	l.length += len(values)
}

// PopFront removes the head node and returns its payload.
// The second return is false when the list was empty.
// Complexity: O(1).
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.length--
	// Detach the removed node so it keeps no hold on the chain.
	n.next = nil

	return n.data, true
}

// Values returns a lazy forward traversal of the payloads, head to tail.
// The sequence is finite and restartable: it performs no mutation, so
// ranging over it twice yields the identical payloads in the identical
// order. An empty list yields nothing.
// Complexity: O(n) to drain, O(1) space.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.data) {
				return
			}
		}
	}
}

// Nodes returns a lazy forward traversal of the nodes themselves, head to
// tail. Useful when node identity matters (e.g. checking that Reverse
// relinks rather than reallocates).
// Complexity: O(n) to drain, O(1) space.
func (l *List[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

// Slice drains the list into a fresh slice, head to tail. The list is not
// modified.
// Complexity: O(n) time and space.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.data)
	}

	return out
}

// Each walks the list head to tail, invoking fn on every payload. If fn
// returns an error the walk aborts and the error is returned wrapped with
// the zero-based position at which it occurred.
// Complexity: O(n).
func (l *List[T]) Each(fn func(T) error) error {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if err := fn(n.data); err != nil {
			return fmt.Errorf("chain: visit at index %d: %w", i, err)
		}
		i++
	}

	return nil
}

// Reverse inverts the list in place: the former tail becomes the head and
// every next link points the other way. Node identities and payloads are
// preserved: no allocation, no copying; only links change. The handle is
// updated, so the caller keeps using the same *List afterwards.
//
// Empty and single-node lists are left unchanged.
//
// Invariant held at every step of the walk: the sub-chain reachable from
// previous is exactly the reverse of the prefix already processed, and
// stays finite and acyclic.
// Complexity: O(n) time, O(1) auxiliary space (three references).
func (l *List[T]) Reverse() {
	// The old head ends up as the tail (nil stays nil for an empty list).
	l.tail = l.head

	var previous *Node[T]
	current := l.head
	for current != nil {
		upcoming := current.next // save the forward link before overwriting
		current.next = previous  // invert
		previous = current       // advance both rolling references
		current = upcoming
	}
	l.head = previous
}

// Clone returns a new list with fresh nodes carrying the same payloads in
// the same order. Payloads are copied shallowly; reference-typed payloads
// are shared between the clone and the original.
// Complexity: O(n).
func (l *List[T]) Clone() *List[T] {
	out := &List[T]{}
	for n := l.head; n != nil; n = n.next {
		out.Append(n.data)
	}

	return out
}

// Equal reports whether l and other carry pairwise-equal payloads in the
// same order, under the caller-supplied eq. Lengths are compared first,
// so mismatched lists return early. Two empty lists are equal.
// Complexity: O(n).
func (l *List[T]) Equal(other *List[T], eq func(a, b T) bool) bool {
	if l.length != other.length {
		return false
	}
	a, b := l.head, other.head
	for a != nil {
		if !eq(a.data, b.data) {
			return false
		}
		a = a.next
		b = b.next
	}

	return true
}

// Clear resets the list to empty. Detached nodes are reclaimed by the
// garbage collector once unreferenced.
// Complexity: O(1).
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.length = 0
}

// String renders the payloads head to tail in slice notation, e.g.
// "[10 20 30]". An empty list renders as "[]".
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", n.data)
	}
	b.WriteByte(']')

	return b.String()
}
