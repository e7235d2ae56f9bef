// Package chain: Node and List type declarations.
//
// This file declares the two building blocks of the package, Node (one
// element of the forward chain) and List (the owning handle), together
// with their read-only accessors. All mutating behavior lives in
// methods.go; the arena-backed variant lives in arena.go.
package chain

// Node is a single element of a chain: an opaque payload plus a reference
// to the following Node. A nil next marks the tail.
//
// Both fields are unexported on purpose: payloads are read through Value,
// successors through Next, and links change only via List methods. That is
// what keeps every reachable chain finite and acyclic.
type Node[T any] struct {
	// data is the payload carried by this node. The package never
	// inspects it.
	data T

	// next points at the successor node, or is nil for the tail.
	next *Node[T]
}

// Value returns the payload stored in n.
func (n *Node[T]) Value() T { return n.data }

// Next returns the successor of n, or nil if n is the tail.
func (n *Node[T]) Next() *Node[T] { return n.next }

// List is the handle to a singly linked chain: a head reference (nil when
// the list is empty) plus tail and length bookkeeping so Append and Len
// stay O(1).
//
// The zero value is a valid empty list, ready to use:
//
//	var l chain.List[int]
//	l.Append(1, 2, 3)
type List[T any] struct {
	head   *Node[T] // first node, nil when empty
	tail   *Node[T] // last node, nil when empty
	length int      // number of nodes
}

// Len returns the number of elements in the list.
// Complexity: O(1).
func (l *List[T]) Len() int { return l.length }

// IsEmpty reports whether the list holds no elements.
// Complexity: O(1).
func (l *List[T]) IsEmpty() bool { return l.length == 0 }

// Head returns the first node of the list, or nil when the list is empty.
// The returned node is the traversal entry point.
// Complexity: O(1).
func (l *List[T]) Head() *Node[T] { return l.head }

// Tail returns the last node of the list, or nil when the list is empty.
// Complexity: O(1).
func (l *List[T]) Tail() *Node[T] { return l.tail }
