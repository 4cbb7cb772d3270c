package gkary

import "iter"

// Node is a read-only handle to a node in a [Tree].
// A Node is only valid until the next modification of its tree.
type Node[T comparable] struct {
	t   *Tree[T]
	idx int
}

// Root returns the root node of t.
// The ok value is false if t is empty.
func (t *Tree[T]) Root() (n Node[T], ok bool) {
	if t.Empty() {
		return Node[T]{}, false
	}
	return Node[T]{t: t, idx: t.root}, true
}

// Value returns the value held by n.
func (n Node[T]) Value() T {
	return n.t.nodes[n.idx].value
}

// Degree returns the number of children of n.
func (n Node[T]) Degree() int {
	return n.t.nodes[n.idx].children.Len()
}

// Parent returns the parent of n.
// The ok value is false if n is the root.
func (n Node[T]) Parent() (p Node[T], ok bool) {
	parent := n.t.nodes[n.idx].parent
	if parent < 0 {
		return Node[T]{}, false
	}
	return Node[T]{t: n.t, idx: parent}, true
}

// Child returns the i-th child of n, counting from zero.
// The ok value is false if i is out of range.
func (n Node[T]) Child(i int) (c Node[T], ok bool) {
	e, ok := n.t.nodes[n.idx].children.At(i)
	if !ok {
		return Node[T]{}, false
	}
	return Node[T]{t: n.t, idx: e.Value}, true
}

// Children returns an iterator over the children of n, in order.
func (n Node[T]) Children() iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		for c := range n.t.nodes[n.idx].children.All() {
			if !yield(Node[T]{t: n.t, idx: c}) {
				return
			}
		}
	}
}
