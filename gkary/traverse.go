package gkary

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/gordian-engine/gtree/gcontainer"
)

// Order selects a traversal order for [Tree.Render].
type Order uint8

const (
	// BreadthFirstOrder visits nodes level by level, left to right.
	BreadthFirstOrder Order = iota

	// DepthFirstOrder visits a node, then each child's subtree in turn (pre-order).
	DepthFirstOrder
)

func (o Order) String() string {
	switch o {
	case BreadthFirstOrder:
		return "bfs"
	case DepthFirstOrder:
		return "dfs"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}

// ParseOrder parses the short or long name of an order,
// such as "bfs" or "breadth-first".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "bfs", "breadth-first", "level":
		return BreadthFirstOrder, nil
	case "dfs", "depth-first", "pre":
		return DepthFirstOrder, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
	}
}

// levelOrder yields arena indices in breadth-first order.
// Children of a node are scheduled only after the node has been yielded,
// so the caller may add a child to the yielded node if it stops iterating.
func (t *Tree[T]) levelOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		if t.Empty() {
			return
		}

		var q gcontainer.Queue[int]
		q.Push(t.root)
		for !q.Empty() {
			idx, _ := q.Pop()
			if !yield(idx) {
				return
			}
			for c := range t.nodes[idx].children.All() {
				q.Push(c)
			}
		}
	}
}

// preOrder yields arena indices in depth-first pre-order.
func (t *Tree[T]) preOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		if t.Empty() {
			return
		}

		var s gcontainer.Stack[int]
		s.Push(t.root)
		for !s.Empty() {
			idx, _ := s.Pop()
			if !yield(idx) {
				return
			}

			// Push in reverse so the leftmost child is popped first.
			for c := range t.nodes[idx].children.Backward() {
				s.Push(c)
			}
		}
	}
}

// BreadthFirst returns an iterator over the values in t in level order,
// left to right within each level.
// The tree must not be modified during iteration.
func (t *Tree[T]) BreadthFirst() iter.Seq[T] {
	return t.values(t.levelOrder())
}

// DepthFirst returns an iterator over the values in t in pre-order:
// each node before its children, and a child's whole subtree
// before the next sibling.
// The tree must not be modified during iteration.
func (t *Tree[T]) DepthFirst() iter.Seq[T] {
	return t.values(t.preOrder())
}

func (t *Tree[T]) values(indices iter.Seq[int]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for idx := range indices {
			if !yield(t.nodes[idx].value) {
				return
			}
		}
	}
}

// Render writes the values of t to w in the given order,
// formatted as "START->v0->v1->...->END" followed by a newline.
// An empty tree renders as "START->END".
func (t *Tree[T]) Render(w io.Writer, order Order) error {
	var seq iter.Seq[T]
	switch order {
	case BreadthFirstOrder:
		seq = t.BreadthFirst()
	case DepthFirstOrder:
		seq = t.DepthFirst()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOrder, order)
	}

	var sb strings.Builder
	sb.WriteString("START->")
	for v := range seq {
		fmt.Fprint(&sb, v)
		sb.WriteString("->")
	}
	sb.WriteString("END\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// String returns the breadth-first rendering of t, without a trailing newline.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	_ = t.Render(&sb, BreadthFirstOrder) // Cannot fail on a strings.Builder.
	return strings.TrimSuffix(sb.String(), "\n")
}
