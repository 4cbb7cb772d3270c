package gkary

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/gtree/gcontainer"
)

// Tree is a bounded-degree tree that is filled in level order.
//
// The zero value is not usable; create trees with [New].
// A Tree is not safe for concurrent use.
type Tree[T comparable] struct {
	nodes []node[T]

	// Which arena slots in nodes hold a live node.
	live *bitset.BitSet

	// Arena index of the root, or -1 when the tree is empty.
	root int

	maxDegree int
}

// New returns an empty tree whose nodes may each hold up to maxDegree children.
// It panics if maxDegree is less than 1.
func New[T comparable](maxDegree int) *Tree[T] {
	if maxDegree < 1 {
		panic(fmt.Errorf("BUG: maxDegree must be at least 1: got %d", maxDegree))
	}

	return &Tree[T]{
		live:      bitset.New(0),
		root:      -1,
		maxDegree: maxDegree,
	}
}

// MaxDegree returns the maximum number of children of any node in t.
func (t *Tree[T]) MaxDegree() int {
	return t.maxDegree
}

// Empty reports whether t has no nodes.
func (t *Tree[T]) Empty() bool {
	return t.root < 0
}

// Size returns the number of nodes in t.
func (t *Tree[T]) Size() int {
	if t.Empty() {
		return 0
	}
	return t.subtreeSize(t.root)
}

// subtreeSize counts the node at idx plus all of its descendants.
func (t *Tree[T]) subtreeSize(idx int) int {
	var stack gcontainer.Stack[int]
	stack.Push(idx)

	n := 0
	for !stack.Empty() {
		cur, _ := stack.Pop()
		n++
		for c := range t.nodes[cur].children.All() {
			stack.Push(c)
		}
	}
	return n
}

// Height returns the number of edges on the longest path from the root to a leaf.
// A single node has height 0 and an empty tree has height -1.
func (t *Tree[T]) Height() int {
	if t.Empty() {
		return -1
	}

	type entry struct {
		idx, depth int
	}
	var stack gcontainer.Stack[entry]
	stack.Push(entry{idx: t.root})

	h := 0
	for !stack.Empty() {
		e, _ := stack.Pop()
		h = max(h, e.depth)
		for c := range t.nodes[e.idx].children.All() {
			stack.Push(entry{idx: c, depth: e.depth + 1})
		}
	}
	return h
}

// Contains reports whether any node in t holds v.
// The root is checked first, then the descendants depth first.
func (t *Tree[T]) Contains(v T) bool {
	if t.Empty() {
		return false
	}
	if t.nodes[t.root].value == v {
		return true
	}

	for idx := range t.preOrder() {
		if idx != t.root && t.nodes[idx].value == v {
			return true
		}
	}
	return false
}

// Count returns the number of nodes in t holding v.
func (t *Tree[T]) Count(v T) int {
	n := 0
	for idx := range t.preOrder() {
		if t.nodes[idx].value == v {
			n++
		}
	}
	return n
}

// Insert adds v to the first node, in breadth-first order,
// that has fewer than MaxDegree children.
// On an empty tree, v becomes the root.
func (t *Tree[T]) Insert(v T) {
	if t.Empty() {
		t.root = t.alloc(v, -1)
		return
	}

	for idx := range t.levelOrder() {
		if t.nodes[idx].children.Len() < t.maxDegree {
			t.addChild(idx, v)
			return
		}
	}

	// Every finite tree has a leaf, and a leaf always has a free slot.
	panic(fmt.Errorf("BUG: no free child slot in tree of size %d", t.Size()))
}

// InsertMany calls [Tree.Insert] for each value, in order.
func (t *Tree[T]) InsertMany(vs ...T) {
	for _, v := range vs {
		t.Insert(v)
	}
}

// RemoveLast removes the last node in breadth-first order and returns its value.
// Under the insertion policy of [Tree.Insert],
// that is the most recently inserted node still in the tree.
//
// RemoveLast returns an error wrapping [ErrUnderflow] if t is empty,
// in which case t is unchanged.
func (t *Tree[T]) RemoveLast() (T, error) {
	if t.Empty() {
		var zero T
		return zero, fmt.Errorf("cannot remove from empty tree: %w", ErrUnderflow)
	}

	last := -1
	for idx := range t.levelOrder() {
		last = idx
	}

	// The last node in level order never has children.
	v := t.nodes[last].value
	t.release(last)
	return v, nil
}

// Clear removes every node from t.
// Children are always released before their parent.
func (t *Tree[T]) Clear() {
	if t.Empty() {
		return
	}
	t.releaseSubtree(t.root)
	t.root = -1
}

// Clone returns a deep copy of t with the same maximum degree.
// The copy shares no nodes with t, so either may be modified independently.
func (t *Tree[T]) Clone() *Tree[T] {
	out := New[T](t.maxDegree)
	if t.Empty() {
		return out
	}

	// Pair each source node with its counterpart in out.
	type pair struct {
		src, dst int
	}

	out.nodes = make([]node[T], 0, t.subtreeSize(t.root))
	out.root = out.alloc(t.nodes[t.root].value, -1)

	var q gcontainer.Queue[pair]
	q.Push(pair{src: t.root, dst: out.root})
	for !q.Empty() {
		p, _ := q.Pop()
		for c := range t.nodes[p.src].children.All() {
			d := out.addChild(p.dst, t.nodes[c].value)
			q.Push(pair{src: c, dst: d})
		}
	}

	return out
}
