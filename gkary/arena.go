package gkary

import (
	"errors"

	"github.com/gordian-engine/gtree/gcontainer"
)

// node is a single arena slot.
type node[T comparable] struct {
	value T

	// Arena index of the parent, or -1 for the root.
	parent int

	// Arena indices of the children, in insertion order.
	children *gcontainer.List[int]

	// This node's element within its parent's children list,
	// so that unlinking does not need to search the list.
	// Nil for the root.
	self *gcontainer.Element[int]
}

// alloc stores a new, unlinked node in the arena and returns its index.
// Released slots are reused before the arena grows.
func (t *Tree[T]) alloc(v T, parent int) int {
	idx := len(t.nodes)
	if free, ok := t.live.NextClear(0); ok && int(free) < len(t.nodes) {
		idx = int(free)
	} else {
		t.nodes = append(t.nodes, node[T]{})
	}

	t.nodes[idx] = node[T]{
		value:    v,
		parent:   parent,
		children: new(gcontainer.List[int]),
	}
	t.live.Set(uint(idx))
	return idx
}

// addChild allocates a node holding v and appends it
// to the end of the parent's children.
func (t *Tree[T]) addChild(parent int, v T) int {
	// Allocate first: alloc may grow t.nodes,
	// so no node pointer may be held across this call.
	idx := t.alloc(v, parent)
	t.nodes[idx].self = t.nodes[parent].children.PushBack(idx)
	return idx
}

// release unlinks the node at idx from its parent, if any,
// and frees its arena slot.
// The node must not have any children left.
func (t *Tree[T]) release(idx int) {
	n := &t.nodes[idx]
	if n.children.Len() != 0 {
		panic(errors.New("BUG: releasing a node that still owns children"))
	}

	if n.parent >= 0 {
		t.nodes[n.parent].children.Remove(n.self)
	} else if t.root == idx {
		t.root = -1
	}

	t.nodes[idx] = node[T]{parent: -1}
	t.live.Clear(uint(idx))

	// Drop trailing free slots so the arena does not hold on to
	// memory for a tree that has shrunk from the end.
	for len(t.nodes) > 0 && !t.live.Test(uint(len(t.nodes)-1)) {
		t.nodes = t.nodes[:len(t.nodes)-1]
	}
}

type teardownFrame struct {
	idx      int
	expanded bool
}

// releaseSubtree releases the node at idx and all of its descendants,
// children before parents, using an explicit stack.
func (t *Tree[T]) releaseSubtree(idx int) {
	var stack gcontainer.Stack[teardownFrame]
	stack.Push(teardownFrame{idx: idx})

	for !stack.Empty() {
		f, _ := stack.Pop()
		if f.expanded {
			t.release(f.idx)
			continue
		}

		stack.Push(teardownFrame{idx: f.idx, expanded: true})
		for c := range t.nodes[f.idx].children.All() {
			stack.Push(teardownFrame{idx: c})
		}
	}
}
