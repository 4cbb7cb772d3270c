package gkary

import (
	"fmt"

	"github.com/gordian-engine/gtree/gshape"
)

// Validate checks the structural invariants of t
// and returns an error wrapping [ErrCorrupt] for the first violation found.
//
// The invariants are:
//   - no node has more than MaxDegree children
//   - every child's parent reference points back at the node that lists it
//   - every node is reachable from the root exactly once
//   - the arena's live slots are exactly the reachable nodes
//   - nodes appear in the complete, level-filled shape
//     described by [gshape.Complete]
func (t *Tree[T]) Validate() error {
	nLive := int(t.live.Count())
	if t.Empty() {
		if nLive != 0 {
			return fmt.Errorf("%w: empty tree has %d live slots", ErrCorrupt, nLive)
		}
		return nil
	}

	if p := t.nodes[t.root].parent; p != -1 {
		return fmt.Errorf("%w: root %d has parent %d", ErrCorrupt, t.root, p)
	}

	// Level-order position of each arena index, or -1 if not yet reached.
	pos := make([]int, len(t.nodes))
	for i := range pos {
		pos[i] = -1
	}

	shape := gshape.Complete{Degree: t.maxDegree}

	n := 0
	for idx := range t.levelOrder() {
		if idx < 0 || idx >= len(t.nodes) {
			return fmt.Errorf("%w: child index %d outside arena of %d slots", ErrCorrupt, idx, len(t.nodes))
		}
		if pos[idx] >= 0 {
			return fmt.Errorf("%w: node %d reached twice", ErrCorrupt, idx)
		}
		if !t.live.Test(uint(idx)) {
			return fmt.Errorf("%w: reachable node %d is not marked live", ErrCorrupt, idx)
		}
		pos[idx] = n

		nd := &t.nodes[idx]
		if d := nd.children.Len(); d > t.maxDegree {
			return fmt.Errorf(
				"%w: node %d has %d children (max degree %d)",
				ErrCorrupt, idx, d, t.maxDegree,
			)
		}

		if n > 0 {
			if nd.parent < 0 || nd.parent >= len(t.nodes) {
				return fmt.Errorf("%w: non-root node %d has parent %d", ErrCorrupt, idx, nd.parent)
			}
			want := shape.Parent(n)
			if got := pos[nd.parent]; got != want {
				return fmt.Errorf(
					"%w: node at level-order position %d has parent at position %d, want %d",
					ErrCorrupt, n, got, want,
				)
			}
		}

		for e := nd.children.Front(); e != nil; e = e.Next() {
			c := e.Value
			if c < 0 || c >= len(t.nodes) {
				return fmt.Errorf("%w: node %d lists child %d outside arena of %d slots", ErrCorrupt, idx, c, len(t.nodes))
			}
			if t.nodes[c].parent != idx {
				return fmt.Errorf(
					"%w: node %d lists child %d whose parent is %d",
					ErrCorrupt, idx, c, t.nodes[c].parent,
				)
			}
			if t.nodes[c].self != e {
				return fmt.Errorf("%w: child %d does not own its list element", ErrCorrupt, c)
			}
		}

		n++
	}

	if n != nLive {
		return fmt.Errorf("%w: %d reachable nodes but %d live slots", ErrCorrupt, n, nLive)
	}
	if h, want := t.Height(), shape.Height(n); h != want {
		return fmt.Errorf("%w: height %d, want %d for %d nodes", ErrCorrupt, h, want, n)
	}

	return nil
}
