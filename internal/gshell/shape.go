package gshell

import (
	"github.com/gordian-engine/gtree/gcontainer"
	"github.com/gordian-engine/gtree/gkary"
	"github.com/xlab/treeprint"
)

// Shape draws t as an indented tree, one node per line.
// An empty tree is drawn as "(empty)".
func Shape[T comparable](t *gkary.Tree[T]) string {
	root, ok := t.Root()
	if !ok {
		return "(empty)\n"
	}

	type frame struct {
		n      gkary.Node[T]
		branch treeprint.Tree
	}

	out := treeprint.NewWithRoot(root.Value())

	var stack gcontainer.Stack[frame]
	stack.Push(frame{n: root, branch: out})
	for !stack.Empty() {
		f, _ := stack.Pop()
		for c := range f.n.Children() {
			if c.Degree() == 0 {
				f.branch.AddNode(c.Value())
				continue
			}
			stack.Push(frame{n: c, branch: f.branch.AddBranch(c.Value())})
		}
	}

	return out.String()
}
