package gkary

import (
	"errors"

	"github.com/gordian-engine/gtree/gcontainer"
)

// ErrUnderflow is returned by [Tree.RemoveLast] on an empty tree.
// It is the same value as [gcontainer.ErrUnderflow].
var ErrUnderflow = gcontainer.ErrUnderflow

// ErrCorrupt is wrapped by every error returned from [Tree.Validate].
var ErrCorrupt = errors.New("tree invariant violated")

// ErrUnknownOrder is returned by [Tree.Render] and [ParseOrder]
// for a traversal order they do not recognize.
var ErrUnknownOrder = errors.New("unknown traversal order")
