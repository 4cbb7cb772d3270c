// Package gkary contains [Tree], a bounded-degree k-ary tree
// that fills itself level by level.
//
// Every node holds at most the tree's maximum degree of children.
// [Tree.Insert] always attaches the new value to the first node,
// in breadth-first order, that still has a free child slot,
// and [Tree.RemoveLast] always removes the last node in breadth-first order.
// As a result the shape of a tree is fully determined by the number of values
// it holds: it is always the complete tree described by [gshape.Complete].
//
// Nodes are stored in an arena and refer to each other by index.
// A node owns its children through an ordered child list;
// the parent index kept on each node is a back-reference only
// and never decides when a node is released.
package gkary
