// Package gshape contains index arithmetic for complete k-ary trees
// stored in level order.
//
// A tree built by repeatedly filling the shallowest, leftmost free child slot
// always has this shape, so the functions here describe where the n-th inserted
// node sits: its parent, its layer, and the height of the whole tree.
// Types in this package only deal in int values,
// so callers may use them as indices into whatever slice or traversal
// holds the actual nodes.
package gshape
