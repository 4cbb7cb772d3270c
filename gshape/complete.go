package gshape

// Complete describes a complete tree where every non-leaf node,
// except possibly the last one in level order, has exactly Degree children.
// With Degree=3, the entries are arranged in layers like:
//
//	0 (L0)
//	1 2 3 (L1)
//	4 5 6 7 8 9 10 11 12 (L2)
//
// Methods on Complete use unchecked math,
// so negative entry indices or a Degree below 1
// result in undefined behavior.
type Complete struct {
	// Maximum number of children per node.
	Degree int
}

// Parent returns the level-order index of the parent of entryIdx.
// It returns -1 for entryIdx = 0.
func (c Complete) Parent(entryIdx int) int {
	if entryIdx == 0 {
		return -1
	}
	return (entryIdx - 1) / c.Degree
}

// FirstChild returns the level-order index of the first child of entryIdx.
// The Complete type does not track the number of entries,
// so it is the caller's responsibility to confirm the child exists.
func (c Complete) FirstChild(entryIdx int) int {
	return entryIdx*c.Degree + 1
}

// ChildOffset returns the position of entryIdx within its parent's children.
// It returns -1 for entryIdx = 0.
func (c Complete) ChildOffset(entryIdx int) int {
	if entryIdx == 0 {
		return -1
	}
	return (entryIdx - 1) % c.Degree
}

// Layer returns the layer that would contain the given entry index.
func (c Complete) Layer(entryIdx int) int {
	if entryIdx == 0 {
		return 0
	}

	layer := 1
	layerWidth := c.Degree
	entriesSoFar := 1 + c.Degree

	for {
		if entryIdx < entriesSoFar {
			return layer
		}

		layer++
		layerWidth *= c.Degree
		entriesSoFar += layerWidth
	}
}

// LayerStart returns the level-order index of the first entry in the given layer.
func (c Complete) LayerStart(layer int) int {
	start := 0
	width := 1
	for range layer {
		start += width
		width *= c.Degree
	}
	return start
}

// Height returns the height of a complete tree holding n entries:
// -1 for an empty tree, 0 for a single entry.
func (c Complete) Height(n int) int {
	if n <= 0 {
		return -1
	}
	return c.Layer(n - 1)
}
