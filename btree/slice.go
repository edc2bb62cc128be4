package btree

// Slice is a read-only view of the elements [start,end) of a tree.
//
// A slice captures the tree's root at creation time, so later edits of the
// tree are not visible through it. Creating a slice does not copy anything.
// Slice bounds use the index space of the underlying tree.
type Slice[C Chunk[C, S], S any] struct {
	cfg        Config[S]
	root       treeNode[C, S]
	height     int
	start, end int
}

// Slice returns a view of [start,end). It panics with an error wrapping
// ErrIndexOutOfBounds if the range is inverted or exceeds the tree.
func (t *Tree[C, S]) Slice(start, end int) Slice[C, S] {
	checkRange(start, end, 0, t.Len())
	return Slice[C, S]{cfg: t.cfg, root: t.root, height: t.height, start: start, end: end}
}

// Full returns a view of the whole tree.
func (t *Tree[C, S]) Full() Slice[C, S] {
	return t.Slice(0, t.Len())
}

// Start returns the index of the first element of the slice.
func (s Slice[C, S]) Start() int { return s.start }

// End returns the index after the last element of the slice.
func (s Slice[C, S]) End() int { return s.end }

// Len returns the number of elements in the slice.
func (s Slice[C, S]) Len() int { return s.end - s.start }

// IsEmpty reports whether the slice has no elements.
func (s Slice[C, S]) IsEmpty() bool { return s.start == s.end }

// Slice narrows the view to [start,end), which must lie within the slice.
func (s Slice[C, S]) Slice(start, end int) Slice[C, S] {
	checkRange(start, end, s.start, s.end)
	s.start, s.end = start, end
	return s
}

// Summary aggregates the summary of the elements in the slice.
//
// Slice bounds must be chunk boundaries.
func (s Slice[C, S]) Summary() S {
	if s.start == 0 && s.root != nil && s.end == s.cfg.Info.Len(s.root.Summary()) {
		return s.root.Summary()
	}
	return s.cfg.Info.Sub(s.prefixSummary(s.end), s.prefixSummary(s.start))
}

// ToTree re-materializes the slice as a tree of its own.
// Materializing is O(log n); the new tree shares most nodes with the source.
func (s Slice[C, S]) ToTree() *Tree[C, S] {
	t := &Tree[C, S]{cfg: s.cfg, root: s.root, height: s.height}
	if s.root == nil {
		return t
	}
	t.TruncateBack(s.end)
	t.TruncateFront(s.start)
	return t
}

// prefixSummary aggregates all elements before index.
func (s Slice[C, S]) prefixSummary(index int) S {
	info := s.cfg.Info
	acc := info.Zero()
	if s.root == nil || index == 0 {
		return acc
	}
	n, offset := s.root, 0
	for !n.isLeaf() {
		inner := n.(*innerNode[C, S])
		for i, child := range inner.children {
			size := info.Len(child.Summary())
			if index < offset+size || i == len(inner.children)-1 {
				n = child
				break
			}
			offset += size
			acc = info.Add(acc, child.Summary())
		}
	}
	leaf := n.(*leafNode[C, S])
	switch local := index - offset; {
	case local <= 0:
	case local >= leaf.chunk.Len():
		acc = info.Add(acc, leaf.summary)
	default:
		acc = info.Add(acc, leaf.chunk.TruncateBack(local).Summary())
	}
	return acc
}
