package btree

// makeLeaf materializes a new leaf for a non-empty chunk and caches its summary.
func (t *Tree[C, S]) makeLeaf(c C) *leafNode[C, S] {
	assert(c.Len() > 0, "makeLeaf called with empty chunk")
	assert(c.Len() <= c.MaxLen(), "makeLeaf exceeds chunk capacity")
	return &leafNode[C, S]{
		summary: c.Summary(),
		chunk:   c,
	}
}

// makeInternal materializes a new internal node and computes its summary from
// child summaries. The children slice is copied.
func (t *Tree[C, S]) makeInternal(children ...treeNode[C, S]) *innerNode[C, S] {
	assert(len(children) > 0, "makeInternal called without children")
	inner := &innerNode[C, S]{
		children: append([]treeNode[C, S](nil), children...),
	}
	t.recomputeInnerSummary(inner)
	return inner
}

func (t *Tree[C, S]) recomputeInnerSummary(inner *innerNode[C, S]) {
	assert(inner != nil, "recomputeInnerSummary called with nil inner node")
	inner.summary = t.cfg.Info.Zero()
	for _, child := range inner.children {
		inner.summary = t.cfg.Info.Add(inner.summary, child.Summary())
	}
}

// nodeLen returns the number of chunk elements under n.
func (t *Tree[C, S]) nodeLen(n treeNode[C, S]) int {
	if n == nil {
		return 0
	}
	return t.cfg.Info.Len(n.Summary())
}

// subtreeFromChildren wraps a run of siblings of height h-1 as a subtree.
//
// A single child is returned as-is, one level lower. The resulting node may be
// under-full; joins with neighbouring spines repair that.
func (t *Tree[C, S]) subtreeFromChildren(children []treeNode[C, S], h int) subtree[C, S] {
	switch len(children) {
	case 0:
		return subtree[C, S]{}
	case 1:
		return subtree[C, S]{node: children[0], height: h - 1}
	}
	return subtree[C, S]{node: t.makeInternal(children...), height: h}
}
