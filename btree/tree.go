package btree

import "fmt"

// Tree is a persistent, chunked B+ sum-tree.
//
// C is the leaf chunk type, S is the summary type aggregated through the tree.
// The chunk type is tied to the summary type via Chunk[C,S].
//
// Mutating methods replace the receiver's root; nodes are never changed in
// place. Copying a Tree value (or calling Clone) therefore yields an
// independent tree sharing all of its nodes.
type Tree[C Chunk[C, S], S any] struct {
	cfg    Config[S]
	root   treeNode[C, S]
	height int // 0 means empty tree
}

// New creates an empty tree with validated configuration.
func New[C Chunk[C, S], S any](cfg Config[S]) (*Tree[C, S], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[C, S]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[C, S]) Config() Config[S] {
	return t.cfg
}

// Clone returns a tree sharing all nodes with t. Cloning is O(1).
func (t *Tree[C, S]) Clone() *Tree[C, S] {
	if t == nil {
		return nil
	}
	cloned := *t
	return &cloned
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[C, S]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of chunk elements in the tree.
func (t *Tree[C, S]) Len() int {
	if t.IsEmpty() {
		return 0
	}
	return t.cfg.Info.Len(t.root.Summary())
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[C, S]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Summary returns the root summary, or Zero() for an empty tree.
func (t *Tree[C, S]) Summary() S {
	if t.root == nil {
		return t.cfg.Info.Zero()
	}
	return t.root.Summary()
}

// PushChunk appends a single chunk at the end of the tree. Empty chunks are
// ignored. For bulk loading, Builder is considerably faster.
func (t *Tree[C, S]) PushChunk(c C) {
	if c.Len() == 0 {
		return
	}
	if c.Len() > c.MaxLen() {
		panic(fmt.Errorf("%w: %d > %d", ErrChunkOverflow, c.Len(), c.MaxLen()))
	}
	single := &Tree[C, S]{cfg: t.cfg, height: 1}
	single.root = single.makeLeaf(c)
	t.Append(single)
}

// Append concatenates other onto the end of t. other is left untouched.
//
// The seam leaves are merged if they fit or rebalanced if one of them is less
// than half full, then the spines are joined height-aware.
func (t *Tree[C, S]) Append(other *Tree[C, S]) {
	if other.IsEmpty() {
		return
	}
	if t.cfg.Info == nil {
		t.cfg = other.cfg
	}
	t.setRoot(t.join(t.whole(), other.whole()))
}

// SplitOff splits the tree at index at. t keeps [0,at) and the returned tree
// holds [at,Len()).
//
// If at is not a chunk boundary, it is snapped backward to the nearest one.
// SplitOff panics with an error wrapping ErrIndexOutOfBounds if at is not
// within [0,Len()].
func (t *Tree[C, S]) SplitOff(at int) *Tree[C, S] {
	n := t.Len()
	checkIndex(at, 0, n)
	at = t.snapBackward(at)
	right := &Tree[C, S]{cfg: t.cfg}
	switch {
	case at == n:
	case at == 0:
		right.setRoot(t.whole())
		t.setRoot(subtree[C, S]{})
	default:
		l, r := t.splitNode(t.root, t.height, at)
		t.setRoot(l)
		right.setRoot(r)
	}
	return right
}

// TruncateFront drops elements [0,start).
func (t *Tree[C, S]) TruncateFront(start int) {
	right := t.SplitOff(start)
	t.setRoot(right.whole())
}

// TruncateBack drops elements [end,Len()).
func (t *Tree[C, S]) TruncateBack(end int) {
	t.SplitOff(end)
}

// ReplaceRange replaces elements [start,end) with the contents of
// replacement, which may be nil or empty. Both bounds are snapped backward to
// chunk boundaries.
func (t *Tree[C, S]) ReplaceRange(start, end int, replacement *Tree[C, S]) {
	checkRange(start, end, 0, t.Len())
	start, end = t.snapBackward(start), t.snapBackward(end)
	right := t.SplitOff(end)
	t.TruncateBack(start)
	t.Append(replacement)
	t.Append(right)
}

// --- Internals -------------------------------------------------------------

func (t *Tree[C, S]) whole() subtree[C, S] {
	return subtree[C, S]{node: t.root, height: t.height}
}

func (t *Tree[C, S]) setRoot(st subtree[C, S]) {
	t.root, t.height = st.node, st.height
	if t.root == nil {
		t.height = 0
	}
}

// leafAt returns the leaf holding element index and the global index of its
// first element. index == Len() resolves to the last leaf.
func (t *Tree[C, S]) leafAt(index int) (*leafNode[C, S], int) {
	assert(t.root != nil, "leafAt called on empty tree")
	n, start := t.root, 0
	for !n.isLeaf() {
		inner := n.(*innerNode[C, S])
		for i, child := range inner.children {
			size := t.nodeLen(child)
			if index < start+size || i == len(inner.children)-1 {
				n = child
				break
			}
			start += size
		}
	}
	return n.(*leafNode[C, S]), start
}

// snapBackward moves index back to the nearest chunk boundary.
func (t *Tree[C, S]) snapBackward(index int) int {
	if index <= 0 || index >= t.Len() {
		return index
	}
	leaf, start := t.leafAt(index)
	local := index - start
	for local > 0 && !leaf.chunk.IsBoundary(local) {
		local--
	}
	return start + local
}

// isOK reports whether n may serve as a non-root child without repair.
func (t *Tree[C, S]) isOK(n treeNode[C, S]) bool {
	if n.isLeaf() {
		c := n.(*leafNode[C, S]).chunk
		return c.Len() >= c.MaxLen()/2
	}
	return len(n.(*innerNode[C, S]).children) >= MinChildren
}

// join concatenates two subtrees that may have different heights.
//
// The shorter subtree is pushed down the adjacent spine of the taller one
// until heights match. Only nodes on that spine are rebuilt; everything else
// is shared. The result is a subtree of height max(left,right) or one more.
//
// Invariant: at most one of the operands is a root-like node that may be
// under-full, the other one (and every child of both) satisfies isOK. Under
// this precondition every non-root node of the result satisfies isOK, too.
func (t *Tree[C, S]) join(left, right subtree[C, S]) subtree[C, S] {
	if left.isEmpty() {
		return right
	}
	if right.isEmpty() {
		return left
	}
	switch {
	case left.height < right.height:
		children := right.node.(*innerNode[C, S]).children
		if left.height == right.height-1 && t.isOK(left.node) {
			return t.mergeChildren([]treeNode[C, S]{left.node}, children, right.height)
		}
		joined := t.join(left, subtree[C, S]{node: children[0], height: right.height - 1})
		if joined.height == right.height-1 {
			return t.mergeChildren([]treeNode[C, S]{joined.node}, children[1:], right.height)
		}
		return t.mergeChildren(joined.node.(*innerNode[C, S]).children, children[1:], right.height)
	case left.height > right.height:
		children := left.node.(*innerNode[C, S]).children
		last := len(children) - 1
		if right.height == left.height-1 && t.isOK(right.node) {
			return t.mergeChildren(children, []treeNode[C, S]{right.node}, left.height)
		}
		joined := t.join(subtree[C, S]{node: children[last], height: left.height - 1}, right)
		if joined.height == left.height-1 {
			return t.mergeChildren(children[:last], []treeNode[C, S]{joined.node}, left.height)
		}
		return t.mergeChildren(children[:last], joined.node.(*innerNode[C, S]).children, left.height)
	}
	return t.concatSameHeight(left.node, right.node, left.height)
}

// concatSameHeight joins two nodes of equal height.
//
// Two healthy nodes become siblings under a new parent. Otherwise leaves are
// merged or balanced, and inner nodes pool their children.
func (t *Tree[C, S]) concatSameHeight(left, right treeNode[C, S], height int) subtree[C, S] {
	assert(height > 0, "concatSameHeight called with non-positive height")
	if t.isOK(left) && t.isOK(right) {
		return subtree[C, S]{node: t.makeInternal(left, right), height: height + 1}
	}
	if height == 1 {
		leftLeaf, lok := left.(*leafNode[C, S])
		rightLeaf, rok := right.(*leafNode[C, S])
		assert(lok && rok, "concatSameHeight expected leaf nodes at height 1")
		return t.joinLeaves(leftLeaf, rightLeaf)
	}
	leftInner, lok := left.(*innerNode[C, S])
	rightInner, rok := right.(*innerNode[C, S])
	assert(lok && rok, "concatSameHeight expected internal nodes")
	return t.mergeChildren(leftInner.children, rightInner.children, height)
}

// joinLeaves merges two adjacent leaves if their chunks fit into one, and
// otherwise balances the chunks towards equal length.
func (t *Tree[C, S]) joinLeaves(left, right *leafNode[C, S]) subtree[C, S] {
	l, r := left.chunk, right.chunk
	if l.Len()+r.Len() <= l.MaxLen() {
		merged, _ := l.ShiftLeft(r, r.Len())
		return subtree[C, S]{node: t.makeLeaf(merged), height: 1}
	}
	l, r = balanceChunks[C, S](l, r)
	return subtree[C, S]{
		node:   t.makeInternal(t.makeLeaf(l), t.makeLeaf(r)),
		height: 2,
	}
}

// mergeChildren pools two runs of siblings (each of height-1) into one node of
// the given height, or into two evenly filled nodes under a new parent if they
// exceed MaxChildren.
func (t *Tree[C, S]) mergeChildren(a, b []treeNode[C, S], height int) subtree[C, S] {
	children := make([]treeNode[C, S], 0, len(a)+len(b))
	children = append(children, a...)
	children = append(children, b...)
	assert(len(children) >= 2, "mergeChildren needs at least two children")
	if len(children) <= MaxChildren {
		return subtree[C, S]{node: t.makeInternal(children...), height: height}
	}
	mid := len(children) / 2
	return subtree[C, S]{
		node:   t.makeInternal(t.makeInternal(children[:mid]...), t.makeInternal(children[mid:]...)),
		height: height + 1,
	}
}

// splitNode splits subtree n at a chunk boundary index with 0 < index < len(n).
//
// Only the path to the split point is cut; the siblings left and right of
// that path are wrapped and rejoined with the cut halves, which repairs any
// under-full node along the seam.
func (t *Tree[C, S]) splitNode(n treeNode[C, S], height, index int) (subtree[C, S], subtree[C, S]) {
	if n.isLeaf() {
		c := n.(*leafNode[C, S]).chunk
		assert(index > 0 && index < c.Len(), "splitNode leaf index out of range")
		return subtree[C, S]{node: t.makeLeaf(c.TruncateBack(index)), height: 1},
			subtree[C, S]{node: t.makeLeaf(c.TruncateFront(index)), height: 1}
	}
	inner := n.(*innerNode[C, S])
	offset := 0
	for slot, child := range inner.children {
		size := t.nodeLen(child)
		if index >= offset+size {
			offset += size
			continue
		}
		if index == offset {
			return t.subtreeFromChildren(inner.children[:slot], height),
				t.subtreeFromChildren(inner.children[slot:], height)
		}
		cl, cr := t.splitNode(child, height-1, index-offset)
		left := t.join(t.subtreeFromChildren(inner.children[:slot], height), cl)
		right := t.join(cr, t.subtreeFromChildren(inner.children[slot+1:], height))
		return left, right
	}
	panic(fmt.Errorf("%w: split index %d exceeds subtree", ErrIndexOutOfBounds, index))
}

// balanceChunks redistributes elements between two adjacent chunks towards
// equal length, moving only at valid boundaries. The combined length must
// exceed a single chunk's capacity.
func balanceChunks[C Chunk[C, S], S any](left, right C) (C, C) {
	total := left.Len() + right.Len()
	maxLen := left.MaxLen()
	target := total / 2
	switch {
	case left.Len() < target:
		hi := min(right.Len()-1, maxLen-left.Len())
		if end := nearestBoundary[C, S](right, target-left.Len(), 1, hi); end > 0 {
			return left.ShiftLeft(right, end)
		}
	case left.Len() > target:
		lo := max(1, total-maxLen)
		if start := nearestBoundary[C, S](left, target, lo, left.Len()-1); start > 0 {
			return left.ShiftRight(right, start)
		}
	}
	return left, right
}

// nearestBoundary returns the boundary of c within [lo,hi] closest to i, or
// -1 if there is none.
func nearestBoundary[C Chunk[C, S], S any](c C, i, lo, hi int) int {
	for d := 0; i-d >= lo || i+d <= hi; d++ {
		if j := i - d; j >= lo && j <= hi && c.IsBoundary(j) {
			return j
		}
		if j := i + d; j >= lo && j <= hi && c.IsBoundary(j) {
			return j
		}
	}
	return -1
}
