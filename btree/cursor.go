package btree

// Cursor is a position within a slice of a tree.
//
// Positions use the index space of the underlying tree and range over
// [lo,hi], the bounds of the slice the cursor was created from. A cursor
// always designates a current chunk: the chunk containing the element at the
// cursor position, or, at the back of a non-empty slice, the chunk containing
// the last element.
//
// Along with the chunk, a cursor maintains the prefix summary of everything
// before the chunk. Moving to an adjacent chunk is O(1) amortized, random
// access is O(log n).
type Cursor[C Chunk[C, S], S any] struct {
	info   Info[S]
	root   treeNode[C, S]
	lo, hi int
	stack  []frame[C, S]  // path from the root to the parent of leaf
	leaf   *leafNode[C, S] // nil for an empty tree
	start  int             // index of the first element of leaf
	prefix S               // summary of all elements before leaf
	pos    int
}

type frame[C Chunk[C, S], S any] struct {
	node *innerNode[C, S]
	slot int
}

// CursorFront returns a cursor positioned at the start of the slice.
func (s Slice[C, S]) CursorFront() *Cursor[C, S] {
	return s.CursorAt(s.start)
}

// CursorBack returns a cursor positioned at the end of the slice.
func (s Slice[C, S]) CursorBack() *Cursor[C, S] {
	return s.CursorAt(s.end)
}

// CursorAt returns a cursor positioned at pos, which must lie within
// [Start(),End()].
func (s Slice[C, S]) CursorAt(pos int) *Cursor[C, S] {
	checkIndex(pos, s.start, s.end)
	c := s.newCursor()
	c.seek(pos)
	return c
}

// CursorWhere seeks the first chunk for which the accumulated summary, from
// the start of the tree up to and including the chunk, satisfies pred. If no
// chunk does, the cursor lands on the last chunk. The cursor is positioned at
// the start of the chunk, clipped to the slice.
//
// pred must be monotone: once true for a prefix, it must stay true for every
// longer prefix.
func (s Slice[C, S]) CursorWhere(pred func(S) bool) *Cursor[C, S] {
	c := s.newCursor()
	c.seekWhere(pred)
	return c
}

func (s Slice[C, S]) newCursor() *Cursor[C, S] {
	return &Cursor[C, S]{
		info:  s.cfg.Info,
		root:  s.root,
		lo:    s.start,
		hi:    s.end,
		stack: make([]frame[C, S], 0, s.height),
	}
}

// CursorFront returns a cursor at the front of the whole tree.
func (t *Tree[C, S]) CursorFront() *Cursor[C, S] { return t.Full().CursorFront() }

// CursorBack returns a cursor at the back of the whole tree.
func (t *Tree[C, S]) CursorBack() *Cursor[C, S] { return t.Full().CursorBack() }

// CursorAt returns a cursor at pos of the whole tree.
func (t *Tree[C, S]) CursorAt(pos int) *Cursor[C, S] { return t.Full().CursorAt(pos) }

// CursorWhere is Slice.CursorWhere for the whole tree.
func (t *Tree[C, S]) CursorWhere(pred func(S) bool) *Cursor[C, S] {
	return t.Full().CursorWhere(pred)
}

// Position returns the cursor position.
func (c *Cursor[C, S]) Position() int { return c.pos }

// Bounds returns the bounds [lo,hi] of the slice the cursor moves within.
func (c *Cursor[C, S]) Bounds() (int, int) { return c.lo, c.hi }

// IsAtFront reports whether the cursor is at the start of its slice.
func (c *Cursor[C, S]) IsAtFront() bool { return c.pos == c.lo }

// IsAtBack reports whether the cursor is at the end of its slice.
func (c *Cursor[C, S]) IsAtBack() bool { return c.pos == c.hi }

// Chunk returns the current chunk. It reports false for an empty tree.
func (c *Cursor[C, S]) Chunk() (C, bool) {
	if c.leaf == nil {
		var zero C
		return zero, false
	}
	return c.leaf.chunk, true
}

// ChunkStart returns the tree index of the first element of the current chunk.
func (c *Cursor[C, S]) ChunkStart() int { return c.start }

// Offset returns the cursor position relative to the current chunk.
func (c *Cursor[C, S]) Offset() int { return c.pos - c.start }

// ChunkBounds returns the part of the current chunk that lies within the
// slice, as chunk-local indices [from,to).
func (c *Cursor[C, S]) ChunkBounds() (from, to int) {
	if c.leaf == nil {
		return 0, 0
	}
	from = max(c.start, c.lo) - c.start
	to = min(c.start+c.leaf.chunk.Len(), c.hi) - c.start
	return from, max(from, to)
}

// Prefix returns the summary of all elements of the tree before the current
// chunk.
func (c *Cursor[C, S]) Prefix() S { return c.prefix }

// MoveNextChunk moves to the start of the next chunk, or to the end of the
// slice if there is no further chunk within it. It reports false if the
// cursor already was at the end.
func (c *Cursor[C, S]) MoveNextChunk() bool {
	if c.pos >= c.hi {
		return false
	}
	end := c.start + c.leaf.chunk.Len()
	if end >= c.hi {
		c.pos = c.hi
		return true
	}
	c.stepForward()
	c.pos = end
	return true
}

// MovePrevChunk moves to the start of the current chunk (clipped to the
// slice), or, if already there, to the start of the previous chunk. It reports
// false if the cursor already was at the start of the slice.
func (c *Cursor[C, S]) MovePrevChunk() bool {
	if c.pos <= c.lo {
		return false
	}
	if from := max(c.start, c.lo); c.pos > from {
		c.pos = from
		return true
	}
	c.stepBackward()
	c.pos = max(c.start, c.lo)
	return true
}

// MoveTo moves the cursor to pos, which must lie within the slice bounds.
func (c *Cursor[C, S]) MoveTo(pos int) {
	checkIndex(pos, c.lo, c.hi)
	if c.leaf == nil {
		c.pos = pos
		return
	}
	target := c.target(pos)
	end := c.start + c.leaf.chunk.Len()
	switch {
	case target >= c.start && target < end:
	case target == end && c.stepForward():
	case target == c.start-1 && c.stepBackward():
	default:
		c.seek(pos)
		return
	}
	c.pos = pos
}

// MoveBy moves the cursor by n elements (backwards for negative n).
func (c *Cursor[C, S]) MoveBy(n int) {
	c.MoveTo(c.pos + n)
}

// --- Internals -------------------------------------------------------------

// target returns the element index whose chunk is current at pos.
func (c *Cursor[C, S]) target(pos int) int {
	if pos == c.hi && pos > c.lo {
		return pos - 1
	}
	return pos
}

func (c *Cursor[C, S]) reset() {
	c.stack = c.stack[:0]
	c.leaf = nil
	c.start = 0
	c.prefix = c.info.Zero()
}

func (c *Cursor[C, S]) seek(pos int) {
	c.reset()
	c.pos = pos
	if c.root == nil {
		return
	}
	target := c.target(pos)
	n := c.root
	for !n.isLeaf() {
		inner := n.(*innerNode[C, S])
		for i, child := range inner.children {
			size := c.info.Len(child.Summary())
			if target < c.start+size || i == len(inner.children)-1 {
				c.stack = append(c.stack, frame[C, S]{node: inner, slot: i})
				n = child
				break
			}
			c.start += size
			c.prefix = c.info.Add(c.prefix, child.Summary())
		}
	}
	c.leaf = n.(*leafNode[C, S])
}

func (c *Cursor[C, S]) seekWhere(pred func(S) bool) {
	c.reset()
	c.pos = c.lo
	if c.root == nil {
		return
	}
	n := c.root
	for !n.isLeaf() {
		inner := n.(*innerNode[C, S])
		for i, child := range inner.children {
			acc := c.info.Add(c.prefix, child.Summary())
			if pred(acc) || i == len(inner.children)-1 {
				c.stack = append(c.stack, frame[C, S]{node: inner, slot: i})
				n = child
				break
			}
			c.start += c.info.Len(child.Summary())
			c.prefix = acc
		}
	}
	c.leaf = n.(*leafNode[C, S])
	p := min(max(c.start, c.lo), c.hi)
	if p != c.start || (p == c.hi && p > c.lo) {
		c.seek(p)
		return
	}
	c.pos = p
}

// stepForward makes the next leaf current, leaving pos untouched.
func (c *Cursor[C, S]) stepForward() bool {
	for d := len(c.stack) - 1; d >= 0; d-- {
		f := &c.stack[d]
		if f.slot+1 >= len(f.node.children) {
			continue
		}
		c.prefix = c.info.Add(c.prefix, c.leaf.summary)
		c.start += c.leaf.chunk.Len()
		f.slot++
		n := f.node.children[f.slot]
		c.stack = c.stack[:d+1]
		for !n.isLeaf() {
			inner := n.(*innerNode[C, S])
			c.stack = append(c.stack, frame[C, S]{node: inner, slot: 0})
			n = inner.children[0]
		}
		c.leaf = n.(*leafNode[C, S])
		return true
	}
	return false
}

// stepBackward makes the previous leaf current, leaving pos untouched.
func (c *Cursor[C, S]) stepBackward() bool {
	for d := len(c.stack) - 1; d >= 0; d-- {
		f := &c.stack[d]
		if f.slot == 0 {
			continue
		}
		f.slot--
		n := f.node.children[f.slot]
		c.stack = c.stack[:d+1]
		for !n.isLeaf() {
			inner := n.(*innerNode[C, S])
			last := len(inner.children) - 1
			c.stack = append(c.stack, frame[C, S]{node: inner, slot: last})
			n = inner.children[last]
		}
		c.leaf = n.(*leafNode[C, S])
		c.start -= c.leaf.chunk.Len()
		c.prefix = c.info.Sub(c.prefix, c.leaf.summary)
		return true
	}
	return false
}
