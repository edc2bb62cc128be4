package btree

import "fmt"

// Builder constructs a tree from a sequence of chunks in O(n).
//
// Chunks are collected as leaves; structure is deferred until Build, which
// assembles the levels bottom-up with evenly filled inner nodes. Adjacent
// chunks are merged on push if they fit into one, and balanced if one of them
// is less than half full.
type Builder[C Chunk[C, S], S any] struct {
	cfg    Config[S]
	chunks []C
	n      int // elements staged
}

// NewBuilder creates a builder for trees with configuration cfg.
func NewBuilder[C Chunk[C, S], S any](cfg Config[S]) (*Builder[C, S], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Builder[C, S]{cfg: cfg}, nil
}

// PushChunk appends a chunk. Empty chunks are ignored; a chunk exceeding its
// MaxLen panics with an error wrapping ErrChunkOverflow.
func (b *Builder[C, S]) PushChunk(c C) {
	if c.Len() == 0 {
		return
	}
	if c.Len() > c.MaxLen() {
		panic(fmt.Errorf("%w: %d > %d", ErrChunkOverflow, c.Len(), c.MaxLen()))
	}
	b.n += c.Len()
	n := len(b.chunks)
	if n == 0 {
		b.chunks = append(b.chunks, c)
		return
	}
	last := b.chunks[n-1]
	switch {
	case last.Len()+c.Len() <= last.MaxLen():
		b.chunks[n-1], _ = last.ShiftLeft(c, c.Len())
	case last.Len() < last.MaxLen()/2 || c.Len() < c.MaxLen()/2:
		b.chunks[n-1], c = balanceChunks[C, S](last, c)
		b.chunks = append(b.chunks, c)
	default:
		b.chunks = append(b.chunks, c)
	}
}

// Len returns the number of elements pushed so far.
func (b *Builder[C, S]) Len() int {
	return b.n
}

// Build assembles the tree and resets the builder.
func (b *Builder[C, S]) Build() *Tree[C, S] {
	t := &Tree[C, S]{cfg: b.cfg}
	if len(b.chunks) == 0 {
		b.n = 0
		return t
	}
	level := make([]treeNode[C, S], len(b.chunks))
	for i, c := range b.chunks {
		level[i] = t.makeLeaf(c)
	}
	b.chunks, b.n = nil, 0
	height := 1
	for len(level) > 1 {
		level = t.buildLevel(level)
		height++
	}
	t.root, t.height = level[0], height
	tracer().Debugf("btree builder: %d elements, height %d", t.Len(), height)
	return t
}

// buildLevel groups a level of nodes into parents holding between
// MinChildren and MaxChildren children each.
func (t *Tree[C, S]) buildLevel(level []treeNode[C, S]) []treeNode[C, S] {
	groups := (len(level) + MaxChildren - 1) / MaxChildren
	parents := make([]treeNode[C, S], 0, groups)
	base, extra := len(level)/groups, len(level)%groups
	for g := range groups {
		size := base
		if g < extra {
			size++
		}
		parents = append(parents, t.makeInternal(level[:size]...))
		level = level[size:]
	}
	return parents
}
