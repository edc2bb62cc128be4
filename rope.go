package rope

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strings"

	"github.com/npillmayer/rope/btree"
	"github.com/npillmayer/rope/chunk"
)

type tree = btree.Tree[chunk.Chunk, chunk.Summary]

// Rope stores UTF-8 text in a persistent summarized B+ tree.
//
// A rope created by
//
//	Rope{}
//
// is a valid object and behaves like the empty string.
//
// Methods that take or return positions use byte offsets.
//
// Due to their internal structure ropes do have performance characteristics
// differing from Go strings or byte arrays.
//
//	Operation     |   Rope          |  String
//	--------------+-----------------+--------
//	Index         |   O(log n)      |   O(1)
//	Split         |   O(log n)      |   O(1)
//	Iterate       |   O(n)          |   O(n)
//
//	Concatenate   |   O(log n)      |   O(n)
//	Insert        |   O(log n)      |   O(n)
//	Delete        |   O(log n)      |   O(n)
//
// For use cases with many editing operations on large texts, ropes have stable
// performance and space characteristics.
type Rope struct {
	tree tree
}

func treeConfig() btree.Config[chunk.Summary] {
	return btree.Config[chunk.Summary]{Info: chunk.Monoid{}}
}

// t returns the tree of r, initializing it on first use.
func (r *Rope) t() *tree {
	if r.tree.Config().Info == nil {
		t, err := btree.New[chunk.Chunk, chunk.Summary](treeConfig())
		assert(err == nil, "rope: cannot create chunk tree")
		r.tree = *t
	}
	return &r.tree
}

// FromString creates a rope from a Go string. Invalid UTF-8 sequences are
// replaced by U+FFFD.
func FromString(s string) Rope {
	var b Builder
	b.PushString(s)
	return b.Build()
}

// String returns the complete rope as a Go string. This may be an expensive
// operation, as it will allocate a buffer for all the bytes of the rope.
func (r Rope) String() string {
	var sb strings.Builder
	sb.Grow(r.ByteLen())
	for s := range r.Chunks() {
		sb.WriteString(s)
	}
	return sb.String()
}

// IsEmpty reports whether the rope has no bytes.
func (r Rope) IsEmpty() bool {
	return r.tree.IsEmpty()
}

// ByteLen returns the rope length in bytes.
func (r Rope) ByteLen() int {
	return r.tree.Len()
}

// CharLen returns the number of UTF-8 characters in the rope.
func (r Rope) CharLen() int {
	return int(r.Summary().Chars)
}

// LineLen returns the number of lines, i.e. the number of line breaks
// plus one. The empty rope has one line.
func (r Rope) LineLen() int {
	return int(r.Summary().Lines) + 1
}

// Summary returns aggregate byte/char/line counts for the rope.
func (r Rope) Summary() chunk.Summary {
	if r.tree.IsEmpty() {
		return chunk.Summary{}
	}
	return r.tree.Summary()
}

// Clone returns a copy of r. Cloning is O(1); the copy shares all nodes
// with r.
func (r Rope) Clone() Rope {
	return r
}

// Height returns the height of the rope's tree, 0 for the empty rope.
func (r Rope) Height() int {
	return r.tree.Height()
}

// Check validates the invariants of the rope's tree. It is intended for
// tests.
func (r Rope) Check() error {
	return r.tree.Check()
}

// Full returns a slice of the whole rope.
func (r Rope) Full() Slice {
	return Slice{s: r.t().Full()}
}

// Slice returns a view of the bytes [start,end) of r. Both bounds are snapped
// backward to character boundaries.
func (r Rope) Slice(start, end int) Slice {
	n := r.ByteLen()
	checkIndex(end, 0, n)
	checkIndex(start, 0, end)
	start, end = r.snapBackward(start), r.snapBackward(end)
	return Slice{s: r.t().Slice(start, end)}
}

// snapBackward moves i back to the nearest character boundary.
func (r Rope) snapBackward(i int) int {
	if i <= 0 || i >= r.ByteLen() {
		return i
	}
	c := r.t().CursorAt(i)
	ch, _ := c.Chunk()
	off := c.Offset()
	for off > 0 && !ch.IsCharBoundary(off) {
		off--
	}
	return c.ChunkStart() + off
}
