package rope

import (
	"strings"

	"github.com/npillmayer/rope/btree"
	"github.com/npillmayer/rope/chunk"
)

// Slice is a read-only view of a byte range of a rope.
//
// Creating a slice does not copy any text; a slice is not affected by later
// edits of the rope it was taken from. Offsets taken and returned by methods
// of Slice are relative to the start of the slice.
type Slice struct {
	s btree.Slice[chunk.Chunk, chunk.Summary]
}

// ByteLen returns the length of the slice in bytes.
func (s Slice) ByteLen() int {
	return s.s.Len()
}

// IsEmpty reports whether the slice has no bytes.
func (s Slice) IsEmpty() bool {
	return s.s.IsEmpty()
}

// Summary returns aggregate byte/char/line counts for the slice.
func (s Slice) Summary() chunk.Summary {
	return s.s.Summary()
}

// CharLen returns the number of characters in the slice.
func (s Slice) CharLen() int {
	return int(s.Summary().Chars)
}

// LineLen returns the number of line breaks in the slice, plus one.
func (s Slice) LineLen() int {
	return int(s.Summary().Lines) + 1
}

// Slice narrows the view to [start,end), relative to s. Both bounds are
// snapped backward to character boundaries.
func (s Slice) Slice(start, end int) Slice {
	checkIndex(end, 0, s.ByteLen())
	checkIndex(start, 0, end)
	start, end = s.snapBackward(start), s.snapBackward(end)
	return Slice{s: s.s.Slice(s.s.Start()+start, s.s.Start()+end)}
}

// snapBackward moves relative offset i back to the nearest character
// boundary.
func (s Slice) snapBackward(i int) int {
	if i <= 0 || i >= s.ByteLen() {
		return i
	}
	c := s.s.CursorAt(s.s.Start() + i)
	ch, _ := c.Chunk()
	off := c.Offset()
	for off > 0 && !ch.IsCharBoundary(off) {
		off--
	}
	return c.ChunkStart() + off - s.s.Start()
}

// ToRope materializes the slice as a rope of its own. This is O(log n); the
// new rope shares most of its nodes with the source.
func (s Slice) ToRope() Rope {
	var r Rope
	r.tree = *s.s.ToTree()
	return r
}

// String returns the text of the slice.
func (s Slice) String() string {
	var sb strings.Builder
	sb.Grow(s.ByteLen())
	for frag := range s.Chunks() {
		sb.WriteString(frag)
	}
	return sb.String()
}
