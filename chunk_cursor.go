package rope

import (
	"github.com/npillmayer/rope/btree"
	"github.com/npillmayer/rope/chunk"
)

// ChunkCursor moves over a slice of a rope chunk by chunk.
//
// The cursor is bound to one rope snapshot. Byte positions are relative to
// the start of the slice the cursor was created from.
type ChunkCursor struct {
	c    *btree.Cursor[chunk.Chunk, chunk.Summary]
	base int
}

// ChunkCursorFront returns a chunk cursor at the start of s.
func (s Slice) ChunkCursorFront() *ChunkCursor {
	return &ChunkCursor{c: s.s.CursorFront(), base: s.s.Start()}
}

// ChunkCursorBack returns a chunk cursor at the end of s.
func (s Slice) ChunkCursorBack() *ChunkCursor {
	return &ChunkCursor{c: s.s.CursorBack(), base: s.s.Start()}
}

// ChunkCursorAt returns a chunk cursor at byte offset i of s.
func (s Slice) ChunkCursorAt(i int) *ChunkCursor {
	checkIndex(i, 0, s.ByteLen())
	return &ChunkCursor{c: s.s.CursorAt(s.s.Start() + i), base: s.s.Start()}
}

// ChunkCursorFront returns a chunk cursor at the start of r.
func (r Rope) ChunkCursorFront() *ChunkCursor { return r.Full().ChunkCursorFront() }

// ChunkCursorBack returns a chunk cursor at the end of r.
func (r Rope) ChunkCursorBack() *ChunkCursor { return r.Full().ChunkCursorBack() }

// ChunkCursorAt returns a chunk cursor at byte offset i of r.
func (r Rope) ChunkCursorAt(i int) *ChunkCursor { return r.Full().ChunkCursorAt(i) }

// BytePosition returns the cursor position.
func (cc *ChunkCursor) BytePosition() int {
	return cc.c.Position() - cc.base
}

// ChunkStart returns the position of the start of the current chunk, clipped
// to the slice.
func (cc *ChunkCursor) ChunkStart() int {
	from, _ := cc.c.ChunkBounds()
	return cc.c.ChunkStart() + from - cc.base
}

// Chunk returns the text of the current chunk from the cursor position up to
// the end of the chunk, clipped to the slice. At the end of the slice it is
// empty.
func (cc *ChunkCursor) Chunk() string {
	ch, ok := cc.c.Chunk()
	if !ok {
		return ""
	}
	_, to := cc.c.ChunkBounds()
	return ch.Text(min(cc.c.Offset(), to), to)
}

// IsAtFront reports whether the cursor is at the start of its slice.
func (cc *ChunkCursor) IsAtFront() bool { return cc.c.IsAtFront() }

// IsAtBack reports whether the cursor is at the end of its slice.
func (cc *ChunkCursor) IsAtBack() bool { return cc.c.IsAtBack() }

// IsAtChunkStart reports whether the cursor is at the start of the current
// chunk, clipped to the slice.
func (cc *ChunkCursor) IsAtChunkStart() bool {
	return cc.BytePosition() == cc.ChunkStart()
}

// MoveNext moves the cursor to the start of the next chunk, or to the end of
// the slice after the last chunk. It reports false if the cursor already was
// at the end.
func (cc *ChunkCursor) MoveNext() bool {
	return cc.c.MoveNextChunk()
}

// MovePrev moves the cursor to the start of the current chunk, or, if already
// there, to the start of the previous chunk. It reports false if the cursor
// already was at the start.
func (cc *ChunkCursor) MovePrev() bool {
	return cc.c.MovePrevChunk()
}

// MoveTo moves the cursor to byte position i.
func (cc *ChunkCursor) MoveTo(i int) {
	lo, hi := cc.c.Bounds()
	checkIndex(i, 0, hi-lo)
	cc.c.MoveTo(cc.base + i)
}
