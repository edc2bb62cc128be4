package rope

import (
	"unicode/utf8"

	"github.com/npillmayer/rope/btree"
	"github.com/npillmayer/rope/chunk"
)

// Cursor navigates a slice of a rope by bytes and by characters.
//
// The cursor is bound to one rope snapshot. Movement is in byte or character
// steps, while internal addressing uses the chunk tree for efficient routing.
// Positions are relative to the start of the slice the cursor was created
// from.
type Cursor struct {
	c    *btree.Cursor[chunk.Chunk, chunk.Summary]
	base int
}

// CursorFront returns a cursor at the start of s.
func (s Slice) CursorFront() *Cursor {
	return &Cursor{c: s.s.CursorFront(), base: s.s.Start()}
}

// CursorBack returns a cursor at the end of s.
func (s Slice) CursorBack() *Cursor {
	return &Cursor{c: s.s.CursorBack(), base: s.s.Start()}
}

// CursorAt returns a cursor at byte offset i of s.
func (s Slice) CursorAt(i int) *Cursor {
	checkIndex(i, 0, s.ByteLen())
	return &Cursor{c: s.s.CursorAt(s.s.Start() + i), base: s.s.Start()}
}

// CursorFront returns a cursor at the start of r.
func (r Rope) CursorFront() *Cursor { return r.Full().CursorFront() }

// CursorBack returns a cursor at the end of r.
func (r Rope) CursorBack() *Cursor { return r.Full().CursorBack() }

// CursorAt returns a cursor at byte offset i of r.
func (r Rope) CursorAt(i int) *Cursor { return r.Full().CursorAt(i) }

// Position returns the cursor's byte position.
func (cur *Cursor) Position() int {
	return cur.c.Position() - cur.base
}

// IsAtFront reports whether the cursor is at the start of its slice.
func (cur *Cursor) IsAtFront() bool { return cur.c.IsAtFront() }

// IsAtBack reports whether the cursor is at the end of its slice.
func (cur *Cursor) IsAtBack() bool { return cur.c.IsAtBack() }

// IsAtCharBoundary reports whether the cursor is positioned at the start of a
// character or at the end of the slice.
func (cur *Cursor) IsAtCharBoundary() bool {
	ch, ok := cur.c.Chunk()
	return !ok || cur.c.IsAtBack() || ch.IsCharBoundary(cur.c.Offset())
}

// CurrentByte returns the byte at the cursor position. It reports false at
// the end of the slice.
func (cur *Cursor) CurrentByte() (byte, bool) {
	if cur.c.IsAtBack() {
		return 0, false
	}
	ch, _ := cur.c.Chunk()
	return ch.Byte(cur.c.Offset()), true
}

// CurrentChar returns the character starting at the cursor position. It
// reports false at the end of the slice. If the cursor is positioned inside a
// character, the result is utf8.RuneError.
func (cur *Cursor) CurrentChar() (rune, bool) {
	if cur.c.IsAtBack() {
		return 0, false
	}
	if !cur.IsAtCharBoundary() {
		return utf8.RuneError, true
	}
	ch, _ := cur.c.Chunk()
	r, _ := ch.DecodeRune(cur.c.Offset())
	return r, true
}

// MoveNextByte advances the cursor by one byte. It reports false at the end
// of the slice.
func (cur *Cursor) MoveNextByte() bool {
	if cur.c.IsAtBack() {
		return false
	}
	cur.c.MoveBy(1)
	return true
}

// MovePrevByte moves the cursor back by one byte. It reports false at the
// start of the slice.
func (cur *Cursor) MovePrevByte() bool {
	if cur.c.IsAtFront() {
		return false
	}
	cur.c.MoveBy(-1)
	return true
}

// MoveNextChar advances the cursor to the start of the next character. If
// the cursor is inside a character, it moves to the start of the following
// one. It reports false at the end of the slice.
func (cur *Cursor) MoveNextChar() bool {
	if cur.c.IsAtBack() {
		return false
	}
	ch, _ := cur.c.Chunk()
	off := cur.c.Offset()
	n := 1
	if ch.IsCharBoundary(off) {
		_, n = ch.DecodeRune(off)
	} else {
		for off+n < ch.Len() && !ch.IsCharBoundary(off+n) {
			n++
		}
	}
	cur.c.MoveBy(n)
	return true
}

// MovePrevChar moves the cursor back to the start of the previous character,
// or to the start of the current one if the cursor is inside a character. It
// reports false at the start of the slice.
func (cur *Cursor) MovePrevChar() bool {
	if cur.c.IsAtFront() {
		return false
	}
	cur.c.MoveBy(-1)
	ch, _ := cur.c.Chunk()
	off := cur.c.Offset()
	n := 0
	for off-n > 0 && !ch.IsCharBoundary(off-n) && !cur.atFront(n) {
		n++
	}
	cur.c.MoveBy(-n)
	return true
}

func (cur *Cursor) atFront(back int) bool {
	lo, _ := cur.c.Bounds()
	return cur.c.Position()-back <= lo
}

// MoveTo moves the cursor to byte position i.
func (cur *Cursor) MoveTo(i int) {
	lo, hi := cur.c.Bounds()
	checkIndex(i, 0, hi-lo)
	cur.c.MoveTo(cur.base + i)
}
