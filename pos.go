package rope

import (
	"fmt"

	"github.com/npillmayer/rope/chunk"
	"github.com/npillmayer/rope/text"
)

// IsCharBoundary reports whether byte offset i is the start of a character or
// the end of the rope. Offsets outside the rope are not boundaries.
func (r Rope) IsCharBoundary(i int) bool {
	if i < 0 || i > r.ByteLen() {
		return false
	}
	if i == 0 || i == r.ByteLen() {
		return true
	}
	c := r.t().CursorAt(i)
	ch, _ := c.Chunk()
	return ch.IsCharBoundary(c.Offset())
}

// ByteToChar returns the number of characters starting before byte offset i.
// A character cut by i is counted.
func (r Rope) ByteToChar(i int) int {
	checkIndex(i, 0, r.ByteLen())
	if i == 0 {
		return 0
	}
	c := r.t().CursorAt(i)
	ch, _ := c.Chunk()
	return int(c.Prefix().Chars) + ch.CharsBefore(c.Offset())
}

// ByteToLine returns the 1-based number of the line containing byte offset i,
// i.e. the number of line breaks before i, plus one.
func (r Rope) ByteToLine(i int) int {
	checkIndex(i, 0, r.ByteLen())
	if i == 0 {
		return 1
	}
	c := r.t().CursorAt(i)
	ch, _ := c.Chunk()
	return int(c.Prefix().Lines) + ch.LinesBefore(c.Offset()) + 1
}

// CharToByte returns the byte offset of the character with index n
// (0-based). CharToByte(CharLen()) is ByteLen().
func (r Rope) CharToByte(n int) int {
	checkIndex(n, 0, r.CharLen())
	if n == r.CharLen() {
		return r.ByteLen()
	}
	c := r.t().CursorWhere(func(s chunk.Summary) bool {
		return int(s.Chars) > n
	})
	ch, _ := c.Chunk()
	return c.ChunkStart() + ch.CharToByte(n-int(c.Prefix().Chars))
}

// LineToByte returns the byte offset of the start of line l (1-based).
// LineToByte(1) is 0.
func (r Rope) LineToByte(l int) int {
	checkIndex(l, 1, r.LineLen())
	if l == 1 {
		return 0
	}
	breaks := l - 1
	c := r.t().CursorWhere(func(s chunk.Summary) bool {
		return int(s.Lines) >= breaks
	})
	ch, _ := c.Chunk()
	return c.ChunkStart() + ch.LineToByte(breaks-int(c.Prefix().Lines))
}

// lineEnd returns the byte offset of the end of line l (1-based), excluding
// its line break.
func (r Rope) lineEnd(l int) int {
	if l == r.LineLen() {
		return r.ByteLen()
	}
	return r.LineToByte(l+1) - 1
}

// PositionToByte converts a position with 0-based line and byte column to a
// byte offset. It returns an error wrapping ErrInvalidPosition if p does not
// denote a location within r. A column may address the end of a line, but not
// beyond.
func (r Rope) PositionToByte(p text.Position) (int, error) {
	if p.Line < 0 || p.Column < 0 || p.Line >= r.LineLen() {
		return 0, fmt.Errorf("%w: %v, text has %d lines", ErrInvalidPosition, p, r.LineLen())
	}
	start, end := r.LineToByte(p.Line+1), r.lineEnd(p.Line+1)
	if start+p.Column > end {
		return 0, fmt.Errorf("%w: %v, line has %d bytes", ErrInvalidPosition, p, end-start)
	}
	return start + p.Column, nil
}

// ByteToPosition converts byte offset i to a position with 0-based line and
// byte column.
func (r Rope) ByteToPosition(i int) text.Position {
	line := r.ByteToLine(i)
	return text.Position{Line: line - 1, Column: i - r.LineToByte(line)}
}
