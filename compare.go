package rope

import (
	"cmp"
	"strings"
)

// Compare compares the text of two ropes lexicographically by bytes. The
// result is 0 if a and b are equal, -1 if a < b, and +1 if a > b.
//
// Chunk borders of a and b need not line up; both ropes are walked with
// chunk cursors in lockstep.
func Compare(a, b Rope) int {
	ca, cb := a.ChunkCursorFront(), b.ChunkCursorFront()
	x, y := ca.Chunk(), cb.Chunk()
	for {
		if x == "" && ca.MoveNext() {
			x = ca.Chunk()
		}
		if y == "" && cb.MoveNext() {
			y = cb.Chunk()
		}
		if x == "" || y == "" {
			return cmp.Compare(len(x), len(y))
		}
		n := min(len(x), len(y))
		if c := strings.Compare(x[:n], y[:n]); c != 0 {
			return c
		}
		x, y = x[n:], y[n:]
	}
}

// Equal reports whether r and other hold the same text.
func (r Rope) Equal(other Rope) bool {
	return r.ByteLen() == other.ByteLen() && Compare(r, other) == 0
}
