package chunk

import "math/bits"

// Summary aggregates chunk-level text metrics for tree routing.
//
// Tree-level code uses this summary to navigate and aggregate, while chunk
// code keeps ownership of local byte/rune boundary logic. Lines counts '\n'
// line breaks, so "\r\n" counts once.
type Summary struct {
	Bytes uint64
	Chars uint64
	Lines uint64
}

// Summary returns aggregate metrics for this chunk.
func (c Chunk) Summary() Summary {
	return summarize(c.Len(), c.chars, c.newlines)
}

// Summary returns aggregate metrics for this chunk view.
func (s ChunkSlice) Summary() Summary {
	return summarize(s.Len(), s.chars, s.newlines)
}

func summarize(n int, chars Bitmap, newlines Bitmap) Summary {
	mask := prefixMask(n)
	return Summary{
		Bytes: uint64(n),
		Chars: uint64(bits.OnesCount64(uint64(chars & mask))),
		Lines: uint64(bits.OnesCount64(uint64(newlines & mask))),
	}
}

// Monoid aggregates chunk summaries for B+ sum-tree internal nodes.
// It satisfies btree.Info[Summary].
type Monoid struct{}

// Zero returns the neutral summary value.
func (Monoid) Zero() Summary { return Summary{} }

// Add combines two summaries.
func (Monoid) Add(left, right Summary) Summary {
	return Summary{
		Bytes: left.Bytes + right.Bytes,
		Chars: left.Chars + right.Chars,
		Lines: left.Lines + right.Lines,
	}
}

// Sub removes right from left, where right is a prefix or suffix of left.
func (Monoid) Sub(left, right Summary) Summary {
	return Summary{
		Bytes: left.Bytes - right.Bytes,
		Chars: left.Chars - right.Chars,
		Lines: left.Lines - right.Lines,
	}
}

// Len returns the byte count, which is the positional unit of text trees.
func (Monoid) Len(s Summary) int {
	return int(s.Bytes)
}
