/*
Package btree provides a persistent, chunked B+ sum-tree for sequence storage.

The tree is not a generic map/set container. It is specialized for sequences
with positional editing: leaves hold bounded chunks of elements (bytes of
UTF-8 text, items of a vector), and every node caches an aggregated summary of
its subtree. Summaries form a monoid with an inverse (see Info), which lets
cursors maintain prefix sums while they move.

Structure:
  - every leaf holds exactly one non-empty chunk of at most Chunk.MaxLen()
    elements,
  - every inner node holds at most MaxChildren and, unless it is the root, at
    least MinChildren children,
  - all leaves are at the same depth.

Nodes are immutable once built. Mutating operations (Append, SplitOff,
TruncateFront, TruncateBack, ReplaceRange) path-copy the touched spine and
share everything else, so Clone is O(1) and a clone never observes later
edits of the original.

Concatenation is height-aware: the shorter tree is joined into the outer spine
of the taller one, merging or redistributing under-full nodes along the seam.
Leaf chunks at the seam are merged when they fit, or balanced through
Chunk.ShiftLeft and Chunk.ShiftRight. Splitting cuts one root-to-leaf path and
rejoins the pieces on either side, so both halves come out balanced.

Chunks are never split at an index for which Chunk.IsBoundary reports false;
split positions are snapped backward to the nearest boundary.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
