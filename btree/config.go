package btree

import "fmt"

const (
	// MaxChildren is the fixed max fanout of inner nodes.
	MaxChildren = 12
	// MinChildren is the lower occupancy bound for non-root inner nodes.
	MinChildren = MaxChildren / 2
)

// SummarizedItem ties a leaf item to its summary type at compile time.
type SummarizedItem[S any] interface {
	Summary() S
}

// Chunk is the contract for leaf content of a tree.
//
// A chunk is a bounded, splittable and mergeable run of elements (bytes of
// text, items of a vector, …). Chunks are values: every operation returns new
// chunks and leaves the receiver untouched.
//
// Indices are element offsets local to the chunk. Implementations must never
// be asked to split at an index for which IsBoundary reports false.
type Chunk[C any, S any] interface {
	SummarizedItem[S]
	// Len returns the number of elements in the chunk.
	Len() int
	// MaxLen returns the maximum number of elements a chunk may hold.
	MaxLen() int
	// IsBoundary reports whether the chunk may be split before index.
	IsBoundary(index int) bool
	// ShiftLeft moves the prefix [0,end) of right onto the end of the receiver.
	ShiftLeft(right C, end int) (C, C)
	// ShiftRight moves the suffix [start,Len) of the receiver onto the front of right.
	ShiftRight(right C, start int) (C, C)
	// TruncateFront drops elements [0,start).
	TruncateFront(start int) C
	// TruncateBack drops elements [end,Len).
	TruncateBack(end int) C
}

// SummaryMonoid defines how summaries are aggregated up the tree.
//
// For summaries s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
type SummaryMonoid[S any] interface {
	Zero() S
	Add(left, right S) S
}

// Info extends a summary monoid with an inverse and a length projection.
//
// Sub must undo Add:
//
//	Sub(Add(s, t), t) == s
//
// Len reports the number of chunk elements a summary accounts for and is used
// for positional routing.
type Info[S any] interface {
	SummaryMonoid[S]
	Sub(left, right S) S
	Len(s S) int
}

// Config configures a chunked B+ sum-tree.
type Config[S any] struct {
	// Info aggregates summaries up the tree.
	Info Info[S]
}

func (cfg Config[S]) validate() error {
	if cfg.Info == nil {
		return fmt.Errorf("%w: info monoid is required", ErrInvalidConfig)
	}
	return nil
}
