package btree

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index or an inverted range.
	ErrIndexOutOfBounds = errors.New("btree: index out of bounds")
	// ErrChunkOverflow signals a chunk longer than its own MaxLen.
	ErrChunkOverflow = errors.New("btree: chunk exceeds maximum length")
	// ErrInvariantViolation is reported by Check for structurally broken trees.
	ErrInvariantViolation = errors.New("btree: invariant violated")
)

// checkIndex panics if index is not within [lo,hi].
func checkIndex(index, lo, hi int) {
	if index < lo || index > hi {
		panic(fmt.Errorf("%w: %d not in [%d,%d]", ErrIndexOutOfBounds, index, lo, hi))
	}
}

// checkRange panics if [start,end) is inverted or not within [lo,hi].
func checkRange(start, end, lo, hi int) {
	if start > end {
		panic(fmt.Errorf("%w: inverted range [%d,%d)", ErrIndexOutOfBounds, start, end))
	}
	checkIndex(start, lo, hi)
	checkIndex(end, lo, hi)
}
