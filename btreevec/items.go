package btreevec

import "slices"

// MaxItems is the maximum number of items held by a leaf chunk.
const MaxItems = 32

// items is the leaf chunk of a vector. Its backing array is never written to
// after construction, so chunks may share it.
type items[T any] struct {
	elems []T
}

func (c items[T]) Summary() int { return len(c.elems) }
func (c items[T]) Len() int     { return len(c.elems) }
func (c items[T]) MaxLen() int  { return MaxItems }

// IsBoundary is true for every index: items are never split.
func (c items[T]) IsBoundary(index int) bool {
	return index >= 0 && index <= len(c.elems)
}

func (c items[T]) ShiftLeft(right items[T], end int) (items[T], items[T]) {
	return items[T]{slices.Concat(c.elems, right.elems[:end])}, items[T]{right.elems[end:]}
}

func (c items[T]) ShiftRight(right items[T], start int) (items[T], items[T]) {
	return items[T]{c.elems[:start:start]}, items[T]{slices.Concat(c.elems[start:], right.elems)}
}

func (c items[T]) TruncateFront(start int) items[T] { return items[T]{c.elems[start:]} }
func (c items[T]) TruncateBack(end int) items[T]    { return items[T]{c.elems[:end:end]} }

// count is the summary monoid of vectors: the number of items.
type count struct{}

func (count) Zero() int               { return 0 }
func (count) Add(left, right int) int { return left + right }
func (count) Sub(left, right int) int { return left - right }
func (count) Len(s int) int           { return s }
