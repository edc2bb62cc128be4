package btreevec

import (
	"fmt"
	"iter"

	"github.com/npillmayer/rope/btree"
)

type tree[T any] = btree.Tree[items[T], int]

// Vec is a persistent sequence of items of type T.
//
// The zero value is an empty vector ready to use. Vec values may be copied;
// a copy is independent of the original and shares its nodes.
type Vec[T any] struct {
	tree tree[T]
}

func config() btree.Config[int] {
	return btree.Config[int]{Info: count{}}
}

// t returns the underlying tree, initializing it on first use.
func (v *Vec[T]) t() *tree[T] {
	if v.tree.Config().Info == nil {
		t, err := btree.New[items[T], int](config())
		assert(err == nil, "vector configuration is invalid")
		v.tree = *t
	}
	return &v.tree
}

// FromSlice creates a vector holding a copy of s.
func FromSlice[T any](s []T) Vec[T] {
	b, err := btree.NewBuilder[items[T], int](config())
	assert(err == nil, "vector configuration is invalid")
	for len(s) > 0 {
		n := min(len(s), MaxItems)
		b.PushChunk(items[T]{elems: append([]T(nil), s[:n]...)})
		s = s[n:]
	}
	var v Vec[T]
	v.tree = *b.Build()
	tracer().Debugf("btreevec: built vector of %d items", v.Len())
	return v
}

// Len returns the number of items.
func (v Vec[T]) Len() int {
	return v.tree.Len()
}

// IsEmpty reports whether v holds no items.
func (v Vec[T]) IsEmpty() bool {
	return v.tree.IsEmpty()
}

// At returns the item at index i. It panics with an error wrapping
// btree.ErrIndexOutOfBounds if i is not within [0,Len()).
func (v Vec[T]) At(i int) T {
	if i < 0 || i >= v.Len() {
		panic(fmt.Errorf("%w: index %d not in [0,%d)", btree.ErrIndexOutOfBounds, i, v.Len()))
	}
	c := v.t().CursorAt(i)
	chunk, _ := c.Chunk()
	return chunk.elems[c.Offset()]
}

// Clone returns a copy of v. Cloning is O(1).
func (v Vec[T]) Clone() Vec[T] {
	return v
}

// Push appends items to the end of v.
func (v *Vec[T]) Push(elems ...T) {
	v.Append(FromSlice(elems))
}

// Append appends the items of other to the end of v.
func (v *Vec[T]) Append(other Vec[T]) {
	v.t().Append(&other.tree)
}

// Insert inserts items before index i.
func (v *Vec[T]) Insert(i int, elems ...T) {
	v.ReplaceRange(i, i, FromSlice(elems))
}

// SplitOff splits v at index at. v keeps [0,at) and the returned vector holds
// [at,Len()).
func (v *Vec[T]) SplitOff(at int) Vec[T] {
	right := v.t().SplitOff(at)
	return Vec[T]{tree: *right}
}

// TruncateFront drops items [0,start).
func (v *Vec[T]) TruncateFront(start int) {
	v.t().TruncateFront(start)
}

// TruncateBack drops items [end,Len()).
func (v *Vec[T]) TruncateBack(end int) {
	v.t().TruncateBack(end)
}

// ReplaceRange replaces items [start,end) with the items of repl.
func (v *Vec[T]) ReplaceRange(start, end int, repl Vec[T]) {
	v.t().ReplaceRange(start, end, &repl.tree)
}

// Slice returns a vector holding items [start,end) of v, sharing nodes
// with v.
func (v Vec[T]) Slice(start, end int) Vec[T] {
	return Vec[T]{tree: *v.t().Slice(start, end).ToTree()}
}

// All iterates over index/item pairs from front to back.
func (v Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v.IsEmpty() {
			return
		}
		c := v.t().CursorFront()
		i := 0
		for {
			chunk, _ := c.Chunk()
			for _, x := range chunk.elems {
				if !yield(i, x) {
					return
				}
				i++
			}
			if !c.MoveNextChunk() || c.IsAtBack() {
				return
			}
		}
	}
}

// Backward iterates over index/item pairs from back to front.
func (v Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v.IsEmpty() {
			return
		}
		c := v.t().CursorBack()
		for {
			chunk, _ := c.Chunk()
			start := c.ChunkStart()
			for k := len(chunk.elems) - 1; k >= 0; k-- {
				if !yield(start+k, chunk.elems[k]) {
					return
				}
			}
			if start == 0 {
				return
			}
			c.MoveTo(start - 1)
		}
	}
}

// ToSlice copies the items of v into a new slice.
func (v Vec[T]) ToSlice() []T {
	out := make([]T, 0, v.Len())
	v.tree.ForEachChunk(func(chunk items[T]) bool {
		out = append(out, chunk.elems...)
		return true
	})
	return out
}

// Check validates the structure of the underlying tree.
func (v Vec[T]) Check() error {
	return v.tree.Check()
}
