package delta

import (
	"fmt"
	"iter"

	"github.com/npillmayer/rope/text"
)

// OperationRange is the region of a text touched by an insert or delete.
type OperationRange struct {
	Kind  Kind
	Range text.Range
}

func (r OperationRange) String() string {
	return fmt.Sprintf("%s%v", r.Kind, r.Range)
}

// OperationRanges iterates over the ranges of inserts and deletes of d, in
// running document coordinates: every range is given in the text as it is
// after applying the operations before it. An insert range covers the new
// text, a delete range covers the removed text at the point of removal.
func (d Delta) OperationRanges() iter.Seq[OperationRange] {
	return func(yield func(OperationRange) bool) {
		var pos text.Position
		for _, op := range d.ops {
			switch op.Kind {
			case OpRetain:
				pos = pos.Add(op.Size)
			case OpInsert:
				end := pos.Add(op.Text.Length())
				if !yield(OperationRange{Kind: OpInsert, Range: text.Range{Start: pos, End: end}}) {
					return
				}
				pos = end
			case OpDelete:
				r := text.Range{Start: pos, End: pos.Add(op.Size)}
				if !yield(OperationRange{Kind: OpDelete, Range: r}) {
					return
				}
			}
		}
	}
}
