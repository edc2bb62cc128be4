package delta

import (
	"iter"
	"slices"
	"strings"

	"github.com/npillmayer/rope/text"
)

// Delta is a normalized sequence of operations. The zero value is the
// identity delta. Deltas are immutable; create them with a Builder.
type Delta struct {
	ops []Operation
}

// Ops returns a copy of the operations of d.
func (d Delta) Ops() []Operation {
	return slices.Clone(d.ops)
}

// All iterates over the operations of d.
func (d Delta) All() iter.Seq[Operation] {
	return func(yield func(Operation) bool) {
		for _, op := range d.ops {
			if !yield(op) {
				return
			}
		}
	}
}

// Len returns the number of operations of d.
func (d Delta) Len() int {
	return len(d.ops)
}

// IsIdentity reports whether d leaves every text unchanged.
func (d Delta) IsIdentity() bool {
	return len(d.ops) == 0
}

// BaseLen returns the size of source text d reaches into, i.e. the sum of its
// retain and delete spans.
func (d Delta) BaseLen() text.Size {
	var n text.Size
	for _, op := range d.ops {
		if op.Kind != OpInsert {
			n = n.Add(op.Size)
		}
	}
	return n
}

// TargetLen returns the size of the result of d up to its last operation,
// i.e. the sum of its retain and insert spans.
func (d Delta) TargetLen() text.Size {
	var n text.Size
	for _, op := range d.ops {
		if op.Kind != OpDelete {
			n = n.Add(op.Len())
		}
	}
	return n
}

// Equal reports whether d and o consist of the same operations.
func (d Delta) Equal(o Delta) bool {
	return slices.EqualFunc(d.ops, o.ops, func(a, b Operation) bool {
		return a.Kind == b.Kind && a.Size == b.Size && a.Text.Equal(b.Text)
	})
}

func (d Delta) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, op := range d.ops {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(op.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Invert returns the delta undoing d. source is the text d applies to; the
// deleted parts are copied from it.
func (d Delta) Invert(source text.Text) Delta {
	var b Builder
	var pos text.Position
	for _, op := range d.ops {
		switch op.Kind {
		case OpRetain:
			b.Retain(op.Size)
			pos = pos.Add(op.Size)
		case OpInsert:
			b.Delete(op.Text.Length())
		case OpDelete:
			end := pos.Add(op.Size)
			b.Insert(source.Slice(text.Range{Start: pos, End: end}))
			pos = end
		}
	}
	return b.Build()
}
