package delta

import "github.com/npillmayer/rope/text"

// Builder records operations and keeps them in normal form.
//
// The zero value is ready to use.
type Builder struct {
	ops []Operation
}

// Retain appends a retain of size s, merging it with a preceding retain.
func (b *Builder) Retain(s text.Size) {
	if s.IsZero() {
		return
	}
	if n := len(b.ops); n > 0 && b.ops[n-1].Kind == OpRetain {
		b.ops[n-1].Size = b.ops[n-1].Size.Add(s)
		return
	}
	b.ops = append(b.ops, Retain(s))
}

// Insert appends an insert of t, merging it with a preceding insert.
func (b *Builder) Insert(t text.Text) {
	if t.IsEmpty() {
		return
	}
	if n := len(b.ops); n > 0 && b.ops[n-1].Kind == OpInsert {
		b.ops[n-1].Text = b.ops[n-1].Text.Append(t)
		return
	}
	b.ops = append(b.ops, Insert(t))
}

// Delete appends a delete of size s. Deletes are merged with a preceding
// delete, also across a trailing insert, and are moved in front of a
// trailing insert, so that a delete never follows an insert.
func (b *Builder) Delete(s text.Size) {
	if s.IsZero() {
		return
	}
	n := len(b.ops)
	switch {
	case n > 0 && b.ops[n-1].Kind == OpDelete:
		b.ops[n-1].Size = b.ops[n-1].Size.Add(s)
	case n > 1 && b.ops[n-1].Kind == OpInsert && b.ops[n-2].Kind == OpDelete:
		b.ops[n-2].Size = b.ops[n-2].Size.Add(s)
	case n > 0 && b.ops[n-1].Kind == OpInsert:
		ins := b.ops[n-1]
		b.ops[n-1] = Delete(s)
		b.ops = append(b.ops, ins)
	default:
		b.ops = append(b.ops, Delete(s))
	}
}

// Push appends op with the normalization of Retain, Insert or Delete.
func (b *Builder) Push(op Operation) {
	switch op.Kind {
	case OpRetain:
		b.Retain(op.Size)
	case OpInsert:
		b.Insert(op.Text)
	case OpDelete:
		b.Delete(op.Size)
	}
}

// Build returns the delta recorded so far, without a trailing retain, and
// resets the builder.
func (b *Builder) Build() Delta {
	ops := b.ops
	b.ops = nil
	if n := len(ops); n > 0 && ops[n-1].Kind == OpRetain {
		ops = ops[:n-1]
	}
	return Delta{ops: ops}
}
