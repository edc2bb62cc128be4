package delta

import (
	"fmt"

	"github.com/npillmayer/rope"
	"github.com/npillmayer/rope/text"
)

// Apply returns the result of applying d to t. It returns an error wrapping
// ErrIncompatibleDeltas if d reaches beyond the end of t.
func (d Delta) Apply(t text.Text) (text.Text, error) {
	parts := make([]text.Text, 0, len(d.ops)+1)
	rest := t
	for i, op := range d.ops {
		switch op.Kind {
		case OpInsert:
			parts = append(parts, op.Text)
			continue
		case OpRetain, OpDelete:
			if !rest.Covers(op.Size) {
				tracer().Debugf("delta: operation #%d %v exceeds remaining text %v", i, op, rest.Length())
				return text.Text{}, fmt.Errorf("%w: operation #%d %v exceeds text of size %v",
					ErrIncompatibleDeltas, i, op, t.Length())
			}
		}
		if op.Kind == OpRetain {
			parts = append(parts, rest.Take(op.Size))
		}
		rest = rest.Skip(op.Size)
	}
	parts = append(parts, rest)
	return text.Concat(parts...), nil
}

// ApplyToRope returns the result of applying d to r. r is left unchanged.
// It returns an error wrapping ErrIncompatibleDeltas if d reaches beyond the
// end of r, or if a retained or deleted span ends inside a UTF-8 character.
func (d Delta) ApplyToRope(r rope.Rope) (rope.Rope, error) {
	var out rope.Rope
	var pos text.Position
	from := 0
	for i, op := range d.ops {
		if op.Kind == OpInsert {
			out.Append(rope.FromString(op.Text.String()))
			continue
		}
		end := pos.Add(op.Size)
		to, err := r.PositionToByte(end)
		if err != nil {
			tracer().Debugf("delta: operation #%d %v does not fit rope: %v", i, op, err)
			return rope.Rope{}, fmt.Errorf("%w: operation #%d %v: %v", ErrIncompatibleDeltas, i, op, err)
		}
		if !r.IsCharBoundary(to) {
			tracer().Debugf("delta: operation #%d %v ends inside a character at byte %d", i, op, to)
			return rope.Rope{}, fmt.Errorf("%w: operation #%d %v ends inside a character at byte %d",
				ErrIncompatibleDeltas, i, op, to)
		}
		if op.Kind == OpRetain {
			out.Append(r.Slice(from, to).ToRope())
		}
		pos, from = end, to
	}
	out.Append(r.Slice(from, r.ByteLen()).ToRope())
	return out, nil
}
