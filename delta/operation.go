package delta

import (
	"fmt"

	"github.com/npillmayer/rope/text"
)

// Kind tells the kind of an operation.
type Kind uint8

const (
	OpRetain Kind = iota
	OpInsert
	OpDelete
)

func (k Kind) String() string {
	switch k {
	case OpRetain:
		return "retain"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Operation is a single step of a delta. Retain and Delete operations carry a
// Size, Insert operations carry a Text.
type Operation struct {
	Kind Kind
	Size text.Size
	Text text.Text
}

// Retain creates a retain operation.
func Retain(s text.Size) Operation {
	return Operation{Kind: OpRetain, Size: s}
}

// Insert creates an insert operation.
func Insert(t text.Text) Operation {
	return Operation{Kind: OpInsert, Text: t}
}

// Delete creates a delete operation.
func Delete(s text.Size) Operation {
	return Operation{Kind: OpDelete, Size: s}
}

// Len returns the size spanned by the operation: the inserted text for
// inserts, the retained or deleted size otherwise.
func (op Operation) Len() text.Size {
	if op.Kind == OpInsert {
		return op.Text.Length()
	}
	return op.Size
}

func (op Operation) String() string {
	if op.Kind == OpInsert {
		return fmt.Sprintf("insert(%q)", op.Text.String())
	}
	return fmt.Sprintf("%s(%d,%d)", op.Kind, op.Size.Line, op.Size.Column)
}

// split cuts op after span, which must not exceed op.Len(). The remainder is
// empty if span covers all of op.
func (op Operation) split(span text.Size) (head, rest Operation) {
	if op.Kind == OpInsert {
		if !op.Text.Covers(span) {
			panic(fmt.Errorf("%w: %v cuts through inserted text %v", ErrIncompatibleDeltas, span, op.Text.Length()))
		}
		return Insert(op.Text.Take(span)), Insert(op.Text.Skip(span))
	}
	return Operation{Kind: op.Kind, Size: span}, Operation{Kind: op.Kind, Size: op.Size.Sub(span)}
}

// isEmpty reports whether op spans nothing.
func (op Operation) isEmpty() bool {
	if op.Kind == OpInsert {
		return op.Text.IsEmpty()
	}
	return op.Size.IsZero()
}

// stream iterates over the operations of a delta, handing out the remainder
// of a partially consumed operation first.
type stream struct {
	ops []Operation
	i   int
}

func (s *stream) next() (Operation, bool) {
	if s.i >= len(s.ops) {
		return Operation{}, false
	}
	s.i++
	return s.ops[s.i-1], true
}

// resume returns rest if it still spans something, the next operation
// otherwise.
func (s *stream) resume(rest Operation) (Operation, bool) {
	if !rest.isEmpty() {
		return rest, true
	}
	return s.next()
}
