package text

import (
	"cmp"
	"fmt"
)

// Position addresses a location in a text by 0-based line and byte column.
type Position struct {
	Line   int
	Column int
}

// Size is the distance between two positions.
type Size struct {
	Line   int
	Column int
}

// Range is the half-open span [Start,End) between two positions.
type Range struct {
	Start Position
	End   Position
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }
func (s Size) String() string     { return fmt.Sprintf("+%d:%d", s.Line, s.Column) }
func (r Range) String() string    { return fmt.Sprintf("[%v,%v)", r.Start, r.End) }

// Add returns the position s further along from p.
func (p Position) Add(s Size) Position {
	if s.Line == 0 {
		return Position{Line: p.Line, Column: p.Column + s.Column}
	}
	return Position{Line: p.Line + s.Line, Column: s.Column}
}

// Sub returns the size from q to p. q must not come after p.
func (p Position) Sub(q Position) Size {
	if p.Line == q.Line {
		return Size{Column: p.Column - q.Column}
	}
	return Size{Line: p.Line - q.Line, Column: p.Column}
}

// Compare orders positions by line, then column.
func (p Position) Compare(q Position) int {
	if c := cmp.Compare(p.Line, q.Line); c != 0 {
		return c
	}
	return cmp.Compare(p.Column, q.Column)
}

// Size returns the distance of p from the start of the text.
func (p Position) Size() Size {
	return Size{Line: p.Line, Column: p.Column}
}

// IsZero reports whether s spans nothing.
func (s Size) IsZero() bool {
	return s == Size{}
}

// Add concatenates two sizes. Addition is associative but not commutative.
func (s Size) Add(o Size) Size {
	if o.Line == 0 {
		return Size{Line: s.Line, Column: s.Column + o.Column}
	}
	return Size{Line: s.Line + o.Line, Column: o.Column}
}

// Sub removes the prefix o from s, so that o.Add(s.Sub(o)) == s.
// o must not be larger than s.
func (s Size) Sub(o Size) Size {
	if s.Line == o.Line {
		return Size{Column: s.Column - o.Column}
	}
	return Size{Line: s.Line - o.Line, Column: s.Column}
}

// Compare orders sizes by line, then column.
func (s Size) Compare(o Size) int {
	if c := cmp.Compare(s.Line, o.Line); c != 0 {
		return c
	}
	return cmp.Compare(s.Column, o.Column)
}

// Min returns the smaller of two sizes.
func Min(a, b Size) Size {
	if a.Compare(b) <= 0 {
		return a
	}
	return b
}

// Length returns the distance from r.Start to r.End.
func (r Range) Length() Size {
	return r.End.Sub(r.Start)
}

// IsEmpty reports whether r spans nothing.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether p lies within [Start,End).
func (r Range) Contains(p Position) bool {
	return r.Start.Compare(p) <= 0 && p.Compare(r.End) < 0
}
