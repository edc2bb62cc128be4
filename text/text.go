package text

import (
	"fmt"
	"slices"
	"strings"
)

// Text is an immutable sequence of lines. A text always has at least one,
// possibly empty, line; the zero value is the empty text.
type Text struct {
	lines []string
}

// FromString splits s at '\n' into lines.
func FromString(s string) Text {
	return Text{lines: strings.Split(s, "\n")}
}

// FromLines creates a text from lines, which must not contain '\n'. An empty
// list yields the empty text.
func FromLines(lines ...string) Text {
	if len(lines) == 0 {
		return Text{}
	}
	return Text{lines: slices.Clone(lines)}
}

func (t Text) all() []string {
	if len(t.lines) == 0 {
		return []string{""}
	}
	return t.lines
}

// String joins the lines with '\n'.
func (t Text) String() string {
	return strings.Join(t.all(), "\n")
}

// Lines returns a copy of the lines of t.
func (t Text) Lines() []string {
	return slices.Clone(t.all())
}

// Length returns the size spanned by t.
func (t Text) Length() Size {
	lines := t.all()
	return Size{Line: len(lines) - 1, Column: len(lines[len(lines)-1])}
}

// ByteLen returns the length of String().
func (t Text) ByteLen() int {
	lines := t.all()
	n := len(lines) - 1
	for _, l := range lines {
		n += len(l)
	}
	return n
}

// IsEmpty reports whether t holds no characters.
func (t Text) IsEmpty() bool {
	lines := t.all()
	return len(lines) == 1 && lines[0] == ""
}

// Equal reports whether t and o hold the same lines.
func (t Text) Equal(o Text) bool {
	return slices.Equal(t.all(), o.all())
}

// Take returns the prefix of t spanning s.
func (t Text) Take(s Size) Text {
	lines := t.checked(s)
	out := make([]string, s.Line+1)
	copy(out, lines[:s.Line])
	out[s.Line] = lines[s.Line][:s.Column]
	return Text{lines: out}
}

// Skip returns t without the prefix spanning s.
func (t Text) Skip(s Size) Text {
	lines := t.checked(s)
	out := make([]string, 0, len(lines)-s.Line)
	out = append(out, lines[s.Line][s.Column:])
	out = append(out, lines[s.Line+1:]...)
	return Text{lines: out}
}

// Slice returns the part of t within r.
func (t Text) Slice(r Range) Text {
	return t.Skip(r.Start.Size()).Take(r.Length())
}

// Append returns t followed by o. The last line of t and the first line of o
// are joined.
func (t Text) Append(o Text) Text {
	a, b := t.all(), o.all()
	out := make([]string, 0, len(a)+len(b)-1)
	out = append(out, a[:len(a)-1]...)
	out = append(out, a[len(a)-1]+b[0])
	out = append(out, b[1:]...)
	return Text{lines: out}
}

// Covers reports whether s lies within t, i.e. whether t.Take(s) is valid.
func (t Text) Covers(s Size) bool {
	lines := t.all()
	return s.Line >= 0 && s.Column >= 0 && s.Line < len(lines) && s.Column <= len(lines[s.Line])
}

// Concat joins texts like repeated Append, in time linear in the number of
// lines.
func Concat(parts ...Text) Text {
	out := []string{""}
	for _, p := range parts {
		lines := p.all()
		out[len(out)-1] += lines[0]
		out = append(out, lines[1:]...)
	}
	return Text{lines: out}
}

// checked returns the lines of t, panicking if s exceeds t.
func (t Text) checked(s Size) []string {
	lines := t.all()
	if !t.Covers(s) {
		panic(fmt.Errorf("%w: %v exceeds %v", ErrOutOfBounds, s, t.Length()))
	}
	return lines
}
