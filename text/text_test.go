package text

import (
	"errors"
	"testing"
)

func TestSizeArithmetic(t *testing.T) {
	tests := []struct {
		a, b, sum Size
	}{
		{Size{0, 3}, Size{0, 4}, Size{0, 7}},
		{Size{0, 3}, Size{2, 1}, Size{2, 1}},
		{Size{1, 5}, Size{0, 2}, Size{1, 7}},
		{Size{1, 5}, Size{1, 0}, Size{2, 0}},
		{Size{}, Size{3, 3}, Size{3, 3}},
	}
	for _, tt := range tests {
		sum := tt.a.Add(tt.b)
		if sum != tt.sum {
			t.Errorf("%v + %v = %v, want %v", tt.a, tt.b, sum, tt.sum)
		}
		if diff := sum.Sub(tt.a); tt.a.Add(diff) != sum {
			t.Errorf("%v - %v = %v does not restore the sum", sum, tt.a, diff)
		}
	}
	if (Size{0, 9}).Compare(Size{1, 0}) >= 0 || (Size{2, 1}).Compare(Size{2, 0}) <= 0 {
		t.Errorf("sizes must order lexicographically")
	}
	if Min(Size{1, 0}, Size{0, 80}) != (Size{0, 80}) {
		t.Errorf("Min picked the larger size")
	}
}

func TestPositionArithmetic(t *testing.T) {
	p := Position{Line: 2, Column: 4}
	if got := p.Add(Size{0, 3}); got != (Position{2, 7}) {
		t.Errorf("p + same-line size = %v", got)
	}
	if got := p.Add(Size{1, 3}); got != (Position{3, 3}) {
		t.Errorf("p + multi-line size = %v", got)
	}
	q := Position{Line: 5, Column: 1}
	if got := q.Sub(p); got != (Size{3, 1}) || p.Add(got) != q {
		t.Errorf("q - p = %v", got)
	}
	r := Range{Start: p, End: q}
	if r.Length() != (Size{3, 1}) || !r.Contains(Position{4, 99}) || r.Contains(q) {
		t.Errorf("unexpected range behavior for %v", r)
	}
}

func TestTextBasics(t *testing.T) {
	txt := FromString("ab\ncd\r\n\nxyz")
	if got := txt.Length(); got != (Size{3, 3}) {
		t.Errorf("Length = %v, want +3:3", got)
	}
	if txt.String() != "ab\ncd\r\n\nxyz" || txt.ByteLen() != 11 {
		t.Errorf("round trip failed: %q", txt.String())
	}
	if lines := txt.Lines(); len(lines) != 4 || lines[1] != "cd\r" {
		t.Errorf("unexpected lines %q", lines)
	}
	var zero Text
	if !zero.IsEmpty() || zero.Length() != (Size{}) || !zero.Equal(FromString("")) {
		t.Errorf("zero text must be empty")
	}
	if !FromLines("a", "b").Equal(FromString("a\nb")) {
		t.Errorf("FromLines mismatch")
	}
}

func TestTakeSkipSlice(t *testing.T) {
	txt := FromString("hello\nworld\n!")
	if got := txt.Take(Size{1, 2}).String(); got != "hello\nwo" {
		t.Errorf("Take = %q", got)
	}
	if got := txt.Skip(Size{1, 2}).String(); got != "rld\n!" {
		t.Errorf("Skip = %q", got)
	}
	if got := txt.Skip(Size{0, 5}).String(); got != "\nworld\n!" {
		t.Errorf("Skip = %q", got)
	}
	r := Range{Start: Position{0, 3}, End: Position{1, 3}}
	if got := txt.Slice(r).String(); got != "lo\nwor" {
		t.Errorf("Slice = %q", got)
	}
	if got := txt.Take(txt.Length()); !got.Equal(txt) {
		t.Errorf("Take(Length) = %q", got.String())
	}
	if got := txt.Skip(txt.Length()); !got.IsEmpty() {
		t.Errorf("Skip(Length) = %q", got.String())
	}
}

func TestAppendJoinsLines(t *testing.T) {
	a, b := FromString("x\nab"), FromString("cd\ny")
	if got := a.Append(b).String(); got != "x\nabcd\ny" {
		t.Errorf("Append = %q", got)
	}
	if got := a.Append(b).Length(); got != a.Length().Add(b.Length()) {
		t.Errorf("Append length %v is not the sum of lengths", got)
	}
	if a.String() != "x\nab" {
		t.Errorf("Append modified its receiver")
	}
}

func TestTakeOutOfBoundsPanics(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("expected ErrOutOfBounds panic, got %v", err)
		}
	}()
	FromString("ab\nc").Take(Size{1, 2})
}

func TestConcatMatchesAppend(t *testing.T) {
	parts := []Text{FromString("a\nb"), {}, FromString("c"), FromString("\n\nd\n"), FromString("e")}
	want := Text{}
	for _, p := range parts {
		want = want.Append(p)
	}
	if got := Concat(parts...); !got.Equal(want) || got.String() != "a\nbc\n\nd\ne" {
		t.Fatalf("Concat = %q, want %q", got.String(), want.String())
	}
	if !FromString("ab\nc").Covers(Size{1, 1}) || FromString("ab\nc").Covers(Size{0, 3}) {
		t.Fatalf("unexpected Covers result")
	}
}
