package chunk

import "testing"

func TestSummaryCounts(t *testing.T) {
	tests := []struct {
		in   string
		want Summary
	}{
		{"", Summary{}},
		{"a\n😀b", Summary{Bytes: 7, Chars: 4, Lines: 1}},
		{"x\r\ny", Summary{Bytes: 4, Chars: 4, Lines: 1}}, // "\r\n" is one break
		{"\r\r", Summary{Bytes: 2, Chars: 2}},            // '\r' alone is no break
		{"\n\n\n", Summary{Bytes: 3, Chars: 3, Lines: 3}},
		{"日本", Summary{Bytes: 6, Chars: 2}},
	}
	for _, tt := range tests {
		if s := mustNew(t, tt.in).Summary(); s != tt.want {
			t.Errorf("%q: expected %+v, have %+v", tt.in, tt.want, s)
		}
	}
}

func TestSliceSummaryMatchesChunk(t *testing.T) {
	c := mustNew(t, "a\r\n😀b\n")
	for _, r := range [][2]int{{0, 3}, {1, 3}, {3, 7}, {3, 9}, {0, 9}} {
		sl, err := c.Slice(r[0], r[1])
		if err != nil {
			t.Fatalf("Slice(%d,%d): %v", r[0], r[1], err)
		}
		want := mustNew(t, sl.String()).Summary()
		if sl.Summary() != want {
			t.Errorf("Slice(%d,%d) %q: expected %+v, have %+v", r[0], r[1], sl.String(), want, sl.Summary())
		}
	}
}

func TestSummaryMonoidLaws(t *testing.T) {
	m := Monoid{}
	a := mustNew(t, "Grüße\r\n").Summary()
	b := mustNew(t, "日本語\n😀").Summary()
	ab := mustNew(t, "Grüße\r\n日本語\n😀").Summary()
	if m.Add(a, b) != ab || m.Add(m.Zero(), a) != a || m.Add(a, m.Zero()) != a {
		t.Fatalf("Add is not consistent with concatenation: %+v", m.Add(a, b))
	}
	if m.Sub(ab, a) != b || m.Sub(ab, b) != a {
		t.Errorf("Sub does not remove a prefix or suffix")
	}
	if m.Len(ab) != len("Grüße\r\n日本語\n😀") {
		t.Errorf("Len projects %d, want the byte count", m.Len(ab))
	}
}
