package delta

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/rope"
	"github.com/npillmayer/rope/text"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestApplyToRopeMatchesApply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(815))
	for i := range 200 {
		s := randomString(rnd, rnd.Intn(300))
		src := text.FromString(s)
		d := randomDelta(rnd, src)
		want := mustApply(t, d, src)
		r := rope.FromString(s)
		got, err := d.ApplyToRope(r)
		if err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if got.String() != want.String() {
			t.Fatalf("#%d: rope result %q, text result %q", i, got.String(), want.String())
		}
		if err := got.Check(); err != nil {
			t.Fatalf("#%d: %v", i, err)
		}
		if r.String() != s {
			t.Fatalf("#%d: source rope was modified", i)
		}
	}
}

func TestApplyToRopeMultiByte(t *testing.T) {
	r := rope.FromString(strings.Repeat("Grüße\n", 20) + "日本語")
	var b Builder
	b.Retain(text.Size{Line: 3, Column: 4}) // "Grü"
	b.Delete(text.Size{Line: 0, Column: 2}) // "ß"
	b.Insert(text.FromString("ss"))
	b.Retain(text.Size{Line: 17, Column: 3}) // "日"
	b.Insert(text.FromString("!"))
	d := b.Build()
	got, err := d.ApplyToRope(r)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Repeat("Grüße\n", 3) + "Grüsse\n" + strings.Repeat("Grüße\n", 16) + "日!本語"
	if got.String() != want {
		t.Errorf("expected %q, have %q", want, got.String())
	}
	wantText, err := d.Apply(text.FromString(r.String()))
	if err != nil || wantText.String() != want {
		t.Errorf("Apply and ApplyToRope disagree: %q, err=%v", wantText.String(), err)
	}
	b.Retain(text.Size{Line: 21})
	b.Delete(text.Size{Column: 1})
	if _, err := b.Build().ApplyToRope(r); !errors.Is(err, ErrIncompatibleDeltas) {
		t.Errorf("expected ErrIncompatibleDeltas, have %v", err)
	}
}

func TestApplyToRopeInsideCharacter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	r := rope.FromString("Grüße")
	tests := []struct {
		name string
		ops  []Operation
	}{
		{"retain into ü", []Operation{Retain(text.Size{Column: 3}), Delete(text.Size{Column: 1})}},
		{"delete into ß", []Operation{Retain(text.Size{Column: 4}), Delete(text.Size{Column: 1}), Insert(text.FromString("x"))}},
		{"delete from inside", []Operation{Delete(text.Size{Column: 3})}},
	}
	for _, tt := range tests {
		var b Builder
		for _, op := range tt.ops {
			b.Push(op)
		}
		got, err := b.Build().ApplyToRope(r)
		if !errors.Is(err, ErrIncompatibleDeltas) {
			t.Errorf("%s: expected ErrIncompatibleDeltas, have %q, err=%v", tt.name, got.String(), err)
		}
	}
	if r.String() != "Grüße" {
		t.Errorf("source rope was modified")
	}
}
