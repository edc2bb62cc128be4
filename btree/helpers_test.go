package btree

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

// textChunk is a tiny UTF-8 chunk type, small enough to produce deep trees
// from short test strings.
type textChunk string

const testMaxLen = 8

type textSummary struct {
	Bytes int
	Lines int
}

func (c textChunk) Summary() textSummary {
	return textSummary{Bytes: len(c), Lines: strings.Count(string(c), "\n")}
}

func (c textChunk) Len() int    { return len(c) }
func (c textChunk) MaxLen() int { return testMaxLen }

func (c textChunk) IsBoundary(i int) bool {
	return i == 0 || i == len(c) || (i > 0 && i < len(c) && utf8.RuneStart(c[i]))
}

func (c textChunk) ShiftLeft(right textChunk, end int) (textChunk, textChunk) {
	return c + right[:end], right[end:]
}

func (c textChunk) ShiftRight(right textChunk, start int) (textChunk, textChunk) {
	return c[:start], c[start:] + right
}

func (c textChunk) TruncateFront(start int) textChunk { return c[start:] }
func (c textChunk) TruncateBack(end int) textChunk    { return c[:end] }

type textInfo struct{}

func (textInfo) Zero() textSummary { return textSummary{} }

func (textInfo) Add(left, right textSummary) textSummary {
	return textSummary{Bytes: left.Bytes + right.Bytes, Lines: left.Lines + right.Lines}
}

func (textInfo) Sub(left, right textSummary) textSummary {
	return textSummary{Bytes: left.Bytes - right.Bytes, Lines: left.Lines - right.Lines}
}

func (textInfo) Len(s textSummary) int { return s.Bytes }

type testTree = Tree[textChunk, textSummary]

func testConfig() Config[textSummary] {
	return Config[textSummary]{Info: textInfo{}}
}

func newTestTree(t *testing.T) *testTree {
	t.Helper()
	tree, err := New[textChunk, textSummary](testConfig())
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	return tree
}

// buildTree builds a tree from s, pushing pieces of at most step bytes cut at
// rune boundaries.
func buildTree(t *testing.T, s string, step int) *testTree {
	t.Helper()
	b, err := NewBuilder[textChunk, textSummary](testConfig())
	if err != nil {
		t.Fatalf("unexpected NewBuilder error: %v", err)
	}
	for len(s) > 0 {
		n := min(step, len(s))
		for n < len(s) && !utf8.RuneStart(s[n]) {
			n--
		}
		if n == 0 {
			_, n = utf8.DecodeRuneInString(s)
		}
		b.PushChunk(textChunk(s[:n]))
		s = s[n:]
	}
	tree := b.Build()
	mustCheck(t, tree)
	return tree
}

func treeString(tree *testTree) string {
	var sb strings.Builder
	tree.ForEachChunk(func(c textChunk) bool {
		sb.WriteString(string(c))
		return true
	})
	return sb.String()
}

func mustCheck(t *testing.T, tree *testTree) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invariants violated: %v", err)
	}
}

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v, got none", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic wrapping %v, got %v", target, r)
		}
	}()
	fn()
}

const sampleText = "Lorem ipsum dolor sit amet,\nconsectetur adipiscing elit,\n" +
	"sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.\n" +
	"Grüße aus Köln, ½ ✓ 😀 und ein paar Zeichen mehr.\n"
