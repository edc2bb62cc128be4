package btree

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New[textChunk, textSummary](Config[textSummary]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	_, err = NewBuilder[textChunk, textSummary](Config[textSummary]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig from builder, got %v", err)
	}
}

func TestCheckEmptyTree(t *testing.T) {
	tree := newTestTree(t)
	mustCheck(t, tree)
	if tree.Len() != 0 || tree.Height() != 0 || !tree.IsEmpty() {
		t.Fatalf("unexpected empty tree state len=%d height=%d", tree.Len(), tree.Height())
	}
	if s := tree.Summary(); s != (textSummary{}) {
		t.Fatalf("expected zero summary, got %+v", s)
	}
}

func TestCheckDetectsStaleSummary(t *testing.T) {
	tree := buildTree(t, sampleText, 5)
	inner := tree.root.(*innerNode[textChunk, textSummary])
	broken := tree.Clone()
	children := append([]treeNode[textChunk, textSummary](nil), inner.children...)
	broken.root = &innerNode[textChunk, textSummary]{
		summary:  textSummary{Bytes: 1},
		children: children,
	}
	if err := broken.Check(); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("expected invariant violation, got %v", err)
	}
	mustCheck(t, tree)
}

func TestBuilderBuildsBalancedTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	text := strings.Repeat(sampleText, 20)
	for _, step := range []int{1, 3, 8} {
		tree := buildTree(t, text, step)
		if got := treeString(tree); got != text {
			t.Fatalf("step %d: builder lost content", step)
		}
		if tree.Len() != len(text) {
			t.Errorf("step %d: expected len %d, got %d", step, len(text), tree.Len())
		}
		if lines := tree.Summary().Lines; lines != strings.Count(text, "\n") {
			t.Errorf("step %d: expected %d lines, got %d", step, strings.Count(text, "\n"), lines)
		}
		t.Logf("step %d: height %d", step, tree.Height())
	}
}

func TestBuilderMergesSmallChunks(t *testing.T) {
	b, _ := NewBuilder[textChunk, textSummary](testConfig())
	for _, s := range []string{"a", "b", "c", "", "d"} {
		b.PushChunk(textChunk(s))
	}
	if b.Len() != 4 {
		t.Fatalf("expected 4 pushed bytes, got %d", b.Len())
	}
	tree := b.Build()
	if tree.Height() != 1 || treeString(tree) != "abcd" {
		t.Fatalf("expected single leaf 'abcd', got height %d with %q", tree.Height(), treeString(tree))
	}
	if b.Len() != 0 {
		t.Errorf("expected builder to be reset after Build")
	}
}

func TestBuilderLenTracksPushes(t *testing.T) {
	b, _ := NewBuilder[textChunk, textSummary](testConfig())
	want := 0
	// full chunks, merges and seam balancing
	for _, s := range []string{"abcdefgh", "ab", "cdefgh", "x", "12345678", "", "yz"} {
		b.PushChunk(textChunk(s))
		want += len(s)
		if b.Len() != want {
			t.Fatalf("after pushing %q: expected %d, got %d", s, want, b.Len())
		}
	}
	if tree := b.Build(); tree.Len() != want || b.Len() != 0 {
		t.Errorf("tree has %d elements, builder reports %d after Build", tree.Len(), b.Len())
	}
	b.PushChunk(textChunk("abc"))
	if b.Len() != 3 {
		t.Errorf("expected 3 after reuse, got %d", b.Len())
	}
	b.Build()
	if tree := b.Build(); !tree.IsEmpty() || b.Len() != 0 {
		t.Errorf("building an empty builder must give an empty tree")
	}
}

func TestBuilderRejectsOversizedChunk(t *testing.T) {
	b, _ := NewBuilder[textChunk, textSummary](testConfig())
	expectPanic(t, ErrChunkOverflow, func() {
		b.PushChunk(textChunk("123456789"))
	})
}

func TestAppendJoinsDifferentHeights(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	lengths := []int{0, 1, 7, 8, 9, 50, 200, 1500}
	source := strings.Repeat("abcdefghij\n", 200)
	for _, ll := range lengths {
		for _, rl := range lengths {
			left := buildTree(t, source[:ll], 8)
			right := buildTree(t, source[:rl], 3)
			rightBefore := treeString(right)
			left.Append(right)
			mustCheck(t, left)
			if got := treeString(left); got != source[:ll]+source[:rl] {
				t.Fatalf("append %d+%d: content mismatch", ll, rl)
			}
			if treeString(right) != rightBefore {
				t.Fatalf("append %d+%d: right operand changed", ll, rl)
			}
		}
	}
}

func TestAppendMergesSeamLeaves(t *testing.T) {
	left := buildTree(t, "ab", 8)
	right := buildTree(t, "cd", 8)
	left.Append(right)
	if left.Height() != 1 || treeString(left) != "abcd" {
		t.Fatalf("expected merged single leaf, got height %d", left.Height())
	}
	left.PushChunk(textChunk("efghijk"))
	mustCheck(t, left)
	if left.Height() != 2 || treeString(left) != "abcdefghijk" {
		t.Fatalf("expected two balanced leaves, got height %d %q", left.Height(), treeString(left))
	}
}

func TestSplitOffRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	text := strings.Repeat("0123456789", 60)
	tree := buildTree(t, text, 8)
	for at := 0; at <= len(text); at += 7 {
		left := tree.Clone()
		right := left.SplitOff(at)
		mustCheck(t, left)
		mustCheck(t, right)
		if treeString(left) != text[:at] || treeString(right) != text[at:] {
			t.Fatalf("split at %d: content mismatch", at)
		}
		left.Append(right)
		mustCheck(t, left)
		if treeString(left) != text {
			t.Fatalf("split at %d: rejoin mismatch", at)
		}
	}
	if treeString(tree) != text {
		t.Fatalf("original changed by splitting clones")
	}
}

func TestSplitOffSnapsToBoundary(t *testing.T) {
	tree := buildTree(t, "aäb", 8) // 'ä' occupies bytes 1..2
	right := tree.SplitOff(2)
	if treeString(tree) != "a" || treeString(right) != "äb" {
		t.Fatalf("expected split snapped to 1, got %q | %q", treeString(tree), treeString(right))
	}
}

func TestSplitOffOutOfBoundsPanics(t *testing.T) {
	tree := buildTree(t, "hello", 8)
	expectPanic(t, ErrIndexOutOfBounds, func() { tree.SplitOff(6) })
	expectPanic(t, ErrIndexOutOfBounds, func() { tree.SplitOff(-1) })
	expectPanic(t, ErrIndexOutOfBounds, func() { tree.ReplaceRange(3, 2, nil) })
	expectPanic(t, ErrIndexOutOfBounds, func() { tree.Slice(0, 9) })
}

func TestTruncate(t *testing.T) {
	text := strings.Repeat("xyz", 100)
	tree := buildTree(t, text, 8)
	tree.TruncateFront(10)
	mustCheck(t, tree)
	tree.TruncateBack(tree.Len() - 10)
	mustCheck(t, tree)
	if treeString(tree) != text[10:len(text)-10] {
		t.Fatalf("truncation mismatch")
	}
	tree.TruncateBack(0)
	mustCheck(t, tree)
	if !tree.IsEmpty() {
		t.Fatalf("expected empty tree")
	}
}

func TestReplaceRange(t *testing.T) {
	text := strings.Repeat("abcdefgh", 40)
	tree := buildTree(t, text, 8)
	repl := buildTree(t, "XYZ", 8)
	tree.ReplaceRange(100, 200, repl)
	mustCheck(t, tree)
	if want := text[:100] + "XYZ" + text[200:]; treeString(tree) != want {
		t.Fatalf("replace mismatch")
	}
	tree.ReplaceRange(0, tree.Len(), nil)
	if !tree.IsEmpty() {
		t.Fatalf("expected empty tree after replacing everything with nil")
	}
}

func TestCloneIsolation(t *testing.T) {
	text := strings.Repeat(sampleText, 5)
	tree := buildTree(t, text, 8)
	clone := tree.Clone()
	tree.ReplaceRange(3, 40, buildTree(t, "--", 8))
	tree.Append(buildTree(t, "tail", 8))
	if treeString(clone) != text {
		t.Fatalf("clone observed mutation of original")
	}
	mustCheck(t, clone)
	mustCheck(t, tree)
}

func TestSliceSummaryAndToTree(t *testing.T) {
	text := strings.Repeat("ab\ncd\n", 50)
	tree := buildTree(t, text, 8)
	s := tree.Slice(5, 125)
	if s.Len() != 120 || s.Start() != 5 || s.End() != 125 {
		t.Fatalf("unexpected slice bounds [%d,%d)", s.Start(), s.End())
	}
	if got, want := s.Summary().Lines, strings.Count(text[5:125], "\n"); got != want {
		t.Errorf("expected %d lines in slice, got %d", want, got)
	}
	tree.TruncateBack(0)
	sub := s.Slice(10, 20).ToTree()
	mustCheck(t, sub)
	if treeString(sub) != text[10:20] {
		t.Fatalf("sub-slice materialized as %q, expected %q", treeString(sub), text[10:20])
	}
	if full := s.ToTree(); treeString(full) != text[5:125] {
		t.Fatalf("slice did not survive truncation of its source tree")
	}
}

func TestWalkVisitsAllLeaves(t *testing.T) {
	tree := buildTree(t, sampleText, 8)
	leaves, bytes, maxDepth := 0, 0, 0
	tree.Walk(func(n NodeInfo[textChunk, textSummary]) bool {
		if n.Leaf {
			leaves++
			bytes += n.Chunk.Len()
			maxDepth = max(maxDepth, n.Depth)
		} else if n.Children < 2 {
			t.Errorf("inner node with %d children", n.Children)
		}
		return true
	})
	if bytes != len(sampleText) || maxDepth != tree.Height()-1 || leaves == 0 {
		t.Fatalf("walk saw %d leaves, %d bytes, depth %d", leaves, bytes, maxDepth)
	}
}

func TestRandomEditsKeepInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	rng := rand.New(rand.NewSource(4711))
	alphabet := []string{"a", "b", "\n", "ä", "€", "😀", "xyz"}
	randomText := func(n int) string {
		var sb strings.Builder
		for range n {
			sb.WriteString(alphabet[rng.Intn(len(alphabet))])
		}
		return sb.String()
	}
	model := randomText(300)
	tree := buildTree(t, model, 5)
	snap := func(s string, i int) int {
		for i > 0 && i < len(s) && (s[i]&0xC0) == 0x80 {
			i--
		}
		return i
	}
	for round := range 400 {
		switch rng.Intn(3) {
		case 0:
			at := rng.Intn(len(model) + 1)
			ins := randomText(rng.Intn(40))
			tree.ReplaceRange(at, at, buildTree(t, ins, 1+rng.Intn(8)))
			at = snap(model, at)
			model = model[:at] + ins + model[at:]
		case 1:
			start := rng.Intn(len(model) + 1)
			end := start + rng.Intn(len(model)-start+1)
			tree.ReplaceRange(start, end, nil)
			start, end = snap(model, start), snap(model, end)
			model = model[:start] + model[end:]
		default:
			at := rng.Intn(len(model) + 1)
			right := tree.SplitOff(at)
			mustCheck(t, right)
			tree.Append(right)
		}
		mustCheck(t, tree)
		if treeString(tree) != model {
			t.Fatalf("round %d: content diverged from model", round)
		}
		if len(model) < 50 {
			extra := randomText(200)
			tree.Append(buildTree(t, extra, 8))
			model += extra
		}
	}
}
