package btree

import (
	"strings"
	"testing"
)

func clippedChunk(c *Cursor[textChunk, textSummary]) string {
	chunk, ok := c.Chunk()
	if !ok {
		return ""
	}
	from, to := c.ChunkBounds()
	return string(chunk[from:to])
}

func TestCursorOnEmptyTree(t *testing.T) {
	tree := newTestTree(t)
	c := tree.CursorFront()
	if !c.IsAtFront() || !c.IsAtBack() {
		t.Fatalf("cursor on empty tree should be at front and back")
	}
	if _, ok := c.Chunk(); ok {
		t.Fatalf("expected no chunk on empty tree")
	}
	if c.MoveNextChunk() || c.MovePrevChunk() {
		t.Fatalf("cursor on empty tree must not move")
	}
}

func TestCursorChunkIteration(t *testing.T) {
	text := strings.Repeat(sampleText, 4)
	tree := buildTree(t, text, 5)
	bounds := [][2]int{{0, len(text)}, {3, 97}, {17, 17}, {40, 41}, {0, 1}, {len(text) - 1, len(text)}}
	for _, b := range bounds {
		s := tree.Slice(b[0], b[1])
		var fwd strings.Builder
		for c := s.CursorFront(); !c.IsAtBack(); c.MoveNextChunk() {
			fwd.WriteString(clippedChunk(c))
		}
		if fwd.String() != text[b[0]:b[1]] {
			t.Errorf("forward iteration over [%d,%d) yields %q", b[0], b[1], fwd.String())
		}
		var parts []string
		for c := s.CursorBack(); c.MovePrevChunk(); {
			parts = append(parts, clippedChunk(c))
		}
		var bwd strings.Builder
		for i := len(parts) - 1; i >= 0; i-- {
			bwd.WriteString(parts[i])
		}
		if bwd.String() != text[b[0]:b[1]] {
			t.Errorf("backward iteration over [%d,%d) yields %q", b[0], b[1], bwd.String())
		}
	}
}

func TestCursorMoveToTracksChunkAndPrefix(t *testing.T) {
	text := strings.Repeat("line\n", 100)
	tree := buildTree(t, text, 8)
	c := tree.CursorFront()
	check := func(pos int) {
		t.Helper()
		if c.Position() != pos {
			t.Fatalf("expected position %d, got %d", pos, c.Position())
		}
		chunk, _ := c.Chunk()
		start := c.ChunkStart()
		if text[start:start+chunk.Len()] != string(chunk) {
			t.Fatalf("pos %d: chunk %q does not match text at %d", pos, chunk, start)
		}
		if pos < len(text) && (pos < start || pos >= start+chunk.Len()) {
			t.Fatalf("pos %d: not within current chunk [%d,%d)", pos, start, start+chunk.Len())
		}
		if c.Offset() != pos-start {
			t.Fatalf("pos %d: offset %d inconsistent with chunk start %d", pos, c.Offset(), start)
		}
		if lines := c.Prefix().Lines; lines != strings.Count(text[:start], "\n") {
			t.Fatalf("pos %d: prefix has %d lines, expected %d", pos, lines, strings.Count(text[:start], "\n"))
		}
	}
	for pos := 0; pos <= len(text); pos++ {
		c.MoveTo(pos)
		check(pos)
	}
	for pos := len(text); pos > 0; pos-- {
		c.MoveBy(-1)
		check(pos - 1)
	}
	for _, pos := range []int{250, 3, 499, 500, 0, 128} {
		c.MoveTo(pos)
		check(pos)
	}
	expectPanic(t, ErrIndexOutOfBounds, func() { c.MoveTo(len(text) + 1) })
}

func TestCursorWhereSeeksLines(t *testing.T) {
	text := strings.Repeat("ab\n", 60)
	tree := buildTree(t, text, 8)
	for k := 1; k <= 60; k++ {
		c := tree.CursorWhere(func(s textSummary) bool { return s.Lines >= k })
		chunk, _ := c.Chunk()
		before := c.Prefix().Lines
		within := strings.Count(string(chunk), "\n")
		if before >= k || before+within < k {
			t.Fatalf("line %d: chunk at %d holds lines (%d,%d]", k, c.ChunkStart(), before, before+within)
		}
	}
	c := tree.CursorWhere(func(s textSummary) bool { return s.Lines > 1000 })
	chunk, _ := c.Chunk()
	if c.ChunkStart()+chunk.Len() != len(text) {
		t.Fatalf("unsatisfiable predicate should land on the last chunk")
	}
}

func TestCursorWhereClipsToSlice(t *testing.T) {
	text := strings.Repeat("ab\n", 60)
	tree := buildTree(t, text, 8)
	s := tree.Slice(50, 90)
	c := s.CursorWhere(func(s textSummary) bool { return s.Lines >= 1 })
	if c.Position() != 50 {
		t.Fatalf("expected cursor clipped to slice start 50, got %d", c.Position())
	}
	c = s.CursorWhere(func(s textSummary) bool { return s.Lines >= 59 })
	if c.Position() != 90 || !c.IsAtBack() {
		t.Fatalf("expected cursor clipped to slice end 90, got %d", c.Position())
	}
}
