package rope

import (
	"iter"
	"unicode/utf8"
)

// Chunks iterates over the text fragments of s from front to back. The
// fragments are never empty and never cut a character.
func (s Slice) Chunks() iter.Seq[string] {
	return func(yield func(string) bool) {
		c := s.s.CursorFront()
		if c.IsAtBack() {
			return
		}
		for {
			ch, _ := c.Chunk()
			from, to := c.ChunkBounds()
			if !yield(ch.Text(from, to)) {
				return
			}
			if !c.MoveNextChunk() || c.IsAtBack() {
				return
			}
		}
	}
}

// ChunksRev iterates over the text fragments of s from back to front. It
// yields exactly the fragments of Chunks, in reverse order.
func (s Slice) ChunksRev() iter.Seq[string] {
	return func(yield func(string) bool) {
		c := s.s.CursorBack()
		for c.MovePrevChunk() {
			ch, _ := c.Chunk()
			from, to := c.ChunkBounds()
			if !yield(ch.Text(from, to)) {
				return
			}
		}
	}
}

// Bytes iterates over the bytes of s.
func (s Slice) Bytes() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for frag := range s.Chunks() {
			for i := 0; i < len(frag); i++ {
				if !yield(frag[i]) {
					return
				}
			}
		}
	}
}

// BytesRev iterates over the bytes of s from back to front.
func (s Slice) BytesRev() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for frag := range s.ChunksRev() {
			for i := len(frag) - 1; i >= 0; i-- {
				if !yield(frag[i]) {
					return
				}
			}
		}
	}
}

// Chars iterates over the characters of s.
func (s Slice) Chars() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for frag := range s.Chunks() {
			for _, r := range frag {
				if !yield(r) {
					return
				}
			}
		}
	}
}

// CharsRev iterates over the characters of s from back to front.
func (s Slice) CharsRev() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for frag := range s.ChunksRev() {
			for len(frag) > 0 {
				r, n := utf8.DecodeLastRuneInString(frag)
				if !yield(r) {
					return
				}
				frag = frag[:len(frag)-n]
			}
		}
	}
}

// Chunks iterates over the text fragments of r.
func (r Rope) Chunks() iter.Seq[string] { return r.Full().Chunks() }

// ChunksRev iterates over the text fragments of r from back to front.
func (r Rope) ChunksRev() iter.Seq[string] { return r.Full().ChunksRev() }

// Bytes iterates over the bytes of r.
func (r Rope) Bytes() iter.Seq[byte] { return r.Full().Bytes() }

// BytesRev iterates over the bytes of r from back to front.
func (r Rope) BytesRev() iter.Seq[byte] { return r.Full().BytesRev() }

// Chars iterates over the characters of r.
func (r Rope) Chars() iter.Seq[rune] { return r.Full().Chars() }

// CharsRev iterates over the characters of r from back to front.
func (r Rope) CharsRev() iter.Seq[rune] { return r.Full().CharsRev() }
