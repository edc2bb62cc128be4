package rope

import (
	"bytes"
	"unicode/utf8"

	"github.com/npillmayer/rope/btree"
	"github.com/npillmayer/rope/chunk"
)

// Builder incrementally collects text and finalizes it into a Rope.
//
// Builder cuts the text into chunks and assembles the tree only when Build is
// called, bottom-up in O(n). Invalid UTF-8 is replaced by U+FFFD; callers
// pushing a stream of fragments must not cut through a UTF-8 sequence at a
// fragment border.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	b    *btree.Builder[chunk.Chunk, chunk.Summary]
	done bool
}

// NewBuilder creates a new and empty rope builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) builder() *btree.Builder[chunk.Chunk, chunk.Summary] {
	if b.b == nil {
		var err error
		b.b, err = btree.NewBuilder[chunk.Chunk, chunk.Summary](treeConfig())
		assert(err == nil, "rope builder: cannot create tree builder")
	}
	return b.b
}

// PushString appends text to the staged build.
func (b *Builder) PushString(text string) error {
	return b.PushBytes([]byte(text))
}

// PushBytes appends text to the staged build.
func (b *Builder) PushBytes(text []byte) error {
	if b.done {
		return ErrBuilderCompleted
	}
	if !utf8.Valid(text) {
		tracer().Debugf("rope builder: replacing invalid UTF-8 in %d bytes of input", len(text))
		text = bytes.ToValidUTF8(text, []byte(string(utf8.RuneError)))
	}
	bld := b.builder()
	for _, c := range splitToChunks(text) {
		bld.PushChunk(c)
	}
	return nil
}

// Len returns the number of bytes staged so far.
func (b *Builder) Len() int {
	if b == nil || b.b == nil {
		return 0
	}
	return b.b.Len()
}

// Build returns the rope built from all staged text.
//
// It is illegal to continue adding text after Build has been called, but
// Build may be called multiple times; subsequent calls return the empty rope.
func (b *Builder) Build() Rope {
	if b == nil {
		return Rope{}
	}
	b.done = true
	if b.b == nil {
		return Rope{}
	}
	var r Rope
	r.tree = *b.b.Build()
	if r.IsEmpty() {
		tracer().Debugf("rope builder: rope is empty")
	}
	return r
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.b = nil
	b.done = false
}

// splitToChunks splits valid UTF-8 bytes into chunk-sized pieces.
//
// Boundaries are adjusted so no chunk starts or ends in the middle of a UTF-8
// character.
func splitToChunks(text []byte) []chunk.Chunk {
	if len(text) == 0 {
		return nil
	}
	parts := make([]chunk.Chunk, 0, 1+len(text)/chunk.MaxBase)
	for i := 0; i < len(text); {
		end := i + chunk.MaxBase
		if end >= len(text) {
			end = len(text)
		} else {
			for end > i && !utf8.RuneStart(text[end]) {
				end--
			}
		}
		assert(end > i, "rope builder: UTF-8 sequence exceeds chunk size")
		c, err := chunk.NewBytes(text[i:end])
		assert(err == nil, "rope builder: invalid chunk")
		parts = append(parts, c)
		i = end
	}
	return parts
}
