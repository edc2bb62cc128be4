package chunk

import (
	"fmt"
	"math/bits"
	"unicode/utf8"
)

// Bitmap indexes byte-local properties inside a chunk.
//
// Bit i corresponds to byte offset i in chunk-local coordinates.
type Bitmap = uint64

const (
	// MaxBase is the maximum chunk payload length in bytes.
	MaxBase = 64
	// MinBase is the minimum non-root occupancy target used by tree policies.
	MinBase = MaxBase / 2
)

// Chunk stores text and bitmap indexes for fast local coordinate math.
//
// The chunk is immutable by convention: editing operations return a new Chunk.
// Chunk satisfies btree.Chunk[Chunk, Summary].
type Chunk struct {
	chars    Bitmap
	newlines Bitmap
	text     [MaxBase]byte
	n        uint8
}

// ChunkSlice is a lightweight view over a chunk range with shifted bitmaps.
type ChunkSlice struct {
	chars    Bitmap
	newlines Bitmap
	text     []byte
}

// New creates a chunk from UTF-8 text.
//
// Returns an error if the text is not valid UTF-8 or exceeds MaxBase bytes.
func New(text string) (Chunk, error) {
	if !utf8.ValidString(text) {
		return Chunk{}, ErrInvalidUTF8
	}
	if len(text) > MaxBase {
		return Chunk{}, ErrChunkTooLarge
	}
	var c Chunk
	copy(c.text[:], text)
	c.n = uint8(len(text))
	// Byte-local ascii properties.
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			c.newlines |= bit(i)
		}
	}
	// Rune-local boundaries.
	for i := range text {
		c.chars |= bit(i)
	}
	return c, nil
}

// NewBytes creates a chunk from UTF-8 bytes.
//
// Returns an error if the bytes are not valid UTF-8 or exceed MaxBase bytes.
//
// Important for file ingestion: callers should split raw input only at UTF-8
// rune boundaries before calling NewBytes for each chunk. This constructor
// validates UTF-8 and will reject byte slices that start/end in the middle of
// a multi-byte rune.
func NewBytes(text []byte) (Chunk, error) {
	if !utf8.Valid(text) {
		return Chunk{}, ErrInvalidUTF8
	}
	if len(text) > MaxBase {
		return Chunk{}, ErrChunkTooLarge
	}
	var c Chunk
	copy(c.text[:], text)
	c.n = uint8(len(text))
	for i, b := range text {
		if b == '\n' {
			c.newlines |= bit(i)
		}
	}
	for i := 0; i < len(text); {
		c.chars |= bit(i)
		_, n := utf8.DecodeRune(text[i:])
		i += n
	}
	return c, nil
}

// Len returns the text length in bytes.
func (c Chunk) Len() int {
	return int(c.n)
}

// MaxLen returns MaxBase.
func (c Chunk) MaxLen() int {
	return MaxBase
}

// IsEmpty reports whether the chunk has no bytes.
func (c Chunk) IsEmpty() bool {
	return c.n == 0
}

// String returns the chunk text.
func (c Chunk) String() string {
	return string(c.text[:c.n])
}

// Text returns the chunk text for byte range [from,to).
func (c Chunk) Text(from, to int) string {
	return string(c.text[from:to])
}

// Bytes returns a copied byte slice of the chunk text.
func (c Chunk) Bytes() []byte {
	return append([]byte(nil), c.text[:c.n]...)
}

// Byte returns the byte at offset i.
func (c Chunk) Byte(i int) byte {
	return c.text[:c.n][i]
}

// DecodeRune decodes the rune starting at offset i, see utf8.DecodeRune.
func (c Chunk) DecodeRune(i int) (rune, int) {
	return utf8.DecodeRune(c.text[i:c.n])
}

// DecodeLastRune decodes the rune ending before offset i, see
// utf8.DecodeLastRune.
func (c Chunk) DecodeLastRune(i int) (rune, int) {
	return utf8.DecodeLastRune(c.text[:i])
}

// Chars returns the UTF-8 character-start bitmap.
func (c Chunk) Chars() Bitmap {
	return c.chars
}

// Newlines returns the newline bitmap.
func (c Chunk) Newlines() Bitmap {
	return c.newlines
}

// IsCharBoundary reports whether offset is a UTF-8 boundary inside this chunk.
func (c Chunk) IsCharBoundary(offset int) bool {
	if offset == c.Len() {
		return true
	}
	if offset < 0 || offset > c.Len() {
		return false
	}
	return c.chars&bit(offset) != 0
}

// IsBoundary reports whether the chunk may be split before offset.
func (c Chunk) IsBoundary(offset int) bool {
	return c.IsCharBoundary(offset)
}

// CharsBefore counts the characters starting before offset. A character cut
// by offset counts as one.
func (c Chunk) CharsBefore(offset int) int {
	return bits.OnesCount64(c.chars & prefixMask(offset))
}

// LinesBefore counts the line breaks before offset.
func (c Chunk) LinesBefore(offset int) int {
	return bits.OnesCount64(c.newlines & prefixMask(offset))
}

// CharToByte returns the offset of the n-th character (0-based), or Len() if
// the chunk holds at most n characters.
func (c Chunk) CharToByte(n int) int {
	return selectBit(c.chars, n, c.Len())
}

// LineToByte returns the offset just after the n-th line break (1-based), or
// Len() if the chunk holds fewer than n line breaks. LineToByte(0) is 0.
func (c Chunk) LineToByte(n int) int {
	if n <= 0 {
		return 0
	}
	if off := selectBit(c.newlines, n-1, -1); off >= 0 {
		return off + 1
	}
	return c.Len()
}

// AsSlice returns a zero-offset view over the full chunk.
func (c Chunk) AsSlice() ChunkSlice {
	return ChunkSlice{
		chars:    c.chars,
		newlines: c.newlines,
		text:     c.text[:c.n],
	}
}

// Slice returns a view for [start,end) in chunk-local byte offsets.
func (c Chunk) Slice(start, end int) (ChunkSlice, error) {
	return c.AsSlice().Slice(start, end)
}

// Append returns a new chunk with slice appended.
//
// The boolean is false if the append would exceed MaxBase; in that case, the
// original chunk is returned unchanged.
func (c Chunk) Append(slice ChunkSlice) (Chunk, bool) {
	if slice.IsEmpty() {
		return c, true
	}
	base := c.Len()
	total := base + slice.Len()
	if total > MaxBase {
		return c, false
	}
	out := c
	shift := uint(base)
	out.chars |= slice.chars << shift
	out.newlines |= slice.newlines << shift
	copy(out.text[base:total], slice.text)
	out.n = uint8(total)
	return out, true
}

// TruncateFront drops bytes [0,start).
func (c Chunk) TruncateFront(start int) Chunk {
	return c.sub(start, c.Len())
}

// TruncateBack drops bytes [end,Len()).
func (c Chunk) TruncateBack(end int) Chunk {
	return c.sub(0, end)
}

// ShiftLeft moves bytes [0,end) of right onto the end of c.
func (c Chunk) ShiftLeft(right Chunk, end int) (Chunk, Chunk) {
	left, ok := c.Append(right.mustSlice(0, end))
	if !ok {
		panic(fmt.Errorf("%w: shifting %d bytes onto %d", ErrChunkTooLarge, end, c.Len()))
	}
	return left, right.sub(end, right.Len())
}

// ShiftRight moves bytes [start,Len()) of c onto the front of right.
func (c Chunk) ShiftRight(right Chunk, start int) (Chunk, Chunk) {
	moved, ok := c.sub(start, c.Len()).Append(right.AsSlice())
	if !ok {
		panic(fmt.Errorf("%w: shifting %d bytes onto %d", ErrChunkTooLarge, c.Len()-start, right.Len()))
	}
	return c.sub(0, start), moved
}

// sub copies [start,end) into a chunk of its own.
func (c Chunk) sub(start, end int) Chunk {
	s := c.mustSlice(start, end)
	var out Chunk
	out.chars, out.newlines = s.chars, s.newlines
	copy(out.text[:], s.text)
	out.n = uint8(len(s.text))
	return out
}

func (c Chunk) mustSlice(start, end int) ChunkSlice {
	s, err := c.Slice(start, end)
	if err != nil {
		panic(fmt.Errorf("%w: [%d,%d) of %d bytes", err, start, end, c.Len()))
	}
	return s
}

// Len returns the slice length in bytes.
func (s ChunkSlice) Len() int {
	return len(s.text)
}

// IsEmpty reports whether the slice has no bytes.
func (s ChunkSlice) IsEmpty() bool {
	return len(s.text) == 0
}

// String returns the slice text.
func (s ChunkSlice) String() string {
	return string(s.text)
}

// Bytes returns a copied byte slice of the slice text.
func (s ChunkSlice) Bytes() []byte {
	return append([]byte(nil), s.text...)
}

// IsCharBoundary reports whether offset is a UTF-8 boundary inside this slice.
func (s ChunkSlice) IsCharBoundary(offset int) bool {
	if offset == s.Len() {
		return true
	}
	if offset < 0 || offset > s.Len() {
		return false
	}
	return s.chars&bit(offset) != 0
}

// Slice returns a sub-view [start,end) in slice-local byte offsets.
func (s ChunkSlice) Slice(start, end int) (ChunkSlice, error) {
	if start < 0 || end < start || end > s.Len() {
		return ChunkSlice{}, ErrIndexOutOfBounds
	}
	if !s.IsCharBoundary(start) || !s.IsCharBoundary(end) {
		return ChunkSlice{}, ErrNotCharBoundary
	}
	m := rangeMask(start, end)
	return ChunkSlice{
		chars:    (s.chars & m) >> uint(start),
		newlines: (s.newlines & m) >> uint(start),
		text:     s.text[start:end],
	}, nil
}

// --- Bitmap helpers --------------------------------------------------------

func bit(offset int) Bitmap {
	if offset < 0 || offset >= MaxBase {
		return 0
	}
	return Bitmap(1) << uint(offset)
}

func prefixMask(offset int) Bitmap {
	switch {
	case offset <= 0:
		return 0
	case offset >= MaxBase:
		return ^Bitmap(0)
	default:
		return (Bitmap(1) << uint(offset)) - 1
	}
}

func rangeMask(start, end int) Bitmap {
	return prefixMask(end) &^ prefixMask(start)
}

// selectBit returns the offset of the n-th set bit (0-based) of b, or
// notFound if b has at most n bits set.
func selectBit(b Bitmap, n int, notFound int) int {
	for ; n > 0 && b != 0; n-- {
		b &= b - 1
	}
	if b == 0 {
		return notFound
	}
	return bits.TrailingZeros64(b)
}
