package rope

import "io"

// Reader returns a reader for the bytes of r.
func (r Rope) Reader() io.Reader {
	return r.Full().Reader()
}

// Reader returns a reader for the bytes of s.
func (s Slice) Reader() io.Reader {
	return &ropeReader{cursor: s.ChunkCursorFront()}
}

type ropeReader struct {
	cursor  *ChunkCursor
	pending string
}

func (rr *ropeReader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if rr.pending == "" {
			rr.pending = rr.cursor.Chunk()
			if rr.pending == "" {
				if n == 0 {
					return 0, io.EOF
				}
				return n, nil
			}
			rr.cursor.MoveNext()
		}
		k := copy(p[n:], rr.pending)
		rr.pending = rr.pending[k:]
		n += k
	}
	return n, nil
}

// WriteTo writes the text of r to w.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for frag := range r.Chunks() {
		n, err := io.WriteString(w, frag)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
