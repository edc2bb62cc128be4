package textfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rope"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// prefetch is the number of fragments the reader may run ahead of the builder.
const prefetch = 4

// Progress is broadcast to subscribers of a Loader after every fragment.
// Delivery to slow subscribers is best effort and may skip messages.
// The final message has Done set; Err is non-nil if loading failed.
type Progress struct {
	Name  string
	Bytes int64 // bytes loaded so far
	Total int64 // file size at the time of opening
	Done  bool
	Err   error
}

// Loader loads a single text file into a rope. Subscribers have to register
// before Load is called; they receive Progress messages until the load
// finishes.
//
// A Loader may be used for one load only.
type Loader struct {
	name     string
	fragSize int64
	cast     *caster.Caster
	once     sync.Once
}

// NewLoader creates a loader for file name. A fragSize <= 0 lets the loader
// select a fragment size depending on the size of the file.
func NewLoader(name string, fragSize int64) *Loader {
	return &Loader{
		name:     name,
		fragSize: fragSize,
		cast:     caster.New(nil),
	}
}

// Load reads file name, which must be a UTF-8 text file, and returns its
// content as a rope. Invalid UTF-8 is replaced by U+FFFD.
func Load(ctx context.Context, name string) (rope.Rope, error) {
	return NewLoader(name, 0).Load(ctx)
}

// Subscribe returns a channel of progress messages. The channel is closed
// after the final message, or when ctx is done.
func (l *Loader) Subscribe(ctx context.Context) <-chan Progress {
	out := make(chan Progress, prefetch)
	sub, ok := l.cast.Sub(ctx, prefetch)
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for m := range sub {
			if p, ok := m.(Progress); ok {
				select {
				case out <- p:
				case <-ctx.Done():
					l.cast.Unsub(sub)
					return
				}
			}
		}
	}()
	return out
}

// Load reads the loader's file into a rope. Loading stops early if ctx is
// cancelled, returning the context's error.
func (l *Loader) Load(ctx context.Context) (r rope.Rope, err error) {
	started := false
	l.once.Do(func() { started = true })
	if !started {
		return rope.Rope{}, fmt.Errorf("textfile: loader for %q already used", l.name)
	}
	defer l.cast.Close()
	f, size, err := openFile(l.name)
	if err != nil {
		l.cast.Pub(Progress{Name: l.name, Done: true, Err: err})
		return rope.Rope{}, err
	}
	defer f.Close()
	fragSize := l.fragSize
	if fragSize <= 0 {
		fragSize = fragmentSize(size)
	}
	tracer().Debugf("textfile: loading %q, %d bytes in fragments of %d", l.name, size, fragSize)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	frags := readFragments(ctx, f, fragSize)
	var (
		b      rope.Builder
		carry  []byte
		loaded int64
	)
	for frag := range frags {
		if frag.err != nil {
			err = fmt.Errorf("textfile: reading %q: %w", l.name, frag.err)
			break
		}
		loaded += int64(len(frag.data))
		data := append(carry, frag.data...)
		cut := incompleteTail(data)
		carry = append([]byte(nil), data[cut:]...)
		if err = b.PushBytes(data[:cut]); err != nil {
			break
		}
		l.cast.TryPub(Progress{Name: l.name, Bytes: loaded, Total: size})
	}
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		cancel()
		for range frags { // let the reader terminate
		}
		l.cast.Pub(Progress{Name: l.name, Bytes: loaded, Total: size, Done: true, Err: err})
		return rope.Rope{}, err
	}
	if len(carry) > 0 {
		tracer().Debugf("textfile: %q ends in an incomplete UTF-8 sequence", l.name)
		b.PushBytes(carry)
	}
	r = b.Build()
	l.cast.Pub(Progress{Name: l.name, Bytes: loaded, Total: size, Done: true})
	return r, nil
}

// openFile opens an OS file for reading, checking that it is a regular file.
func openFile(name string) (*os.File, int64, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, 0, err
	} else if !fi.Mode().IsRegular() {
		return nil, 0, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, 0, err
	}
	return f, fi.Size(), nil
}

func fragmentSize(size int64) int64 {
	switch {
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

type fragment struct {
	data []byte
	err  error
}

// readFragments starts the reader goroutine. The returned channel is closed
// at EOF, after an error, or when ctx is done.
func readFragments(ctx context.Context, f io.Reader, fragSize int64) <-chan fragment {
	ch := make(chan fragment, prefetch)
	go func() {
		defer close(ch)
		for {
			buf := make([]byte, fragSize)
			n, err := io.ReadFull(f, buf)
			if n > 0 {
				select {
				case ch <- fragment{data: buf[:n]}:
				case <-ctx.Done():
					return
				}
			}
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return
			} else if err != nil {
				select {
				case ch <- fragment{err: err}:
				case <-ctx.Done():
				}
				return
			}
		}
	}()
	return ch
}

// incompleteTail returns the offset of a UTF-8 sequence at the end of data
// which has been cut short, or len(data) if there is none.
func incompleteTail(data []byte) int {
	for i := len(data) - 1; i >= 0 && i >= len(data)-utf8.UTFMax; i-- {
		if utf8.RuneStart(data[i]) {
			if utf8.FullRune(data[i:]) {
				return len(data)
			}
			return i
		}
	}
	return len(data)
}
