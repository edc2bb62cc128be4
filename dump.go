package rope

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/rope/btree"
	"github.com/npillmayer/rope/chunk"
	"golang.org/x/term"
)

var (
	innerColor = color.New(color.FgBlue)
	leafColor  = color.New(color.FgGreen)
	textColor  = color.New(color.Faint)
)

// Dump writes an indented, colored listing of the rope's tree to w (for
// debugging purposes). If w is a terminal, chunk texts are shortened to fit
// the terminal's width.
func (r Rope) Dump(w io.Writer) {
	width := dumpWidth(w)
	pos := 0
	r.t().Walk(func(info btree.NodeInfo[chunk.Chunk, chunk.Summary]) bool {
		indent := strings.Repeat("  ", info.Depth)
		if !info.Leaf {
			innerColor.Fprintf(w, "%s● %d children, %d bytes, %d chars, %d breaks\n", indent,
				info.Children, info.Summary.Bytes, info.Summary.Chars, info.Summary.Lines)
			return true
		}
		head := fmt.Sprintf("%s■ @%d [%d] ", indent, pos, info.Chunk.Len())
		leafColor.Fprint(w, head)
		text := fmt.Sprintf("%q", info.Chunk.String())
		if room := width - len(head); room > 5 && len(text) > room {
			text = text[:room-3] + "..."
		}
		textColor.Fprintln(w, text)
		pos += info.Chunk.Len()
		return true
	})
}

// dumpWidth returns the line width available for w.
func dumpWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 20 {
			return cols
		}
	}
	return 120
}
