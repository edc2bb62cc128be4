package rope

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/rope/btree"
	"github.com/npillmayer/rope/chunk"
)

// ToDot outputs the internal structure of a rope in Graphviz DOT format
// (for debugging purposes).
func (r Rope) ToDot(w io.Writer) error {
	var nodelist, edgelist strings.Builder
	parents := make([]int, 0, r.Height())
	id, pos := 0, 0
	r.t().Walk(func(info btree.NodeInfo[chunk.Chunk, chunk.Summary]) bool {
		id++
		parents = parents[:info.Depth]
		if info.Depth > 0 {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", parents[info.Depth-1], id)
		}
		if info.Leaf {
			label := fmt.Sprintf("%d @%d\\n“%s”", info.Summary.Bytes, pos, strstart(info.Chunk))
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(true))
			pos += info.Chunk.Len()
		} else {
			label := fmt.Sprintf("%d\\n%d lines", info.Summary.Bytes, info.Summary.Lines)
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(false))
		}
		parents = append(parents, id)
		return true
	})
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("strict digraph {\n")
	write("\tnode [fontname=Arial,fontsize=12];\n")
	write(nodelist.String())
	write(edgelist.String())
	write("}\n")
	if err != nil {
		tracer().Errorf("rope DOT: %s", err.Error())
	}
	return err
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}

// strstart returns a DOT-safe prefix of a chunk's text.
func strstart(c chunk.Chunk) string {
	s := c.String()
	if len(s) > 10 {
		n := 10
		for n > 0 && !c.IsCharBoundary(n) {
			n--
		}
		s = s[:n] + "…"
	}
	return dotEscaper.Replace(s)
}

var dotEscaper = strings.NewReplacer(`"`, `\"`, `\`, `\\`, "\n", `\\n`, "\r", `\\r`, "\t", `\\t`)
