/*
Package btreevec implements a persistent vector on top of package btree.

A Vec[T] stores its items in leaf chunks of up to MaxItems items; the tree
summary is the item count. Indexing, splitting, appending and range
replacement are O(log n), cloning is O(1), and clones share all nodes.

	v := btreevec.FromSlice([]int{1, 2, 3})
	w := v.Clone()
	w.Push(4)        // v is unaffected
	tail := w.SplitOff(2)

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btreevec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
