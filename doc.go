/*
Package rope offers a persistent UTF-8 text container for editors.

Ropes

Ropes (or sometimes called cords) organize fragments of text internally in a
tree-structure. This speeds up frequent editing operations like insertion,
deletion and concatenation, especially for long texts.

From Wikipedia:
In computer programming, a rope, or cord, is a data structure composed of
smaller strings that is used to efficiently store and manipulate a very long string.
For example, a text editing program may use a rope to represent the text being edited,
so that operations such as insertion, deletion, and random access can be
done efficiently. […] In summary, ropes are preferable when the data is large
and modified often.

A Rope stores its text in chunks of at most 64 bytes (package chunk), held by
a persistent B+ sum-tree (package btree). Every node of the tree caches the
number of bytes, characters and line breaks below it, so that conversions
between byte offsets, character offsets and line numbers are O(log n).
Chunk boundaries never fall inside a UTF-8 code point.

Ropes are values. Mutating methods replace the receiver's tree, but never
change nodes in place; copying a Rope therefore yields an independent rope
sharing all of its nodes.

Positions are byte offsets. Methods which materialize a part of a rope (Slice,
SplitOff, ReplaceRange, …) snap byte offsets which are not character
boundaries backward to the start of the character. Offsets outside of the rope
are contract violations and panic with an error wrapping
btree.ErrIndexOutOfBounds.

Line numbers of ByteToLine and LineToByte are 1-based, positions of
package text (text.Position) use 0-based lines and byte columns. Lines are
separated by '\n'; a '\r' is ordinary content.

Changes to ropes may be represented as deltas, see package delta.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rope

import (
	"fmt"

	"github.com/npillmayer/rope/btree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

// RopeError is an error type for the rope module
type RopeError string

func (e RopeError) Error() string {
	return string(e)
}

// ErrInvalidPosition is flagged whenever a line/column position does not
// denote a location within a rope.
const ErrInvalidPosition = RopeError("position not within text")

// ErrBuilderCompleted signals that a builder has already built its rope and
// it's illegal to further add text.
const ErrBuilderCompleted = RopeError("forbidden to add text; rope has been built")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// checkIndex panics if index is not within [lo,hi].
func checkIndex(index, lo, hi int) {
	if index < lo || index > hi {
		panic(fmt.Errorf("%w: index %d not in [%d,%d]", btree.ErrIndexOutOfBounds, index, lo, hi))
	}
}
