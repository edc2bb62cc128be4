/*
Package delta implements operational-transform deltas over line-oriented text.

A Delta is a normalized sequence of operations, defined with respect to one
source text:

  - Retain(size) keeps the next size of the source,
  - Insert(text) inserts text at the current position,
  - Delete(size) removes the next size of the source.

Sizes are text.Size values (lines and byte columns), see package text.

Deltas are built with a Builder, which keeps them in normal form: no two
adjacent operations have the same kind, a Delete never directly follows an
Insert, and a trailing Retain is dropped. Everything after the last operation
is retained implicitly.

The operations on deltas are:

  - Compose: one delta with the net effect of applying two in sequence,
  - Transform: the OT core; given A and B against the same source, it returns
    A' and B' with apply(apply(T,A),B') == apply(apply(T,B),A'). Inserts at the
    same position are ordered A before B,
  - Invert: the delta undoing a delta, given its source text,
  - OperationRanges: the damage regions of a delta, for incremental
    re-indexing.

A delta does not carry a reference to its source text, and trailing retains
are implicit, so Compose and Transform cannot detect deltas of different base
lengths. Applying a delta to a text it was not derived from is a caller error;
Apply and ApplyToRope report it as ErrIncompatibleDeltas when the delta
reaches beyond the end of the text, and ApplyToRope also when a span ends
inside a UTF-8 character.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package delta

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

var (
	// ErrIncompatibleDeltas signals a delta that does not fit the text or
	// delta it is combined with.
	ErrIncompatibleDeltas = errors.New("delta: incompatible deltas")
	// ErrMalformedDelta signals an undecodable wire representation.
	ErrMalformedDelta = errors.New("delta: malformed encoding")
)
