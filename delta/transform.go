package delta

import "github.com/npillmayer/rope/text"

// Transform takes two deltas d and other against the same source text and
// returns d' and other', such that applying d then other' yields the same
// text as applying other then d'.
//
// Inserts at the same position are ordered d first.
func (d Delta) Transform(other Delta) (Delta, Delta) {
	var ab, bb Builder
	as, bs := stream{ops: d.ops}, stream{ops: other.ops}
	x, xok := as.next()
	y, yok := bs.next()
	for {
		switch {
		case xok && x.Kind == OpInsert:
			ab.Insert(x.Text)
			bb.Retain(x.Text.Length())
			x, xok = as.next()
		case yok && y.Kind == OpInsert:
			ab.Retain(y.Text.Length())
			bb.Insert(y.Text)
			y, yok = bs.next()
		case !xok && !yok:
			return ab.Build(), bb.Build()
		case !xok:
			transformSpan(&ab, &bb, OpRetain, y.Kind, y.Size)
			y, yok = bs.next()
		case !yok:
			transformSpan(&ab, &bb, x.Kind, OpRetain, x.Size)
			x, xok = as.next()
		default:
			span := text.Min(x.Size, y.Size)
			_, xr := x.split(span)
			_, yr := y.split(span)
			transformSpan(&ab, &bb, x.Kind, y.Kind, span)
			x, xok = as.resume(xr)
			y, yok = bs.resume(yr)
		}
	}
}

// transformSpan handles a span of source text both sides retain or delete.
func transformSpan(ab, bb *Builder, xk, yk Kind, span text.Size) {
	switch {
	case xk == OpRetain && yk == OpRetain:
		ab.Retain(span)
		bb.Retain(span)
	case xk == OpRetain && yk == OpDelete:
		bb.Delete(span)
	case xk == OpDelete && yk == OpRetain:
		ab.Delete(span)
	}
	// deleted by both: gone on either side
}
