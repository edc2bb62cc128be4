package delta

import "github.com/npillmayer/rope/text"

// Compose returns a delta with the effect of applying d and then other.
// other must be defined on the result of d.
//
// Compose panics with ErrIncompatibleDeltas if a span of other cuts through a
// line of text inserted by d in a way sizes cannot express.
func (d Delta) Compose(other Delta) Delta {
	var b Builder
	as, bs := stream{ops: d.ops}, stream{ops: other.ops}
	x, xok := as.next()
	y, yok := bs.next()
	for {
		switch {
		case xok && x.Kind == OpDelete:
			b.Delete(x.Size)
			x, xok = as.next()
		case yok && y.Kind == OpInsert:
			b.Insert(y.Text)
			y, yok = bs.next()
		case !xok && !yok:
			return b.Build()
		case !xok:
			// retain or delete of other, past the end of d
			b.Push(y)
			y, yok = bs.next()
		case !yok:
			// retain or insert of d, retained implicitly by other
			b.Push(x)
			x, xok = as.next()
		default:
			span := text.Min(x.Len(), y.Len())
			xh, xr := x.split(span)
			_, yr := y.split(span)
			switch {
			case x.Kind == OpRetain && y.Kind == OpRetain:
				b.Retain(span)
			case x.Kind == OpRetain && y.Kind == OpDelete:
				b.Delete(span)
			case x.Kind == OpInsert && y.Kind == OpRetain:
				b.Insert(xh.Text)
			}
			// insert then delete: both vanish
			x, xok = as.resume(xr)
			y, yok = bs.resume(yr)
		}
	}
}
