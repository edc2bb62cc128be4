package rope

import (
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

func graphemes(s string) grapheme.String {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	return grapheme.StringFromString(s)
}

// GraphemeCount returns the number of user-perceived characters (grapheme
// clusters, UAX#29) of s.
func (s Slice) GraphemeCount() int {
	if s.IsEmpty() {
		return 0
	}
	return graphemes(s.String()).Len()
}

// DisplayWidth returns the width of s in fixed-width positions ("en"s),
// following UAX#11. context may be nil, in which case uax11.LatinContext is
// used. Line breaks are not taken into account.
func (s Slice) DisplayWidth(context *uax11.Context) int {
	if s.IsEmpty() {
		return 0
	}
	if context == nil {
		context = uax11.LatinContext
	}
	return uax11.StringWidth(graphemes(s.String()), context)
}

// GraphemeCount returns the number of grapheme clusters of r.
func (r Rope) GraphemeCount() int { return r.Full().GraphemeCount() }

// DisplayWidth returns the UAX#11 display width of r, see Slice.DisplayWidth.
func (r Rope) DisplayWidth(context *uax11.Context) int { return r.Full().DisplayWidth(context) }
