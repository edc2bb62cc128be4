/*
Package text provides line/column coordinates and a line-oriented text value.

A Position addresses a location by 0-based line and byte column. A Size is the
difference between two positions: a Size with Line == 0 means "on the same
line, Column bytes further along", otherwise it means "Line lines further
down, at Column". Sizes are the unit of Retain and Delete operations of
package delta, and Text is the payload of its Insert operations.

Lines are separated by '\n' only; a '\r' preceding a line break stays part of
its line.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package text

import "errors"

// ErrOutOfBounds signals a size or position beyond the end of a text.
var ErrOutOfBounds = errors.New("text: position out of bounds")
