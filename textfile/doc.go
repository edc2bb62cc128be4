/*
Package textfile loads UTF-8 text files as ropes.

Files are read in fragments by a background goroutine and handed to a rope
Builder, which assembles the tree bottom-up. Clients interested in the
progress of a long-running load may subscribe to a Loader before starting it.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

// ErrNotRegular is returned when loading anything but a regular file.
var ErrNotRegular = errors.New("textfile: not a regular file")
