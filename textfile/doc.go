/*
Package textfile provides API helpers to load UTF-8 text files as arrays of
lines.

Loading uses an asynchronous pipeline internally: a reader goroutine loads the
file in fragments and broadcasts them, while the calling goroutine splits the
fragments into lines and stages them for a balanced bulk build. The API stays
synchronous; `Load` returns when the whole file has been read.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dsarray'
func tracer() tracing.Trace {
	return tracing.Select("dsarray")
}
