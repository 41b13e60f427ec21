/*
Package dsarray offers a mutable sequence type with logarithmic positional
editing.

Arrays

Go slices are contiguous, which makes reading and writing an element by index
cheap, but inserting or deleting in the middle of a slice has to shift every
subsequent element. For long sequences under frequent editing (line buffers of a
text editor, playlists, undo histories, ordered work queues) this linear cost
adds up.

An Array keeps its elements in a size-balanced binary tree (see package sbt).
The tree never compares element values; an element's key is its position in
the sequence. This lets an Array provide

	Operation     |   Array         |  Slice
	--------------+-----------------+-----------------
	At / Set      |   O(log n)      |   O(1)
	Append        |   O(log n)      |   O(1) amortized
	Insert        |   O(log n)      |   O(n)
	RemoveAt      |   O(log n)      |   O(n)
	Build from n  |   O(n)          |   O(n)
	Iterate       |   O(n)          |   O(n)

Arrays are not safe for concurrent use. Clients have to synchronize access
themselves if an Array is shared between goroutines.

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
package dsarray

import (
	"github.com/npillmayer/dsarray/sbt"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// ArrayError is an error type for the dsarray module
type ArrayError string

func (e ArrayError) Error() string {
	return string(e)
}

// ErrArrayCompleted signals that an array builder has already completed an array
// and it's illegal to further add elements.
const ErrArrayCompleted = ArrayError("forbidden to add elements; array has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ArrayError("illegal arguments")

// ErrIndexOutOfBounds is flagged whenever an index is outside the valid range
// of an operation. Errors returned by Array methods wrap it together with the
// offending index and the valid bound.
var ErrIndexOutOfBounds = sbt.ErrIndexOutOfBounds

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
