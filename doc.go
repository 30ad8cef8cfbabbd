/*
Package rope offers a persistent string enhancement for text-heavy
applications.

Ropes organize fragments of immutable text in a measured binary tree. Every
tree node caches a summary (byte length, rune count and newline count) of
the subtree below it, so aggregate queries are O(1) and positional queries
follow a root-to-boundary path instead of scanning. Concatenation,
decomposition and splitting share untouched subtrees between results, which
makes retaining old versions of a text after an edit cheap.

A rope created by

	Rope{}

is a valid object and behaves like the empty string.

The structural engine lives in package sumtree and is generic; this package
instantiates it with text chunks (package chunk) and adds a chunk-merging
policy on concatenation: adjacent boundary fragments below a fixed byte
threshold are merged, bounding fragmentation from repeated small appends.

Due to their internal structure ropes have performance characteristics
differing from Go strings or byte arrays. For use cases with many editing
operations on large texts, ropes have stable performance and space
characteristics; for short throw-away strings they add overhead.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

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

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rope'.
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// RopeError is an error type for the rope module.
type RopeError string

func (e RopeError) Error() string {
	return string(e)
}

// ErrRopeCompleted signals that a rope builder has already completed a rope
// and it's illegal to further add fragments.
const ErrRopeCompleted = RopeError("forbidden to add fragments; rope has been completed")

// ErrIndexOutOfBounds is flagged whenever a rope position is
// greater than the length of the rope.
const ErrIndexOutOfBounds = RopeError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = RopeError("illegal arguments")
