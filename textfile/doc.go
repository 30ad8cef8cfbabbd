/*
Package textfile loads text files into ropes.

Files are read fragment-wise, so the resulting rope reflects a client-chosen
fragment size. A Loader broadcasts load progress to any number of
subscribers, e.g. for progress bars during the load of large files.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file in the repository root.
*/
package textfile

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rope.textfile'.
func tracer() tracing.Trace {
	return tracing.Select("rope.textfile")
}
