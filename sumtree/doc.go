/*
Package sumtree provides a measured binary sequence tree.

The tree stores a sequence of elements in-order and caches a monoid summary
per node, so aggregate queries over the whole sequence are O(1) and
positional queries run along a root-to-boundary path instead of scanning.
It is the structural engine behind the rope package, but it is generic:
any element type that projects into an associative summary can be stored.

Node model:
  - a nil subtree pointer is the empty sequence,
  - a fork holds (left, element, right) plus the cached summary of the
    whole subtree.

The cached summary is established by construction and never patched in
place, so it holds after every operation by induction.

Operations:
  - Concat walks the right spine of the left operand and the left spine of
    the right operand simultaneously, absorbing one node from each side per
    step until one spine bottoms out; the other tree is grafted whole.
  - Uncons/Unsnoc rotate the left/right spine to detach the boundary
    element.
  - SplitWhere partitions the sequence at the unique element where a
    monotonic predicate over the running prefix summary flips to true.

No operation rebalances. Worst-case cost is proportional to spine length,
not log(n); bulk constructors (FromSlice) build height-balanced trees so
realistic inputs start out well-shaped.

Ownership comes in two modes behind the same contract: Shared trees treat
nodes as immutable, share untouched subtrees between results and clone in
O(1); Exclusive trees consume their operands and recycle spine nodes in
place. Shared nodes are never mutated after construction, so trees sharing
subtrees may be read concurrently without locking.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package sumtree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rope'.
func tracer() tracing.Trace {
	return tracing.Select("rope")
}
