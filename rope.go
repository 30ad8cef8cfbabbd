package rope

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"strings"

	"github.com/npillmayer/rope/chunk"
	"github.com/npillmayer/rope/sumtree"
)

// Rope stores immutable UTF-8 text fragments in a persistent measured tree.
//
// Methods that take or return positions use byte offsets.
//
// Due to their internal structure ropes do have performance characteristics
// differing from Go strings or byte arrays.
//
//	Operation     |   Rope          |  String
//	--------------+-----------------+--------
//	Concatenate   |   O(spine)      |   O(n)
//	Split         |   O(spine)      |   O(1)
//	Iterate       |   O(n)          |   O(n)
//	Byte/rune/    |   O(1)          |   O(n)
//	line counts   |                 |
//
// Ropes are persistent: every operation returns a new value and prior
// versions stay valid, sharing untouched fragments.
type Rope struct {
	tree *sumtree.Tree[chunk.Chunk, chunk.Summary]
}

func treeConfig() sumtree.Config[chunk.Chunk, chunk.Summary] {
	return sumtree.Config[chunk.Chunk, chunk.Summary]{
		Monoid:    chunk.Monoid{},
		Ownership: sumtree.Shared,
	}
}

func newChunkTree() *sumtree.Tree[chunk.Chunk, chunk.Summary] {
	tree, err := sumtree.New(treeConfig())
	assert(err == nil, "rope: cannot create chunk tree")
	return tree
}

// treeOf materializes the tree behind a rope; the zero Rope value maps to a
// fresh empty tree.
func treeOf(r Rope) *sumtree.Tree[chunk.Chunk, chunk.Summary] {
	if r.tree == nil {
		return newChunkTree()
	}
	return r.tree
}

func fromTree(tree *sumtree.Tree[chunk.Chunk, chunk.Summary]) Rope {
	return Rope{tree: tree}
}

// FromString creates a rope from a Go string. The empty string yields the
// empty rope; any other input is wrapped as a single chunk with its rune and
// newline counts computed once.
//
// The input string must be valid UTF-8. Invalid input triggers an internal
// assertion panic, matching package invariants for stored text.
func FromString(s string) Rope {
	if s == "" {
		return Rope{}
	}
	c, err := chunk.New(s)
	assert(err == nil, "FromString requires valid UTF-8 input")
	tree, err := sumtree.Singleton(treeConfig(), c)
	assert(err == nil, "FromString: cannot create chunk tree")
	return fromTree(tree)
}

// String returns the complete rope as a Go string. This may be an expensive
// operation, as it will allocate a buffer for all the bytes of the rope and
// collect all fragments to a single continuous string.
func (r Rope) String() string {
	if r.tree == nil || r.tree.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(r.tree.Summary().Bytes))
	r.tree.ForEach(func(c chunk.Chunk) bool {
		sb.WriteString(c.String())
		return true
	})
	return sb.String()
}

// IsVoid reports whether the rope has no bytes.
func (r Rope) IsVoid() bool {
	return r.tree == nil || r.tree.IsEmpty()
}

// Len returns the rope length in bytes.
func (r Rope) Len() uint64 {
	return r.Summary().Bytes
}

// Summary returns aggregate byte/rune/line counts for the rope, read from
// the tree root in O(1).
func (r Rope) Summary() chunk.Summary {
	if r.tree == nil {
		return chunk.Summary{}
	}
	return r.tree.Summary()
}

// CharCount returns the number of UTF-8 runes in the rope.
func (r Rope) CharCount() uint64 {
	return r.Summary().Chars
}

// LineCount returns the number of newline characters in the rope.
func (r Rope) LineCount() uint64 {
	return r.Summary().Lines
}

// FragmentCount returns the number of chunks the rope is stored in.
func (r Rope) FragmentCount() int {
	if r.tree == nil {
		return 0
	}
	return r.tree.Len()
}

// RangeChunk returns an iterator over all chunks in logical order.
func (r Rope) RangeChunk() iter.Seq[chunk.Chunk] {
	return func(yield func(chunk.Chunk) bool) {
		if r.tree == nil {
			return
		}
		r.tree.ForEach(yield)
	}
}

// EachChunk visits all chunks in logical order.
//
// The callback receives each chunk and its starting byte offset. Iteration
// stops at the first callback error and returns that error to the caller.
func (r Rope) EachChunk(f func(chunk.Chunk, uint64) error) error {
	if r.tree == nil {
		return nil
	}
	var err error
	var pos uint64
	r.tree.ForEach(func(c chunk.Chunk) bool {
		err = f(c, pos)
		pos += c.Summary().Bytes
		return err == nil
	})
	return err
}
