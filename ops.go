package rope

import (
	"strings"

	"github.com/npillmayer/rope/chunk"
	"github.com/npillmayer/rope/sumtree"
)

// Concat concatenates a rope with others, in order.
//
// An empty operand is an identity. At every junction of two non-empty ropes
// the two boundary chunks are merged into one if their combined byte length
// stays within chunk.MaxJoin; otherwise both are kept side by side. This
// bounds fragmentation from many small appends.
func Concat(r Rope, others ...Rope) Rope {
	out := r
	for _, o := range others {
		out = concat2(out, o)
	}
	return out
}

func concat2(a, b Rope) Rope {
	if a.IsVoid() {
		return b
	}
	if b.IsVoid() {
		return a
	}
	lrem, lc, ok := treeOf(a).Unsnoc()
	assert(ok, "concat: unsnoc on non-empty rope failed")
	rc, rrem, ok := treeOf(b).Uncons()
	assert(ok, "concat: uncons on non-empty rope failed")
	var mid *sumtree.Tree[chunk.Chunk, chunk.Summary]
	if lc.Len()+rc.Len() <= chunk.MaxJoin {
		mid = singletonTree(chunk.Join(lc, rc))
	} else {
		mid = concatTrees(singletonTree(lc), singletonTree(rc))
	}
	return fromTree(concatTrees(concatTrees(lrem, mid), rrem))
}

// Uncons removes and returns the first chunk and the remaining rope.
// The boolean is false for an empty rope.
func (r Rope) Uncons() (chunk.Chunk, Rope, bool) {
	if r.tree == nil {
		return chunk.Chunk{}, r, false
	}
	c, rest, ok := r.tree.Uncons()
	if !ok {
		return chunk.Chunk{}, r, false
	}
	return c, fromTree(rest), true
}

// Unsnoc removes and returns the last chunk and the remaining rope.
// The boolean is false for an empty rope.
func (r Rope) Unsnoc() (Rope, chunk.Chunk, bool) {
	if r.tree == nil {
		return r, chunk.Chunk{}, false
	}
	rest, c, ok := r.tree.Unsnoc()
	if !ok {
		return r, chunk.Chunk{}, false
	}
	return fromTree(rest), c, true
}

// SplitWhere partitions the rope's chunk sequence with a monotonic predicate
// over the running prefix summary. See sumtree.SplitWhere for the contract
// and outcome classification. Chunks are never cut; use Split for
// byte-exact positions.
func (r Rope) SplitWhere(pred func(chunk.Summary) bool) sumtree.Split[chunk.Chunk, chunk.Summary] {
	return treeOf(r).SplitWhere(pred)
}

// Split splits a rope at byte position i, cutting the chunk containing i if
// necessary. i must lie on a rune boundary.
func Split(r Rope, i uint64) (Rope, Rope, error) {
	n := r.Len()
	if i > n {
		return Rope{}, Rope{}, ErrIndexOutOfBounds
	}
	if i == 0 {
		return Rope{}, r, nil
	}
	if i == n {
		return r, Rope{}, nil
	}
	out := treeOf(r).SplitWhere(func(s chunk.Summary) bool { return s.Bytes > i })
	assert(out.Kind == sumtree.SplitFound, "rope split: prefix-byte predicate found no boundary")
	local := int(i - out.Left.Summary().Bytes)
	if local == 0 {
		return fromTree(out.Left), fromTree(concatTrees(singletonTree(out.Boundary), out.Right)), nil
	}
	lc, rc, err := out.Boundary.SplitAt(local)
	if err != nil {
		return Rope{}, Rope{}, err
	}
	left := concatTrees(out.Left, singletonTree(lc))
	right := concatTrees(singletonTree(rc), out.Right)
	return fromTree(left), fromTree(right), nil
}

// Insert inserts rope c at byte position i.
func Insert(r Rope, c Rope, i uint64) (Rope, error) {
	if i > r.Len() {
		return Rope{}, ErrIndexOutOfBounds
	}
	left, right, err := Split(r, i)
	if err != nil {
		return Rope{}, err
	}
	return Concat(left, c, right), nil
}

// Cut removes the byte range [i, i+l) and returns the remaining rope
// together with the cutout.
func Cut(r Rope, i, l uint64) (Rope, Rope, error) {
	n := r.Len()
	if i > n || l > n-i {
		return Rope{}, Rope{}, ErrIndexOutOfBounds
	}
	left, rest, err := Split(r, i)
	if err != nil {
		return Rope{}, Rope{}, err
	}
	cutout, right, err := Split(rest, l)
	if err != nil {
		return Rope{}, Rope{}, err
	}
	return Concat(left, right), cutout, nil
}

// Substr returns the byte range [i, i+l) as a rope.
func Substr(r Rope, i, l uint64) (Rope, error) {
	_, sub, err := Cut(r, i, l)
	return sub, err
}

// Report returns the bytes of range [i, i+l) as a string, collected from
// the chunks overlapping the range.
func (r Rope) Report(i, l uint64) (string, error) {
	n := r.Len()
	if i > n || l > n-i {
		return "", ErrIndexOutOfBounds
	}
	if l == 0 {
		return "", nil
	}
	var sb strings.Builder
	sb.Grow(int(l))
	end := i + l
	var pos uint64
	r.tree.ForEach(func(c chunk.Chunk) bool {
		clen := uint64(c.Len())
		if pos+clen > i && pos < end {
			from := uint64(0)
			if i > pos {
				from = i - pos
			}
			to := clen
			if end < pos+clen {
				to = end - pos
			}
			sb.WriteString(c.String()[from:to])
		}
		pos += clen
		return pos < end
	})
	return sb.String(), nil
}

// Index returns the chunk containing byte position i, together with i's
// offset local to that chunk.
func (r Rope) Index(i uint64) (chunk.Chunk, uint64, error) {
	if i >= r.Len() {
		return chunk.Chunk{}, 0, ErrIndexOutOfBounds
	}
	out := r.tree.SplitWhere(func(s chunk.Summary) bool { return s.Bytes > i })
	assert(out.Kind == sumtree.SplitFound, "rope index: prefix-byte predicate found no boundary")
	return out.Boundary, i - out.Left.Summary().Bytes, nil
}

func concatTrees(a, b *sumtree.Tree[chunk.Chunk, chunk.Summary]) *sumtree.Tree[chunk.Chunk, chunk.Summary] {
	t, err := a.Concat(b)
	assert(err == nil, "rope: tree concat failed")
	return t
}

func singletonTree(c chunk.Chunk) *sumtree.Tree[chunk.Chunk, chunk.Summary] {
	t, err := sumtree.Singleton(treeConfig(), c)
	assert(err == nil, "rope: cannot create singleton tree")
	return t
}
