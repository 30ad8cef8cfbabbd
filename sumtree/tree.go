package sumtree

import (
	"fmt"
)

// Tree is a measured binary sequence tree.
//
// T is the element type, S is the summary type aggregated through the tree.
// The element type is tied to the summary type via Summarized[S].
//
// A tree value represents the in-order sequence of its elements. The zero
// node pointer is the empty sequence; every fork caches the summary of the
// subtree below it, so Summary is O(1).
type Tree[T Summarized[S], S any] struct {
	cfg  Config[T, S]
	root *fork[T, S]
}

// fork is the single non-empty node case: the sequence
// in-order(left) ++ [elem] ++ in-order(right).
//
// summary caches Add(summary(left), Add(elem.Summary(), summary(right))) and
// is set at construction, never patched afterwards.
type fork[T Summarized[S], S any] struct {
	left, right *fork[T, S]
	elem        T
	summary     S
}

// New creates an empty tree with validated configuration.
func New[T Summarized[S], S any](cfg Config[T, S]) (*Tree[T, S], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T, S]{cfg: cfg}, nil
}

// Singleton creates a one-element tree with validated configuration.
func Singleton[T Summarized[S], S any](cfg Config[T, S], elem T) (*Tree[T, S], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	t.root = t.newFork(nil, elem, nil)
	return t, nil
}

// FromSlice builds a height-balanced tree holding elems in order.
//
// Concatenation never rebalances, so bulk construction is the place where a
// good initial shape is established.
func FromSlice[T Summarized[S], S any](cfg Config[T, S], elems []T) (*Tree[T, S], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	t.root = t.balancedFork(elems)
	return t, nil
}

func (t *Tree[T, S]) balancedFork(elems []T) *fork[T, S] {
	if len(elems) == 0 {
		return nil
	}
	mid := len(elems) / 2
	return t.newFork(t.balancedFork(elems[:mid]), elems[mid], t.balancedFork(elems[mid:][1:]))
}

// Config returns a copy of the tree configuration.
func (t *Tree[T, S]) Config() Config[T, S] {
	return t.cfg
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T, S]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Summary returns the root summary, or Zero() for an empty tree. A nil
// receiver yields the zero value of S.
func (t *Tree[T, S]) Summary() S {
	if t == nil || t.root == nil {
		if t != nil && t.cfg.Monoid != nil {
			return t.cfg.Monoid.Zero()
		}
		var zero S
		return zero
	}
	return t.root.summary
}

// Len returns the number of elements in the tree.
//
// This walks the tree; clients needing counts on hot paths should carry them
// in the summary.
func (t *Tree[T, S]) Len() int {
	n := 0
	t.ForEach(func(T) bool {
		n++
		return true
	})
	return n
}

// Height returns the length of the longest root-to-leaf path, 0 for empty.
func (t *Tree[T, S]) Height() int {
	if t == nil {
		return 0
	}
	return forkHeight(t.root)
}

func forkHeight[T Summarized[S], S any](n *fork[T, S]) int {
	if n == nil {
		return 0
	}
	return 1 + max(forkHeight(n.left), forkHeight(n.right))
}

// Clone returns an independent tree value over the same sequence.
//
// Under Shared ownership this is O(1) and shares all nodes; under Exclusive
// ownership the node spine is copied so both values stay sole owners.
func (t *Tree[T, S]) Clone() *Tree[T, S] {
	if t == nil {
		return nil
	}
	cloned := *t
	if t.cfg.Ownership == Exclusive {
		cloned.root = copyFork(t.root)
	}
	return &cloned
}

func copyFork[T Summarized[S], S any](n *fork[T, S]) *fork[T, S] {
	if n == nil {
		return nil
	}
	return &fork[T, S]{
		left:    copyFork(n.left),
		right:   copyFork(n.right),
		elem:    n.elem,
		summary: n.summary,
	}
}

// Concat returns a tree over in-order(t) ++ in-order(other).
//
// An empty operand is an identity: the other operand is returned unchanged.
// Under Exclusive ownership both operands are consumed. The resulting
// summary is Add(t.Summary(), other.Summary()).
//
// The walk descends t's right spine and other's left spine simultaneously,
// absorbing one node from each side per step, until one spine bottoms out
// and the remaining tree is grafted whole. Cost is bounded by the shorter of
// the two spines; no rebalancing is performed.
func (t *Tree[T, S]) Concat(other *Tree[T, S]) (*Tree[T, S], error) {
	if t == nil || other == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.cfg.Ownership != other.cfg.Ownership {
		return nil, fmt.Errorf("%w: ownership %s vs %s",
			ErrIncompatibleTrees, t.cfg.Ownership, other.cfg.Ownership)
	}
	if t.root == nil {
		return other, nil
	}
	if other.root == nil {
		return t, nil
	}
	return &Tree[T, S]{cfg: t.cfg, root: t.concatForks(t.root, other.root)}, nil
}

// concatForks is the structural concat primitive shared by Concat, Uncons
// unwinding and SplitWhere accumulation.
func (t *Tree[T, S]) concatForks(a, b *fork[T, S]) *fork[T, S] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	m := t.cfg.Monoid
	lf := t.owned(a)
	rf := t.owned(b)
	// lf and rf always cover the complete remaining left/right input, so
	// their cached summaries stay valid across iterations.
	for {
		switch {
		case lf.right == nil:
			lf.summary = m.Add(lf.summary, rf.summary)
			lf.right = rf
			return lf
		case rf.left == nil:
			rf.summary = m.Add(lf.summary, rf.summary)
			rf.left = lf
			return rf
		default:
			lmid := t.owned(lf.right)
			rmid := t.owned(rf.left)
			lsum, rsum := lf.summary, rf.summary
			lfold := t.rewire(t.spareNode(lf), lf.left, lf.elem, lmid.left)
			rfold := t.rewire(t.spareNode(rf), rmid.right, rf.elem, rf.right)
			lmid.left = lfold
			lmid.summary = lsum
			rmid.right = rfold
			rmid.summary = rsum
			lf, rf = lmid, rmid
		}
	}
}

// Uncons removes the first element. The boolean is false for an empty tree.
//
// The walk rotates down the left spine, re-attaching each bypassed right
// sibling below the pending root element, until an element without a left
// subtree surfaces.
func (t *Tree[T, S]) Uncons() (T, *Tree[T, S], bool) {
	var zero T
	if t == nil || t.root == nil {
		return zero, t, false
	}
	f := *t.root // working value; its summary field is not maintained
	spare := t.spareNode(t.root)
	for f.left != nil {
		l := f.left
		right := t.rewire(spare, l.right, f.elem, f.right)
		spare = t.spareNode(l)
		f = fork[T, S]{left: l.left, elem: l.elem, right: right}
	}
	return f.elem, &Tree[T, S]{cfg: t.cfg, root: f.right}, true
}

// Unsnoc removes the last element. The boolean is false for an empty tree.
func (t *Tree[T, S]) Unsnoc() (*Tree[T, S], T, bool) {
	var zero T
	if t == nil || t.root == nil {
		return t, zero, false
	}
	f := *t.root
	spare := t.spareNode(t.root)
	for f.right != nil {
		r := f.right
		left := t.rewire(spare, f.left, f.elem, r.left)
		spare = t.spareNode(r)
		f = fork[T, S]{left: left, elem: r.elem, right: r.right}
	}
	return &Tree[T, S]{cfg: t.cfg, root: f.left}, f.elem, true
}

// --- Ownership helpers -----------------------------------------------------

// newFork allocates a fork with its summary computed from the parts.
func (t *Tree[T, S]) newFork(l *fork[T, S], e T, r *fork[T, S]) *fork[T, S] {
	m := t.cfg.Monoid
	return &fork[T, S]{
		left:    l,
		right:   r,
		elem:    e,
		summary: m.Add(m.Add(t.summaryOf(l), e.Summary()), t.summaryOf(r)),
	}
}

// rewire builds a fork from the parts, recycling spare when one is
// available. Shared trees never pass a spare node.
func (t *Tree[T, S]) rewire(spare *fork[T, S], l *fork[T, S], e T, r *fork[T, S]) *fork[T, S] {
	if spare == nil {
		return t.newFork(l, e, r)
	}
	m := t.cfg.Monoid
	spare.left, spare.elem, spare.right = l, e, r
	spare.summary = m.Add(m.Add(t.summaryOf(l), e.Summary()), t.summaryOf(r))
	return spare
}

// spareNode returns n as a recyclable node if the tree owns it exclusively.
func (t *Tree[T, S]) spareNode(n *fork[T, S]) *fork[T, S] {
	if t.cfg.Ownership == Exclusive {
		return n
	}
	return nil
}

// owned returns a fork the caller may mutate: n itself under Exclusive
// ownership, a shallow copy under Shared.
func (t *Tree[T, S]) owned(n *fork[T, S]) *fork[T, S] {
	if t.cfg.Ownership == Exclusive {
		return n
	}
	cloned := *n
	return &cloned
}

func (t *Tree[T, S]) summaryOf(n *fork[T, S]) S {
	if n == nil {
		return t.cfg.Monoid.Zero()
	}
	return n.summary
}
