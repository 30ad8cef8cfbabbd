package sumtree

// SplitKind classifies the outcome of SplitWhere.
type SplitKind int

const (
	// SplitAllLeft means the predicate never became true: the whole input
	// lies before the boundary and is returned as Left.
	SplitAllLeft SplitKind = iota
	// SplitAllRight means the predicate was already true at the empty
	// prefix: the whole input lies after the boundary and is returned as
	// Right.
	SplitAllRight
	// SplitFound is the genuine three-way partition around Boundary.
	SplitFound
	// SplitNonMonotonic means the predicate flipped back from true to
	// false, violating the SplitWhere contract. Left and Right carry the
	// partial partitions so callers can diagnose the predicate, with no
	// element dropped.
	SplitNonMonotonic
)

func (k SplitKind) String() string {
	switch k {
	case SplitAllLeft:
		return "all-left"
	case SplitAllRight:
		return "all-right"
	case SplitFound:
		return "found"
	case SplitNonMonotonic:
		return "non-monotonic"
	}
	return "invalid"
}

// Split is the outcome of SplitWhere. Left and Right are always non-nil
// trees; Boundary is meaningful only for Kind == SplitFound.
type Split[T Summarized[S], S any] struct {
	Kind     SplitKind
	Left     *Tree[T, S]
	Boundary T
	Right    *Tree[T, S]
}

// SplitWhere partitions the sequence at the unique element where pred,
// evaluated over the running prefix summary, flips from false to true.
//
// pred must be monotonic over prefix accumulation: once true for some
// prefix, it must stay true for every longer prefix. For a monotonic pred
// the outcome is SplitFound with
//
//	in-order(Left) ++ [Boundary] ++ in-order(Right) == in-order(t)
//
// where pred is false on Left's total summary and true once Boundary is
// included, or SplitAllLeft/SplitAllRight when the flip lies outside the
// sequence. A non-monotonic pred is reported as SplitNonMonotonic rather
// than silently coerced into a valid-looking partition.
//
// Under Exclusive ownership the receiver is consumed. A nil receiver is
// treated as an empty sequence and classified as SplitAllLeft.
func (t *Tree[T, S]) SplitWhere(pred func(S) bool) Split[T, S] {
	if t == nil {
		empty := &Tree[T, S]{}
		return Split[T, S]{Kind: SplitAllLeft, Left: empty, Right: empty}
	}
	m := t.cfg.Monoid
	v := m.Zero()
	var left, right *fork[T, S]
	cur := t.root
	for cur != nil {
		vl := m.Add(v, t.summaryOf(cur.left))
		if pred(vl) {
			// Boundary lies within or before the left subtree; the pending
			// element and right subtree go in front of the right accumulation.
			single := t.newFork(nil, cur.elem, nil)
			right = t.concatForks(t.concatForks(single, cur.right), right)
			cur = cur.left
			continue
		}
		vla := m.Add(vl, cur.elem.Summary())
		if pred(vla) {
			return Split[T, S]{
				Kind:     SplitFound,
				Left:     &Tree[T, S]{cfg: t.cfg, root: t.concatForks(left, cur.left)},
				Boundary: cur.elem,
				Right:    &Tree[T, S]{cfg: t.cfg, root: t.concatForks(cur.right, right)},
			}
		}
		v = vla
		single := t.newFork(nil, cur.elem, nil)
		left = t.concatForks(t.concatForks(left, cur.left), single)
		cur = cur.right
	}
	outcome := Split[T, S]{
		Left:  &Tree[T, S]{cfg: t.cfg, root: left},
		Right: &Tree[T, S]{cfg: t.cfg, root: right},
	}
	switch {
	case left == nil && right == nil:
		// Empty input; v is still Zero here.
		if pred(v) {
			outcome.Kind = SplitAllRight
		} else {
			outcome.Kind = SplitAllLeft
		}
	case left == nil:
		outcome.Kind = SplitAllRight
	case right == nil:
		outcome.Kind = SplitAllLeft
	default:
		tracer().Errorf("sumtree split: predicate is not monotonic")
		outcome.Kind = SplitNonMonotonic
	}
	return outcome
}
