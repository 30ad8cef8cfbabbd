package sumtree

import "fmt"

// Check validates the cached-summary invariant and the configuration.
//
// Summaries are recomputed from scratch, bottom-up, and compared with the
// cached values using eq. A nil eq checks configuration and structure only;
// summary equality cannot be decided generically, so tests supply it.
//
// This checker is intentionally strict and meant for tests.
func (t *Tree[T, S]) Check(eq func(a, b S) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if err := t.cfg.validate(); err != nil {
		return err
	}
	_, err := t.checkFork(t.root, eq)
	return err
}

// checkFork returns the independently recomputed summary of n.
func (t *Tree[T, S]) checkFork(n *fork[T, S], eq func(a, b S) bool) (S, error) {
	m := t.cfg.Monoid
	if n == nil {
		return m.Zero(), nil
	}
	ls, err := t.checkFork(n.left, eq)
	if err != nil {
		return m.Zero(), err
	}
	rs, err := t.checkFork(n.right, eq)
	if err != nil {
		return m.Zero(), err
	}
	want := m.Add(m.Add(ls, n.elem.Summary()), rs)
	if eq != nil && !eq(n.summary, want) {
		return m.Zero(), fmt.Errorf("%w: cached=%v recomputed=%v",
			ErrSummaryMismatch, n.summary, want)
	}
	return want, nil
}
