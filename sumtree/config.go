package sumtree

import "fmt"

// Summarized ties an element to its summary type at compile time.
type Summarized[S any] interface {
	Summary() S
}

// Monoid defines how element summaries are aggregated up the tree.
//
// For summaries s, t, u, Add must be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero must be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
type Monoid[S any] interface {
	Zero() S
	Add(left, right S) S
}

// Ownership selects the node ownership strategy of a tree.
type Ownership int

const (
	// Shared treats nodes as immutable once built. Trees may reference the
	// same subtrees, Clone is O(1), and operations allocate only the spine
	// nodes they construct. Use this whenever prior versions of a sequence
	// must stay valid after producing a new one.
	Shared Ownership = iota
	// Exclusive gives each node a single owning tree. Operations consume
	// their operands (the inputs must not be used afterwards) and are free
	// to rewire spine nodes in place instead of allocating.
	Exclusive
)

func (o Ownership) String() string {
	switch o {
	case Shared:
		return "shared"
	case Exclusive:
		return "exclusive"
	}
	return fmt.Sprintf("Ownership(%d)", int(o))
}

// Config configures a measured sequence tree.
type Config[T Summarized[S], S any] struct {
	// Monoid aggregates summaries up the tree.
	Monoid Monoid[S]
	// Ownership selects the node ownership strategy; the zero value is Shared.
	Ownership Ownership
}

func (cfg Config[T, S]) validate() error {
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	if cfg.Ownership != Shared && cfg.Ownership != Exclusive {
		return fmt.Errorf("%w: unknown ownership mode %d", ErrInvalidConfig, int(cfg.Ownership))
	}
	return nil
}
