package sumtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("sumtree: invalid configuration")
	// ErrIncompatibleTrees signals that two trees cannot be combined, e.g.
	// because their ownership modes differ.
	ErrIncompatibleTrees = errors.New("sumtree: incompatible trees")
	// ErrSummaryMismatch is returned by Check when a cached node summary
	// disagrees with its independently recomputed value.
	ErrSummaryMismatch = errors.New("sumtree: cached summary mismatch")
)
