package argsort

import (
	"sort"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
)

// Option configures how the indices are ordered.
type Option func(*config)

type config struct {
	descending bool
}

// Descending orders indices so the gathered values run highest first.
// The flip happens inside the comparator, so equal values still keep their
// original relative order.
func Descending() Option {
	return func(c *config) { c.descending = true }
}

// Indexes returns the list of indices into s ordered by the value each one
// points at, ascending by default. The sort is stable: equal values keep
// their original relative order, so repeated runs are reproducible.
// s itself is not reordered.
func Indexes[T constraints.Ordered](s []T, opts ...Option) []int {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	idx := make([]int, len(s))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool {
		if cfg.descending {
			return s[idx[a]] > s[idx[b]]
		}
		return s[idx[a]] < s[idx[b]]
	})

	return idx
}

// Float64s returns stable ascending sort indices for x. It sorts a scratch
// copy, so x is left unmodified.
func Float64s(x []float64) []int {
	vals := make([]float64, len(x))
	copy(vals, x)

	idx := make([]int, len(x))
	floats.ArgsortStable(vals, idx)
	return idx
}
