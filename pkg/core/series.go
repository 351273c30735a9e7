package core

import (
	"golang.org/x/exp/constraints"
)

// Series is an ordered sequence of measurements
// It provides positional access to the most recent values
type Series[T constraints.Ordered] []T

// Values returns the underlying slice of values
func (s Series[T]) Values() []T {
	return s
}

// Length returns the number of values in the series
func (s Series[T]) Length() int {
	return len(s)
}

// Last returns the value at a specified position from the end
// position 0 is the last value, 1 is the second-to-last, etc.
func (s Series[T]) Last(position int) T {
	return s[len(s)-1-position]
}

// LastValues returns a slice with the last 'size' values
// If size exceeds the length, returns the entire series
func (s Series[T]) LastValues(size int) Series[T] {
	if l := len(s); l > size {
		return s[l-size:]
	}
	return s
}

// Take gathers the elements of s selected by indexes into a new slice,
// in index order. Repeated indexes are allowed, so the result of a
// bootstrap draw or an alignment lookup can be materialized directly.
// Indexes outside [0, len(s)) panic with the usual runtime range error.
func Take[T any](s []T, indexes []int) []T {
	out := make([]T, len(indexes))
	for i, idx := range indexes {
		out[i] = s[idx]
	}
	return out
}
