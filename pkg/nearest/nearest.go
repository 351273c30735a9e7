package nearest

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Index returns the index of the element of x with the value nearest ref,
// i.e. the index minimizing |x[i]-ref|. Ties resolve to the lowest index.
// Panics if x is empty.
func Index(x []float64, ref float64) int {
	diff := make([]float64, len(x))
	for i, v := range x {
		diff[i] = math.Abs(v - ref)
	}
	return floats.MinIdx(diff)
}

// Indexes returns the nearest-element index in x for each reference value,
// in refs order.
func Indexes(x []float64, refs []float64) []int {
	idx := make([]int, len(refs))
	for i, ref := range refs {
		idx[i] = Index(x, ref)
	}
	return idx
}
