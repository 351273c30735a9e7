package prep

import (
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
)

// DropNaN returns a new slice with the NaN entries of x removed.
// The relative order of the remaining elements is preserved and x is
// left unmodified.
func DropNaN(x []float64) []float64 {
	return lo.Filter(x, func(v float64, _ int) bool {
		return !math.IsNaN(v)
	})
}

// DropNonFinite returns a new slice with NaN, +Inf and -Inf entries of x
// removed, preserving the order of the remaining elements.
func DropNonFinite(x []float64) []float64 {
	return lo.Filter(x, func(v float64, _ int) bool {
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	})
}

// Normalize returns a new slice holding x divided by its own maximum, so
// the largest element becomes 1.
// A zero maximum is not guarded: the result is non-finite and dealing with
// it is the caller's responsibility. Panics if x is empty.
func Normalize(x []float64) []float64 {
	out := make([]float64, len(x))
	floats.ScaleTo(out, 1/floats.Max(x), x)
	return out
}

// NormalizeTo returns a new slice holding x rescaled so its maximum equals
// the maximum of ref: x * max(ref) / max(x).
// Same zero-maximum caveat as Normalize. Panics if either slice is empty.
func NormalizeTo(x, ref []float64) []float64 {
	out := make([]float64, len(x))
	floats.ScaleTo(out, floats.Max(ref)/floats.Max(x), x)
	return out
}
