package resample

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Statistic reduces a sample to a single number, such as its mean. It is
// the measure evaluated on every bootstrap replicate.
type Statistic func([]float64) float64

// Mean calculates the arithmetic mean of the values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// Median calculates the middle value, averaging the two central values
// when the count is even. The input is not modified.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// StdDev calculates the sample standard deviation of the values.
// Fewer than two values yield 0.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}

// Quantile returns a Statistic computing the p-quantile (p in [0,1]) with
// linear interpolation. Each call sorts a copy of its input.
func Quantile(p float64) Statistic {
	return func(values []float64) float64 {
		if len(values) == 0 {
			return 0
		}

		sorted := make([]float64, len(values))
		copy(sorted, values)
		sort.Float64s(sorted)

		return stat.Quantile(p, stat.LinInterp, sorted, nil)
	}
}
