package resample

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Interval represents the confidence interval calculated by the bootstrap
// percentile method.
type Interval struct {
	Lower  float64 // Lower bound of the confidence interval
	Upper  float64 // Upper bound of the confidence interval
	Mean   float64 // Mean of the replicate statistics
	StdDev float64 // Standard deviation of the replicate statistics
}

// Interval estimates the confidence interval of measure over values:
// iterations bootstrap samples are drawn, measure is applied to each, and
// the percentile method summarizes the replicate distribution.
// confidence is the level, e.g. 0.95 for a 95% interval.
// An empty values slice yields a zero Interval.
func (r *Resampler) Interval(values []float64, measure Statistic,
	iterations int, confidence float64) Interval {

	if len(values) == 0 {
		return Interval{}
	}

	return Summarize(r.Replicates(values, measure, iterations), confidence)
}

// Replicates draws iterations bootstrap samples from values and applies
// measure to each, returning the replicate statistics.
func (r *Resampler) Replicates(values []float64, measure Statistic,
	iterations int) []float64 {

	data := make([]float64, 0, iterations)
	for i := 0; i < iterations; i++ {
		data = append(data, measure(r.Bootstrap(values)))
	}
	return data
}

// Summarize applies the percentile method to an existing replicate
// distribution. The input is not modified (a copy is sorted internally).
func Summarize(replicates []float64, confidence float64) Interval {
	if len(replicates) == 0 {
		return Interval{}
	}

	data := make([]float64, len(replicates))
	copy(data, replicates)
	sort.Float64s(data)

	tail := 1 - confidence
	mean, stdDev := stat.MeanStdDev(data, nil)

	return Interval{
		Lower:  stat.Quantile(tail/2, stat.LinInterp, data, nil),
		Upper:  stat.Quantile(1-tail/2, stat.LinInterp, data, nil),
		Mean:   mean,
		StdDev: stdDev,
	}
}
