package crunch

import (
	"github.com/astrogrind/crunch/pkg/logger"
	"github.com/astrogrind/crunch/pkg/resample"
)

// Option is a functional option for configuring an Experiment.
type Option func(*Experiment)

// WithLogger replaces the default logger.
func WithLogger(log logger.Logger) Option {
	return func(e *Experiment) {
		e.logger = log
	}
}

// WithSeed gives the experiment a reproducible random source.
func WithSeed(seed int64) Option {
	return func(e *Experiment) {
		e.resampler = resample.New(resample.WithSeed(seed))
	}
}

// WithSource plugs in a custom random integer source.
func WithSource(src resample.Source) Option {
	return func(e *Experiment) {
		e.resampler = resample.New(resample.WithSource(src))
	}
}

// WithIterations sets how many bootstrap samples are drawn.
func WithIterations(n int) Option {
	return func(e *Experiment) {
		e.iterations = n
	}
}

// WithConfidence sets the confidence level of the reported intervals,
// e.g. 0.95 for a 95% interval.
func WithConfidence(c float64) Option {
	return func(e *Experiment) {
		e.confidence = c
	}
}

// WithStatistic adds a named statistic to evaluate on every simulated
// sample. The first call replaces the default set.
func WithStatistic(name string, fn resample.Statistic) Option {
	return func(e *Experiment) {
		e.measures = append(e.measures, measure{name: name, fn: fn})
	}
}

// WithHistogramBins sets the bin count of the summary histogram.
func WithHistogramBins(n int) Option {
	return func(e *Experiment) {
		e.bins = n
	}
}

// WithProgress toggles the progress bar during Run.
func WithProgress(enabled bool) Option {
	return func(e *Experiment) {
		e.progress = enabled
	}
}
