package crunch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/astrogrind/crunch/internal/format"
	"github.com/astrogrind/crunch/pkg/core"
	"github.com/astrogrind/crunch/pkg/logger"
	"github.com/astrogrind/crunch/pkg/resample"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
)

const (
	defaultIterations = 10000
	defaultConfidence = 0.95
	defaultBins       = 15
)

// measure pairs a display name with the statistic it computes.
type measure struct {
	name string
	fn   resample.Statistic
}

// Experiment draws bootstrap samples from one observed data set and
// evaluates a set of statistics on every simulated sample.
type Experiment struct {
	values     core.Series[float64]
	resampler  *resample.Resampler
	iterations int
	confidence float64
	measures   []measure
	bins       int
	progress   bool
	logger     logger.Logger
}

// New creates an Experiment over values. Defaults: 10000 iterations, 95%
// confidence and mean, median and standard deviation as statistics.
func New(values []float64, options ...Option) (*Experiment, error) {
	if len(values) == 0 {
		return nil, core.ErrEmptySeries
	}

	exp := &Experiment{
		values:     append(core.Series[float64](nil), values...),
		iterations: defaultIterations,
		confidence: defaultConfidence,
		bins:       defaultBins,
		logger:     DefaultLog,
	}

	// Apply custom options
	for _, option := range options {
		option(exp)
	}

	if exp.confidence <= 0 || exp.confidence >= 1 {
		return nil, fmt.Errorf("confidence must be between 0 and 1: %v", exp.confidence)
	}

	if exp.iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive: %d", exp.iterations)
	}

	if exp.resampler == nil {
		exp.resampler = resample.New()
	}

	if len(exp.measures) == 0 {
		exp.measures = []measure{
			{name: "mean", fn: resample.Mean},
			{name: "median", fn: resample.Median},
			{name: "std dev", fn: resample.StdDev},
		}
	}

	return exp, nil
}

// Result holds the replicate distribution of one statistic together with
// its percentile interval.
type Result struct {
	Name       string
	Interval   resample.Interval
	Replicates []float64
}

// Report collects the results of a finished experiment.
type Report struct {
	Results    []Result
	Iterations int
	Confidence float64

	bins int
}

// Run draws the bootstrap samples and evaluates every statistic on each of
// them. All statistics see the same simulated sample within an iteration,
// so their replicate distributions stay comparable.
func (e *Experiment) Run(ctx context.Context) (*Report, error) {
	replicates := make([][]float64, len(e.measures))
	for i := range replicates {
		replicates[i] = make([]float64, 0, e.iterations)
	}

	var bar *progressbar.ProgressBar
	if e.progress {
		bar = progressbar.Default(int64(e.iterations))
	}

	for i := 0; i < e.iterations; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		sample := e.resampler.Bootstrap(e.values.Values())
		for j, m := range e.measures {
			replicates[j] = append(replicates[j], m.fn(sample))
		}

		if bar != nil {
			if err := bar.Add(1); err != nil {
				e.logger.Warnf("update progressbar fail: %v", err)
			}
		}
	}

	report := &Report{
		Iterations: e.iterations,
		Confidence: e.confidence,
		bins:       e.bins,
	}

	for j, m := range e.measures {
		report.Results = append(report.Results, Result{
			Name:       m.name,
			Interval:   resample.Summarize(replicates[j], e.confidence),
			Replicates: replicates[j],
		})
	}

	e.logger.WithFields(map[string]any{
		"samples":    e.values.Length(),
		"iterations": e.iterations,
		"statistics": len(e.measures),
	}).Debug("bootstrap finished")

	return report, nil
}

// Summary renders the report to w: a table with one interval per statistic
// followed by a text histogram of the first statistic's replicates.
func (r *Report) Summary(w io.Writer) {
	buffer := bytes.NewBuffer(nil)
	table := tablewriter.NewWriter(buffer)
	table.SetHeader([]string{"Statistic", "Estimate", "Lower", "Upper", "Std. Error"})
	table.SetFooterAlignment(tablewriter.ALIGN_RIGHT)

	for _, result := range r.Results {
		interval := result.Interval
		table.Append([]string{
			result.Name,
			format.Float(interval.Mean, 4),
			format.Float(interval.Lower, 4),
			format.Float(interval.Upper, 4),
			format.Float(interval.StdDev, 4),
		})
	}

	table.SetFooter([]string{
		"", "", "",
		"CONF. / ITER.",
		fmt.Sprintf("%.0f%% / %d", r.Confidence*100, r.Iterations),
	})
	table.Render()

	fmt.Fprintln(w, buffer.String())

	first := r.Results[0]
	fmt.Fprintf(w, "------ %s REPLICATES ------\n", strings.ToUpper(first.Name))
	hist := histogram.Hist(r.bins, first.Replicates)
	histogram.Fprint(w, hist, histogram.Linear(10))
	fmt.Fprintln(w)
}
