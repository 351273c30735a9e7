// Package resample builds Monte Carlo simulated data sets from observed
// samples with the bootstrap algorithm, and estimates confidence intervals
// from the resulting replicate distributions.
package resample

import (
	"math/rand"
	"time"

	"github.com/astrogrind/crunch/pkg/core"
)

// Source yields uniform random integers in [0,n). *math/rand.Rand
// satisfies it; tests can plug in a deterministic stand-in.
type Source interface {
	Intn(n int) int
}

// Resampler draws bootstrap samples from a Source it owns. It adds no
// locking of its own: share one across goroutines only if the Source is
// safe to share.
type Resampler struct {
	src Source
}

// Option configures a Resampler.
type Option func(*Resampler)

// WithSource sets the random-integer source.
func WithSource(src Source) Option {
	return func(r *Resampler) { r.src = src }
}

// WithSeed gives the Resampler its own math/rand generator seeded with
// seed, for reproducible draws.
func WithSeed(seed int64) Option {
	return func(r *Resampler) { r.src = rand.New(rand.NewSource(seed)) }
}

// New creates a Resampler. Without options it owns a time-seeded math/rand
// generator.
func New(opts ...Option) *Resampler {
	r := &Resampler{}
	for _, opt := range opts {
		opt(r)
	}

	if r.src == nil {
		source := rand.NewSource(time.Now().UnixNano())
		r.src = rand.New(source)
	}
	return r
}

// Draw returns n indices drawn uniformly with replacement from [0,n).
func (r *Resampler) Draw(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = r.src.Intn(n)
	}
	return idx
}

// Bootstrap returns one simulated data set: x re-indexed by a fresh draw
// of len(x) indexes. The result is a new slice that may repeat elements;
// x is left unmodified. Each call is an independent draw, so invoke it
// once per bootstrap sample.
func (r *Resampler) Bootstrap(x []float64) []float64 {
	return core.Take(x, r.Draw(len(x)))
}

// BootstrapSet resamples several parallel arrays with one shared draw:
// element k of every output refers to the same drawn object, so the
// pairing between arrays survives the simulation.
// Precondition: all arrays have the same length. The draw range comes
// from the first array, and a shorter later array panics on indexing.
func (r *Resampler) BootstrapSet(xs ...[]float64) [][]float64 {
	if len(xs) == 0 {
		return nil
	}

	idx := r.Draw(len(xs[0]))

	out := make([][]float64, len(xs))
	for i, x := range xs {
		out[i] = core.Take(x, idx)
	}
	return out
}

// Sample resamples a single sequence of any element type with its own
// fresh draw.
func Sample[T any](r *Resampler, s []T) []T {
	return core.Take(s, r.Draw(len(s)))
}
