package resample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplicates(t *testing.T) {
	r := New(WithSource(&seqSource{seq: []int{0, 0, 0, 1, 1, 1}}))

	got := r.Replicates([]float64{10, 20, 30}, Mean, 2)

	assert.Equal(t, []float64{10, 20}, got)
}

func TestInterval_Deterministic(t *testing.T) {
	r := New(WithSource(&seqSource{seq: []int{0, 1, 2}}))

	iv := r.Interval([]float64{10, 20, 30}, Mean, 50, 0.95)

	assert.Equal(t, 20.0, iv.Lower)
	assert.Equal(t, 20.0, iv.Upper)
	assert.Equal(t, 20.0, iv.Mean)
	assert.Equal(t, 0.0, iv.StdDev)
}

func TestInterval_Seeded(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}

	r := New(WithSeed(11))
	iv := r.Interval(values, Mean, 400, 0.9)

	assert.LessOrEqual(t, iv.Lower, iv.Mean)
	assert.LessOrEqual(t, iv.Mean, iv.Upper)
	assert.Less(t, iv.Lower, iv.Upper)
	assert.Greater(t, iv.StdDev, 0.0)
	// Population mean is 49.5 and the bootstrap standard error ~2.9,
	// so the replicate mean lands well inside this margin
	assert.InDelta(t, 49.5, iv.Mean, 5)
}

func TestInterval_Empty(t *testing.T) {
	r := New(WithSeed(1))

	assert.Equal(t, Interval{}, r.Interval(nil, Mean, 100, 0.95))
}

func TestSummarize(t *testing.T) {
	replicates := make([]float64, 100)
	for i := range replicates {
		replicates[i] = float64(i + 1)
	}

	iv := Summarize(replicates, 0.5)

	assert.InDelta(t, 25, iv.Lower, 1e-9)
	assert.InDelta(t, 75, iv.Upper, 1e-9)
	assert.InDelta(t, 50.5, iv.Mean, 1e-9)
	assert.InDelta(t, 29.0115, iv.StdDev, 1e-3)
}

func TestSummarize_DoesNotModifyInput(t *testing.T) {
	replicates := []float64{3, 1, 2}

	Summarize(replicates, 0.9)

	assert.Equal(t, []float64{3, 1, 2}, replicates)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Interval{}, Summarize(nil, 0.95))
}

func TestMean(t *testing.T) {
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 0.0, Mean(nil))
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "odd count", values: []float64{3, 1, 2}, want: 2},
		{name: "even count", values: []float64{1, 2, 3, 4}, want: 2.5},
		{name: "single value", values: []float64{7}, want: 7},
		{name: "empty", values: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Median(tt.values))
		})
	}
}

func TestMedian_DoesNotModifyInput(t *testing.T) {
	values := []float64{3, 1, 2}

	Median(values)

	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestStdDev(t *testing.T) {
	got := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	assert.InDelta(t, 2.13809, got, 1e-5)
}

func TestStdDev_TooFewValues(t *testing.T) {
	assert.Equal(t, 0.0, StdDev(nil))
	assert.Equal(t, 0.0, StdDev([]float64{4.2}))
}

func TestQuantile(t *testing.T) {
	tests := []struct {
		name   string
		p      float64
		values []float64
		want   float64
	}{
		{name: "median interpolates", p: 0.5, values: []float64{3, 1, 2}, want: 1.5},
		{name: "upper quartile", p: 0.75, values: []float64{0, 1, 2, 3}, want: 2},
		{name: "zero is minimum", p: 0, values: []float64{5, 7}, want: 5},
		{name: "one is maximum", p: 1, values: []float64{5, 7}, want: 7},
		{name: "empty", p: 0.5, values: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quantile(tt.p)(tt.values)

			require.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestQuantile_DoesNotModifyInput(t *testing.T) {
	values := []float64{9, 1, 5}

	Quantile(0.5)(values)

	assert.Equal(t, []float64{9, 1, 5}, values)
}
