package prep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropNaN(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name string
		x    []float64
		want []float64
	}{
		{"Middle", []float64{1, nan, 2}, []float64{1, 2}},
		{"Edges", []float64{nan, 1, 2, nan}, []float64{1, 2}},
		{"Clean", []float64{1, 2}, []float64{1, 2}},
		{"All NaN", []float64{nan, nan}, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DropNaN(tt.x))
		})
	}
}

func TestDropNaN_KeepsInf(t *testing.T) {
	inf := math.Inf(1)

	assert.Equal(t, []float64{1, inf, 2}, DropNaN([]float64{1, inf, 2}))
}

func TestDropNonFinite(t *testing.T) {
	x := []float64{1, math.Inf(1), math.NaN(), 2, math.Inf(-1)}

	assert.Equal(t, []float64{1, 2}, DropNonFinite(x))
}

func TestDropNaN_DoesNotMutateInput(t *testing.T) {
	x := []float64{1, math.NaN(), 2}

	got := DropNaN(x)

	require.Len(t, x, 3)
	assert.True(t, math.IsNaN(x[1]))
	assert.NotSame(t, &x[0], &got[0])
}

func TestNormalize(t *testing.T) {
	x := []float64{2, 4}

	assert.Equal(t, []float64{0.5, 1.0}, Normalize(x))

	// Input stays untouched
	assert.Equal(t, []float64{2, 4}, x)
}

func TestNormalize_ZeroMaxIsNotGuarded(t *testing.T) {
	got := Normalize([]float64{0, 0})

	// 0 * (1/0) is NaN; the function documents this as caller responsibility
	for _, v := range got {
		assert.True(t, math.IsNaN(v))
	}
}

func TestNormalizeTo(t *testing.T) {
	x := []float64{1, 2}
	ref := []float64{3, 6}

	assert.Equal(t, []float64{3, 6}, NormalizeTo(x, ref))
	assert.Equal(t, []float64{1, 2}, x)
}

func TestNormalize_EmptyPanics(t *testing.T) {
	assert.Panics(t, func() { Normalize(nil) })
}
