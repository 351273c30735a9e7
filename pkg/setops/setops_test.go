package setops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrogrind/crunch/pkg/core"
)

func TestIndexAnd(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		y    []float64
		want []int
	}{
		{"Disjoint", []float64{1, 2, 3}, []float64{4, 5}, []int{}},
		{"Partial", []float64{1, 2, 3, 4}, []float64{2, 4, 9}, []int{1, 3}},
		{"Duplicates in x", []float64{5, 1, 5, 2}, []float64{5}, []int{0, 2}},
		{"All present", []float64{7, 8}, []float64{8, 7}, []int{0, 1}},
		{"Empty x", []float64{}, []float64{1}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IndexAnd(tt.x, tt.y))
		})
	}
}

func TestIndexNot(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 4}

	assert.Equal(t, []int{0, 2}, IndexNot(x, y))
	assert.Equal(t, []int{0, 1, 2, 3}, IndexNot(x, nil))
}

// IndexAnd and IndexNot must partition range(len(x)) between them.
func TestIndexAnd_IndexNot_Partition(t *testing.T) {
	x := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	y := []float64{1, 9, 100}

	and := IndexAnd(x, y)
	not := IndexNot(x, y)

	require.Equal(t, len(x), len(and)+len(not))

	seen := make(map[int]bool)
	for _, i := range and {
		seen[i] = true
	}
	for _, i := range not {
		require.False(t, seen[i], "index %d returned by both", i)
		seen[i] = true
	}
	for i := range x {
		assert.True(t, seen[i], "index %d missing from both", i)
	}
}

func TestIndexAnd_NaNNeverMatches(t *testing.T) {
	nan := math.NaN()

	assert.Empty(t, IndexAnd([]float64{nan}, []float64{nan}))
	assert.Equal(t, []int{0}, IndexNot([]float64{nan}, []float64{nan}))
}

func TestAlignIndex(t *testing.T) {
	x := []float64{30, 10, 20}
	y := []float64{10, 30}

	idx, err := AlignIndex(x, y)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, idx)

	// Reordering x through the indices reproduces y exactly
	assert.Equal(t, y, core.Take(x, idx))
}

func TestAlignIndex_Missing(t *testing.T) {
	_, err := AlignIndex([]float64{1, 2}, []float64{2, 7})

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrValueNotFound)
}

func TestAlignIndex_DuplicatesPickLowest(t *testing.T) {
	x := []string{"a", "b", "a"}

	idx, err := AlignIndex(x, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, idx)
}

func TestIndexAndStrings(t *testing.T) {
	catalog := []string{"ngc1275", "m87", "cyga", "sgra"}
	detected := []string{"sgra", "m87"}

	assert.Equal(t, []int{1, 3}, IndexAndStrings(catalog, detected))
	assert.Equal(t, []int{0, 2}, IndexNotStrings(catalog, detected))
}
