package nearest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	x := []float64{0, 1, 2, 3}

	tests := []struct {
		name string
		ref  float64
		want int
	}{
		{"Interior", 2.1, 2},
		{"Below range", -5, 0},
		{"Above range", 9.7, 3},
		{"Exact hit", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Index(x, tt.ref))
		})
	}
}

func TestIndex_TieResolvesToLowest(t *testing.T) {
	// 1.5 is equidistant from 1 and 2
	assert.Equal(t, 1, Index([]float64{0, 1, 2, 3}, 1.5))
}

func TestIndexes(t *testing.T) {
	x := []float64{0, 1, 2, 3}

	assert.Equal(t, []int{1, 3}, Indexes(x, []float64{0.9, 3.2}))
	assert.Empty(t, Indexes(x, nil))
}

func TestIndex_EmptyPanics(t *testing.T) {
	assert.Panics(t, func() { Index(nil, 1) })
}
