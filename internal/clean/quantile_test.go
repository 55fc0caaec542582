package clean

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantile(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		p      float64
		want   float64
	}{
		{"first quartile of 1..10 with outlier", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}, 0.25, 3.25},
		{"third quartile of 1..10 with outlier", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}, 0.75, 7.75},
		{"exact rank", []float64{1, 2, 3, 4, 5}, 0.25, 2},
		{"unsorted input", []float64{4, 1, 3, 2}, 0.5, 2.5},
		{"single value", []float64{42}, 0.75, 42},
		{"constant", []float64{5, 5, 5, 5}, 0.25, 5},
		{"minimum", []float64{3, 1, 2}, 0, 1},
		{"maximum", []float64{3, 1, 2}, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Quantile(tt.values, tt.p), 1e-9)
		})
	}

	t.Run("does not reorder input", func(t *testing.T) {
		values := []float64{3, 1, 2}
		Quantile(values, 0.5)
		assert.Equal(t, []float64{3, 1, 2}, values)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.True(t, math.IsNaN(Quantile([]float64{}, 0.5)))
	})

	t.Run("float32", func(t *testing.T) {
		assert.InDelta(t, float32(1.5), Quantile([]float32{1, 2}, 0.5), 1e-6)
	})
}

func TestLerp(t *testing.T) {
	a, b := 0.1, float64(PrimeFill)

	t.Run("endpoints are exact", func(t *testing.T) {
		assert.Equal(t, a, lerp(a, b, 0))
		assert.Equal(t, b, lerp(a, b, 1))
	})

	t.Run("lower half measured from a", func(t *testing.T) {
		assert.Equal(t, a+(b-a)*0.25, lerp(a, b, 0.25))
	})

	t.Run("upper half measured from b", func(t *testing.T) {
		assert.Equal(t, b-(b-a)*0.25, lerp(a, b, 0.75))
		assert.Equal(t, b-(b-a)*0.5, lerp(a, b, 0.5))
	})

	t.Run("quantile uses the same weights", func(t *testing.T) {
		// rank 0.75*(2-1) = 0.75 between a and b
		assert.Equal(t, b-(b-a)*0.25, Quantile([]float64{b, a}, 0.75))
	})
}
