package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantile(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	assert.Equal(t, 3.0, Quantile(values, 0.5))
	assert.Equal(t, 1.0, Quantile(values, 0))
	assert.Equal(t, 5.0, Quantile(values, 1))
	assert.Equal(t, 2.0, Quantile(values, 0.25))
}

func TestQuantileInterpolates(t *testing.T) {
	values := []float64{1, 2, 3, 4}

	assert.InDelta(t, 2.5, Quantile(values, 0.5), 1e-9)
}

func TestQuantileEmptyAndClamped(t *testing.T) {
	assert.Zero(t, Quantile(nil, 0.5))
	assert.Equal(t, 5.0, Quantile([]float64{1, 5}, 2))
	assert.Equal(t, 1.0, Quantile([]float64{1, 5}, -1))
}

func TestQuantileDoesNotMutateInput(t *testing.T) {
	values := []float64{5, 1, 3}

	Quantile(values, 0.5)

	assert.Equal(t, []float64{5, 1, 3}, values)
}

func TestPercentile(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	assert.Equal(t, 3.0, Percentile(values, 50))
	assert.Equal(t, 5.0, Percentile(values, 150))
}

func TestPercentiles(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}

	results := Percentiles(values, []float64{0, 50, 100})

	assert.Equal(t, []float64{10, 30, 50}, results)
	assert.Equal(t, []float64{0, 0}, Percentiles(nil, []float64{25, 75}))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 2.0, Median([]float64{3, 1, 2}))
	assert.InDelta(t, 1.5, Median([]float64{1, 2}), 1e-9)
}

func TestPercentileRank(t *testing.T) {
	values := []float64{1, 2, 3, 4}

	assert.Equal(t, 50.0, PercentileRank(values, 2))
	assert.Equal(t, 100.0, PercentileRank(values, 10))
	assert.Zero(t, PercentileRank(nil, 1))
}
