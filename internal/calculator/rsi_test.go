package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monotonic(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

func TestRSISeriesWarmupGap(t *testing.T) {
	closes := monotonic(100, 1, 20)

	out, err := RSISeries(closes, 14)
	require.NoError(t, err)
	require.Len(t, out, len(closes))

	for i := 0; i < 14; i++ {
		assert.True(t, math.IsNaN(out[i]), "index %d should be warm-up NaN", i)
	}
	for i := 14; i < len(out); i++ {
		assert.False(t, math.IsNaN(out[i]), "index %d should hold a value", i)
	}
}

func TestRSISeriesMonotonicUp(t *testing.T) {
	out, err := RSISeries(monotonic(100, 1, 20), 14)
	require.NoError(t, err)
	assert.Equal(t, 100.0, out[len(out)-1])
}

func TestRSISeriesMonotonicDown(t *testing.T) {
	out, err := RSISeries(monotonic(100, -1, 20), 14)
	require.NoError(t, err)
	assert.Equal(t, 0.0, out[len(out)-1])
}

func TestRSISeriesFlat(t *testing.T) {
	out, err := RSISeries(monotonic(100, 0, 20), 14)
	require.NoError(t, err)
	assert.Equal(t, 50.0, out[len(out)-1])
}

func TestRSISeriesKnownValues(t *testing.T) {
	// period 2 over 1,2,3,2: full-gain window then an even split.
	out, err := RSISeries([]float64{1, 2, 3, 2}, 2)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
	assert.Equal(t, 100.0, out[2])
	assert.InDelta(t, 50.0, out[3], 1e-9)
}

func TestRSISeriesBounds(t *testing.T) {
	closes := []float64{100, 103, 99, 105, 101, 108, 104, 110, 107, 112, 109, 115, 111, 118, 114, 120}

	out, err := RSISeries(closes, 14)
	require.NoError(t, err)
	for i := 14; i < len(out); i++ {
		assert.GreaterOrEqual(t, out[i], 0.0)
		assert.LessOrEqual(t, out[i], 100.0)
	}
}

func TestRSISeriesTooFewCloses(t *testing.T) {
	out, err := RSISeries([]float64{100}, 14)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, math.IsNaN(out[0]))
}

func TestRSISeriesInvalidPeriod(t *testing.T) {
	_, err := RSISeries([]float64{1, 2, 3}, 0)
	assert.Error(t, err)
}
