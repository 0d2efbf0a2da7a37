package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovingAverageSeries(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5}

	out, err := MovingAverageSeries(closes, 3)
	require.NoError(t, err)
	require.Len(t, out, len(closes))

	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
	assert.InDelta(t, 2.0, out[2], 1e-9)
	assert.InDelta(t, 3.0, out[3], 1e-9)
	assert.InDelta(t, 4.0, out[4], 1e-9)
}

func TestMovingAverageSeriesWindowOne(t *testing.T) {
	closes := []float64{10, 20, 30}

	out, err := MovingAverageSeries(closes, 1)
	require.NoError(t, err)
	assert.Equal(t, closes, out)
}

func TestMovingAverageSeriesShortSeries(t *testing.T) {
	out, err := MovingAverageSeries([]float64{1, 2}, 5)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, v := range out {
		assert.True(t, math.IsNaN(v))
	}
}

func TestMovingAverageSeriesInvalidWindow(t *testing.T) {
	_, err := MovingAverageSeries([]float64{1, 2, 3}, 0)
	assert.Error(t, err)

	_, err = MovingAverageSeries([]float64{1, 2, 3}, -5)
	assert.Error(t, err)
}

func TestMovingAverageSeriesEmptyInput(t *testing.T) {
	out, err := MovingAverageSeries(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, out)
}
