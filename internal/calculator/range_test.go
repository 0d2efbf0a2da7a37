package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockTracker/internal/model"
)

func TestRangeHighLow(t *testing.T) {
	bars := []model.OHLCV{
		{High: 110, Low: 90},
		{High: 130, Low: 95},
		{High: 120, Low: 85},
	}

	high, low, err := RangeHighLow(bars, TradingDays52W)
	require.NoError(t, err)
	assert.Equal(t, 130.0, high)
	assert.Equal(t, 85.0, low)
}

func TestRangeHighLowLookbackWindow(t *testing.T) {
	bars := []model.OHLCV{
		{High: 999, Low: 1}, // outside the lookback window
		{High: 110, Low: 90},
		{High: 120, Low: 95},
	}

	high, low, err := RangeHighLow(bars, 2)
	require.NoError(t, err)
	assert.Equal(t, 120.0, high)
	assert.Equal(t, 90.0, low)
}

func TestRangeHighLowNoBars(t *testing.T) {
	_, _, err := RangeHighLow(nil, TradingDays52W)
	assert.Error(t, err)
}
