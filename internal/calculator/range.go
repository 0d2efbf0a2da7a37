package calculator

import (
	"errors"
	"math"

	"StockTracker/internal/model"
)

// TradingDays52W is the number of trading days in a 52-week window.
const TradingDays52W = 252

// RangeHighLow scans the most recent `lookback` bars and returns the highest
// high and the lowest low. Used to derive the 52-week extremes when the
// provider quote omits them.
func RangeHighLow(bars []model.OHLCV, lookback int) (high, low float64, err error) {
	if len(bars) == 0 {
		return 0, 0, errors.New("no bars provided")
	}
	start := len(bars) - lookback
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < len(bars); i++ {
		if bars[i].High > high {
			high = bars[i].High
		}
		if bars[i].Low < low {
			low = bars[i].Low
		}
	}
	return high, low, nil
}
