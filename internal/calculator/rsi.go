package calculator

import (
	"errors"
	"math"
)

// RSISeries computes the Relative Strength Index over the given period using
// a simple rolling mean of gains and losses (not Wilder's smoothing). The
// result has the same length as the input; the first `period` positions are
// NaN since the oscillator needs one prior delta plus a full window.
//
// When the average loss is zero the division is undefined, so the value is
// pinned to exactly 100 when there were gains and 50 when the window was
// completely flat. NaN never appears past the warm-up gap.
func RSISeries(closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}

	out := make([]float64, len(closes))
	for i := range out {
		out[i] = math.NaN()
	}
	if len(closes) < 2 {
		return out, nil
	}

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	var gainSum, lossSum float64
	for i := 1; i < len(closes); i++ {
		gainSum += gains[i]
		lossSum += losses[i]
		if i > period {
			gainSum -= gains[i-period]
			lossSum -= losses[i-period]
		}
		if i < period {
			continue
		}
		out[i] = rsiValue(gainSum/float64(period), lossSum/float64(period))
	}
	return out, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50
		}
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
