package calculator

import (
	"errors"
	"math"
)

// MovingAverageSeries computes the simple moving average of the given closes
// over the specified window. The result has the same length as the input;
// position i is the mean of the trailing window ending at i, and the first
// window-1 positions are NaN while the window is still filling.
func MovingAverageSeries(closes []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}

	out := make([]float64, len(closes))
	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		} else {
			out[i] = math.NaN()
		}
	}
	return out, nil
}
