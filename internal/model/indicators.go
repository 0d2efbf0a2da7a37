package model

import "math"

// IndicatorSeries holds derived sequences aligned index-for-index with the
// source bars. Positions before a window is filled hold NaN, matching the
// leading gap of a rolling window.
type IndicatorSeries struct {
	MA20      []float64
	MA50      []float64
	MA200     []float64
	RSI       []float64
	RSIPeriod int
}

// Last returns the final value of a derived sequence and whether it is
// usable (present and past the warm-up gap).
func Last(series []float64) (float64, bool) {
	if len(series) == 0 {
		return 0, false
	}
	v := series[len(series)-1]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func (s IndicatorSeries) LatestMA20() (float64, bool)  { return Last(s.MA20) }
func (s IndicatorSeries) LatestMA50() (float64, bool)  { return Last(s.MA50) }
func (s IndicatorSeries) LatestMA200() (float64, bool) { return Last(s.MA200) }
func (s IndicatorSeries) LatestRSI() (float64, bool)   { return Last(s.RSI) }
