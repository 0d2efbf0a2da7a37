package model

import "time"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds up to one year of daily bars for a symbol,
// ascending by date with no duplicate dates.
type PriceSeries struct {
	Symbol    string
	Bars      []OHLCV
	FetchedAt time.Time
}

// Closes extracts the close column from the series.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// QuoteSnapshot is one provider quote for one symbol at one instant.
// Every field except Symbol may be absent. A snapshot without a current
// price is unusable and must be reported as a failed fetch, never
// rendered partially.
type QuoteSnapshot struct {
	Symbol         string
	Name           string
	CurrentPrice   *float64
	PreviousClose  *float64
	Open           *float64
	DayHigh        *float64
	DayLow         *float64
	High52W        *float64
	Low52W         *float64
	MarketCap      *float64
	Volume         *float64
	TrailingPE     *float64
	TrailingEPS    *float64
	DividendYield  *float64 // fraction, e.g. 0.02 for 2%
	ReturnOnEquity *float64 // percent, e.g. 18.5 for 18.5%
	Sector         string
}

// StockData is the enriched result for a single symbol: the raw quote,
// the daily history, and the indicators derived from that history.
type StockData struct {
	Symbol     string
	Snapshot   QuoteSnapshot
	Series     PriceSeries
	Indicators IndicatorSeries
}
