package collector

import "errors"

var (
	// ErrInvalidSymbol means the provider responded but the quote is
	// unusable: the symbol is unknown or the current price is missing.
	ErrInvalidSymbol = errors.New("invalid stock symbol")

	// ErrNoHistoricalData means the quote exists but the daily history
	// required for indicators is empty.
	ErrNoHistoricalData = errors.New("no historical data available")
)
