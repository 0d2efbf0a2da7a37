package collector

import (
	"context"
	"strings"

	"StockTracker/internal/model"
)

// Exchange suffixes recognized on Indian tickers.
const (
	SuffixNSE = ".NS"
	SuffixBSE = ".BO"
)

// Fetcher defines the market-data provider boundary. Implementations make
// one outbound call per invocation; there is no caching layer.
type Fetcher interface {
	// FetchQuote returns the current snapshot for a normalized symbol.
	FetchQuote(ctx context.Context, symbol string) (model.QuoteSnapshot, error)
	// FetchDailyHistory returns up to one year of daily bars, ascending by
	// date with no duplicate dates.
	FetchDailyHistory(ctx context.Context, symbol string) ([]model.OHLCV, error)
	Name() string
}

// NormalizeSymbol trims and uppercases a ticker and appends the default NSE
// suffix when neither recognized exchange suffix is present. Index symbols
// (prefixed with '^') pass through untouched beyond uppercasing. Normalizing
// twice yields the same result as normalizing once.
func NormalizeSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" || strings.HasPrefix(s, "^") {
		return s
	}
	if strings.HasSuffix(s, SuffixNSE) || strings.HasSuffix(s, SuffixBSE) {
		return s
	}
	return s + SuffixNSE
}
