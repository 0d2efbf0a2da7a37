package collector

import (
	"context"
	"fmt"
	"time"

	"StockTracker/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Symbols without a configured quote report ErrInvalidSymbol.
type MockFetcher struct {
	Quotes  map[string]model.QuoteSnapshot
	History map[string][]model.OHLCV
	Errs    map[string]error
	Delay   time.Duration
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchQuote(ctx context.Context, symbol string) (model.QuoteSnapshot, error) {
	if err := m.wait(ctx); err != nil {
		return model.QuoteSnapshot{}, err
	}
	if err, ok := m.Errs[symbol]; ok {
		return model.QuoteSnapshot{}, err
	}
	snap, ok := m.Quotes[symbol]
	if !ok {
		return model.QuoteSnapshot{}, fmt.Errorf("%s: %w", symbol, ErrInvalidSymbol)
	}
	return snap, nil
}

func (m *MockFetcher) FetchDailyHistory(ctx context.Context, symbol string) ([]model.OHLCV, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	if err, ok := m.Errs[symbol]; ok {
		return nil, err
	}
	bars, ok := m.History[symbol]
	if !ok || len(bars) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrNoHistoricalData)
	}
	return bars, nil
}

func (m *MockFetcher) wait(ctx context.Context) error {
	if m.Delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.Delay):
		return nil
	}
}

// GenerateBars produces a gently trending daily series around basePrice,
// ending today. Useful for fixtures.
func GenerateBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Date:   time.Now().UTC().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
