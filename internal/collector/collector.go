package collector

import (
	"context"
	"fmt"
	"time"

	"StockTracker/internal/calculator"
	"StockTracker/internal/common"
	"StockTracker/internal/model"
)

// Collector orchestrates the single-stock enrichment pipeline: fetch quote
// and history, then derive the indicator series. The first failure surfaces
// directly; no partial result is returned.
type Collector struct {
	fetcher   Fetcher
	rsiPeriod int
	logger    *common.Logger
}

// NewCollector creates a new Collector. rsiPeriod <= 0 falls back to 14.
func NewCollector(fetcher Fetcher, rsiPeriod int, logger *common.Logger) *Collector {
	if rsiPeriod <= 0 {
		rsiPeriod = 14
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Collector{fetcher: fetcher, rsiPeriod: rsiPeriod, logger: logger}
}

// Collect fetches and enriches one symbol. The symbol is normalized first,
// so callers may pass raw user input.
func (c *Collector) Collect(ctx context.Context, symbol string) (*model.StockData, error) {
	sym := NormalizeSymbol(symbol)

	snap, err := c.fetcher.FetchQuote(ctx, sym)
	if err != nil {
		return nil, fmt.Errorf("fetch quote: %w", err)
	}
	if snap.CurrentPrice == nil {
		return nil, fmt.Errorf("fetch quote: %s: %w", sym, ErrInvalidSymbol)
	}

	bars, err := c.fetcher.FetchDailyHistory(ctx, sym)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("fetch history: %s: %w", sym, ErrNoHistoricalData)
	}

	series := model.PriceSeries{Symbol: sym, Bars: bars, FetchedAt: time.Now()}
	closes := series.Closes()

	ma20, _ := calculator.MovingAverageSeries(closes, 20)
	ma50, _ := calculator.MovingAverageSeries(closes, 50)
	ma200, _ := calculator.MovingAverageSeries(closes, 200)
	rsi, _ := calculator.RSISeries(closes, c.rsiPeriod)

	// Derive missing 52-week extremes from the history itself.
	if snap.High52W == nil || snap.Low52W == nil {
		if high, low, rerr := calculator.RangeHighLow(bars, calculator.TradingDays52W); rerr == nil {
			if snap.High52W == nil {
				snap.High52W = &high
			}
			if snap.Low52W == nil {
				snap.Low52W = &low
			}
			c.logger.Debug().Str("symbol", sym).Msg("52-week range derived from history")
		} else {
			c.logger.Warn().Err(rerr).Str("symbol", sym).Msg("52-week range unavailable")
		}
	}

	return &model.StockData{
		Symbol:   sym,
		Snapshot: snap,
		Series:   series,
		Indicators: model.IndicatorSeries{
			MA20:      ma20,
			MA50:      ma50,
			MA200:     ma200,
			RSI:       rsi,
			RSIPeriod: c.rsiPeriod,
		},
	}, nil
}
