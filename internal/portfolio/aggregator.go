// Package portfolio aggregates a basket of symbols into a snapshot with
// per-symbol rows and summary statistics.
package portfolio

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"StockTracker/internal/collector"
	"StockTracker/internal/common"
	"StockTracker/internal/marketclock"
	"StockTracker/internal/model"
)

// EmptyPortfolioError means every symbol in the batch failed to fetch.
type EmptyPortfolioError struct {
	Symbols []string
}

func (e *EmptyPortfolioError) Error() string {
	if len(e.Symbols) == 0 {
		return "no symbols provided"
	}
	return fmt.Sprintf("unable to fetch data for any symbol: %s", strings.Join(e.Symbols, ", "))
}

// Aggregator fetches each symbol independently and combines the results.
// Per-symbol failures never abort the batch.
type Aggregator struct {
	fetcher       collector.Fetcher
	maxConcurrent int
	fetchTimeout  time.Duration
	logger        *common.Logger
	now           func() time.Time // injectable clock for testing
}

// NewAggregator creates an Aggregator. Non-positive limits fall back to
// 4 concurrent fetches and a 15s per-fetch timeout.
func NewAggregator(fetcher collector.Fetcher, maxConcurrent int, fetchTimeout time.Duration, logger *common.Logger) *Aggregator {
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}
	if fetchTimeout <= 0 {
		fetchTimeout = 15 * time.Second
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Aggregator{
		fetcher:       fetcher,
		maxConcurrent: maxConcurrent,
		fetchTimeout:  fetchTimeout,
		logger:        logger,
		now:           time.Now,
	}
}

type fetchResult struct {
	snap model.QuoteSnapshot
	err  error
}

// Snapshot normalizes and fetches every symbol concurrently, then builds
// rows in input order plus the portfolio summary. If no symbol succeeds it
// returns an *EmptyPortfolioError naming every failed symbol.
func (a *Aggregator) Snapshot(ctx context.Context, symbols []string) (*model.PortfolioSnapshot, error) {
	if len(symbols) == 0 {
		return nil, &EmptyPortfolioError{}
	}

	normalized := make([]string, len(symbols))
	for i, s := range symbols {
		normalized[i] = collector.NormalizeSymbol(s)
	}

	// Fan out one bounded fetch per symbol. Results land at the symbol's
	// input index so aggregation order never depends on completion order.
	results := make([]fetchResult, len(normalized))
	sem := make(chan struct{}, a.maxConcurrent)
	var wg sync.WaitGroup
	for i, sym := range normalized {
		wg.Add(1)
		go func(i int, sym string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			fctx, cancel := context.WithTimeout(ctx, a.fetchTimeout)
			defer cancel()

			snap, err := a.fetcher.FetchQuote(fctx, sym)
			if err == nil && snap.CurrentPrice == nil {
				err = fmt.Errorf("%s: %w", sym, collector.ErrInvalidSymbol)
			}
			results[i] = fetchResult{snap: snap, err: err}
		}(i, sym)
	}
	wg.Wait()

	rows := make([]model.PortfolioRow, 0, len(normalized))
	var invalid []string
	for i, res := range results {
		if res.err != nil {
			a.logger.Warn().Err(res.err).Str("symbol", normalized[i]).Msg("symbol excluded from portfolio")
			invalid = append(invalid, normalized[i])
			continue
		}
		rows = append(rows, buildRow(normalized[i], res.snap))
	}

	if len(rows) == 0 {
		return nil, &EmptyPortfolioError{Symbols: invalid}
	}

	summary := summarize(rows)
	summary.InvalidSymbols = invalid
	summary.Timestamp = a.now().In(marketclock.IST)

	return &model.PortfolioSnapshot{Rows: rows, Summary: summary}, nil
}

func buildRow(symbol string, snap model.QuoteSnapshot) model.PortfolioRow {
	price := *snap.CurrentPrice

	row := model.PortfolioRow{Symbol: symbol, CurrentPrice: price}
	if prev := snap.PreviousClose; prev != nil {
		row.Change = price - *prev
		if *prev != 0 {
			row.ChangePct = row.Change / *prev * 100
		}
	}
	if h := snap.High52W; h != nil {
		row.High52W = *h
		if *h != 0 {
			row.DistanceFromHighPct = (*h - price) / *h * 100
		}
	}
	if l := snap.Low52W; l != nil {
		row.Low52W = *l
		if *l != 0 {
			row.DistanceFromLowPct = (price - *l) / *l * 100
		}
	}
	return row
}

func summarize(rows []model.PortfolioRow) model.PortfolioSummary {
	var s model.PortfolioSummary
	best, worst := 0, 0
	for i, r := range rows {
		s.TotalValue += r.CurrentPrice
		s.TotalChange += r.Change
		// Strict comparison keeps the first occurrence on ties.
		if r.ChangePct > rows[best].ChangePct {
			best = i
		}
		if r.ChangePct < rows[worst].ChangePct {
			worst = i
		}
	}
	s.BestPerformer = rows[best].Symbol
	s.WorstPerformer = rows[worst].Symbol

	// Change percent is measured against the value before today's change.
	if base := s.TotalValue - s.TotalChange; base != 0 {
		s.TotalChangePct = s.TotalChange / base * 100
	}
	return s
}
