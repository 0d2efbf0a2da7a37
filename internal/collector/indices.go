package collector

import (
	"context"

	"StockTracker/internal/model"
)

// Index identifies one of the tracked benchmark indices.
type Index struct {
	Name   string
	Symbol string
}

// TrackedIndices are the benchmarks shown on the home view.
var TrackedIndices = []Index{
	{Name: "NIFTY 50", Symbol: "^NSEI"},
	{Name: "SENSEX", Symbol: "^BSESN"},
	{Name: "BANK NIFTY", Symbol: "^NSEBANK"},
}

// IndexResult carries one index's enriched data or its fetch failure.
type IndexResult struct {
	Index Index
	Data  *model.StockData
	Err   error
}

// CollectIndices fetches every tracked index through the same enrichment
// pipeline. Per-index failures are isolated; the caller decides how to
// render them.
func (c *Collector) CollectIndices(ctx context.Context) []IndexResult {
	results := make([]IndexResult, len(TrackedIndices))
	for i, idx := range TrackedIndices {
		data, err := c.Collect(ctx, idx.Symbol)
		if err != nil {
			c.logger.Warn().Err(err).Str("index", idx.Name).Msg("index fetch failed")
		}
		results[i] = IndexResult{Index: idx, Data: data, Err: err}
	}
	return results
}
