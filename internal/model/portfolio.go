package model

import "time"

// PortfolioRow holds the computed metrics for one successfully fetched
// symbol within a single snapshot call.
type PortfolioRow struct {
	Symbol              string
	CurrentPrice        float64
	Change              float64
	ChangePct           float64
	High52W             float64
	Low52W              float64
	DistanceFromHighPct float64
	DistanceFromLowPct  float64
}

// PortfolioSummary aggregates all rows of one snapshot call.
type PortfolioSummary struct {
	TotalValue     float64
	TotalChange    float64
	TotalChangePct float64
	BestPerformer  string
	WorstPerformer string
	Timestamp      time.Time
	InvalidSymbols []string
}

// PortfolioSnapshot is the full result of one aggregation: per-symbol rows
// in input order plus the summary.
type PortfolioSnapshot struct {
	Rows    []PortfolioRow
	Summary PortfolioSummary
}
