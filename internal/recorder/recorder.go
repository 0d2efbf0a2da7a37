// Package recorder persists portfolio snapshots so refreshes build up a
// history that can be inspected later.
package recorder

import "StockTracker/internal/model"

// Recorder stores portfolio snapshots. Implementations must be safe for
// concurrent use.
type Recorder interface {
	RecordPortfolio(snap *model.PortfolioSnapshot) error
	Close() error
}
