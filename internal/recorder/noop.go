package recorder

import "StockTracker/internal/model"

// Noop discards every snapshot. Used when no database path is configured or
// the database cannot be opened.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) RecordPortfolio(_ *model.PortfolioSnapshot) error { return nil }

func (n *Noop) Close() error { return nil }
