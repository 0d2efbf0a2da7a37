package recorder

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"StockTracker/internal/model"
)

// SQLite stores snapshots in a local sqlite database. A mutex serializes
// writes because the driver allows only one writer at a time.
type SQLite struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLite opens (creating if needed) the database at path and runs
// migrations.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	r := &SQLite{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLite) migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS portfolio_snapshots (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	taken_at         TIMESTAMP NOT NULL,
	total_value      REAL NOT NULL,
	total_change     REAL NOT NULL,
	total_change_pct REAL NOT NULL,
	best_performer   TEXT NOT NULL,
	worst_performer  TEXT NOT NULL,
	invalid_symbols  TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS portfolio_rows (
	id                     INTEGER PRIMARY KEY AUTOINCREMENT,
	snapshot_id            INTEGER NOT NULL REFERENCES portfolio_snapshots(id),
	symbol                 TEXT NOT NULL,
	current_price          REAL NOT NULL,
	change                 REAL NOT NULL,
	change_pct             REAL NOT NULL,
	high_52w               REAL NOT NULL,
	low_52w                REAL NOT NULL,
	distance_from_high_pct REAL NOT NULL,
	distance_from_low_pct  REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_portfolio_rows_snapshot ON portfolio_rows(snapshot_id);
`
	if _, err := r.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// RecordPortfolio writes the summary and all rows in one transaction.
func (r *SQLite) RecordPortfolio(snap *model.PortfolioSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	s := snap.Summary
	res, err := tx.Exec(
		`INSERT INTO portfolio_snapshots
		 (taken_at, total_value, total_change, total_change_pct, best_performer, worst_performer, invalid_symbols)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.Timestamp, s.TotalValue, s.TotalChange, s.TotalChangePct,
		s.BestPerformer, s.WorstPerformer, joinSymbols(s.InvalidSymbols),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	snapID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("snapshot id: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO portfolio_rows
		 (snapshot_id, symbol, current_price, change, change_pct, high_52w, low_52w, distance_from_high_pct, distance_from_low_pct)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare row insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range snap.Rows {
		if _, err := stmt.Exec(snapID, row.Symbol, row.CurrentPrice, row.Change, row.ChangePct,
			row.High52W, row.Low52W, row.DistanceFromHighPct, row.DistanceFromLowPct); err != nil {
			return fmt.Errorf("insert row %s: %w", row.Symbol, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

func (r *SQLite) Close() error {
	return r.db.Close()
}

func joinSymbols(symbols []string) string {
	return strings.Join(symbols, ",")
}
