// Package db provides SQLite storage for analysis run history. The history
// is operational bookkeeping only; every run still recomputes all results
// from the flat input file.
package db

// Schema defines the SQL statements to create database tables.
const Schema = `
-- Run history table
-- One row per analysis run: filter summary counts, revenue and enrichment
-- outcome, plus the files the run produced.
CREATE TABLE IF NOT EXISTS run_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL UNIQUE,       -- UUID of the run
    source_file TEXT NOT NULL,         -- input sales data file
    total_input INTEGER NOT NULL,      -- parsed records entering validation
    invalid INTEGER NOT NULL,          -- records failing validation
    final_count INTEGER NOT NULL,      -- records after validation + filters
    total_revenue REAL NOT NULL,       -- revenue over the final set
    matched INTEGER NOT NULL,          -- records enriched from the catalog
    unmatched INTEGER NOT NULL,        -- records without a catalog match
    report_file TEXT,                  -- written report path (empty on dry run)
    enriched_file TEXT,                -- written enriched data path
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_run_history_created
    ON run_history(created_at);

-- Run metadata table
-- Stores key-value metadata about analysis runs
CREATE TABLE IF NOT EXISTS run_metadata (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

// InitializeSchema initializes the database schema.
// It creates all tables if they don't exist.
func InitializeSchema(conn *Connection) error {
	if _, err := conn.Exec(Schema); err != nil {
		return err
	}
	return nil
}
