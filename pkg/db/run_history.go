package db

import (
	"database/sql"
	"fmt"
	"time"
)

// RunRecord represents one analysis run.
type RunRecord struct {
	ID           int64
	RunID        string
	SourceFile   string
	TotalInput   int
	Invalid      int
	FinalCount   int
	TotalRevenue float64
	Matched      int
	Unmatched    int
	ReportFile   string
	EnrichedFile string
	CreatedAt    time.Time
}

// RunHistory manages run history operations.
type RunHistory struct {
	conn *Connection
}

// NewRunHistory creates a new RunHistory instance.
func NewRunHistory(conn *Connection) *RunHistory {
	return &RunHistory{conn: conn}
}

// RecordRun records a completed analysis run.
func (h *RunHistory) RecordRun(record RunRecord) error {
	query := `
		INSERT INTO run_history (run_id, source_file, total_input, invalid,
			final_count, total_revenue, matched, unmatched, report_file, enriched_file)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := h.conn.Exec(query,
		record.RunID,
		record.SourceFile,
		record.TotalInput,
		record.Invalid,
		record.FinalCount,
		record.TotalRevenue,
		record.Matched,
		record.Unmatched,
		record.ReportFile,
		record.EnrichedFile,
	)

	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	return nil
}

// GetRuns retrieves the most recent runs, newest first. limit <= 0 returns
// all runs.
func (h *RunHistory) GetRuns(limit int) ([]RunRecord, error) {
	query := `
		SELECT id, run_id, source_file, total_input, invalid, final_count,
			total_revenue, matched, unmatched, report_file, enriched_file, created_at
		FROM run_history
		ORDER BY created_at DESC, id DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := h.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var record RunRecord
		if err := rows.Scan(
			&record.ID,
			&record.RunID,
			&record.SourceFile,
			&record.TotalInput,
			&record.Invalid,
			&record.FinalCount,
			&record.TotalRevenue,
			&record.Matched,
			&record.Unmatched,
			&record.ReportFile,
			&record.EnrichedFile,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run record: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

// Stats represents run history statistics.
type Stats struct {
	TotalRuns        int
	RecordsProcessed int
	TotalMatched     int
	LastRun          sql.NullString
}

// GetStats retrieves run history statistics.
func (h *RunHistory) GetStats() (*Stats, error) {
	var stats Stats

	err := h.conn.QueryRow(`SELECT COUNT(*) FROM run_history`).Scan(&stats.TotalRuns)
	if err != nil {
		return nil, fmt.Errorf("failed to get run count: %w", err)
	}

	err = h.conn.QueryRow(`SELECT COALESCE(SUM(final_count), 0) FROM run_history`).Scan(&stats.RecordsProcessed)
	if err != nil {
		return nil, fmt.Errorf("failed to get processed record count: %w", err)
	}

	err = h.conn.QueryRow(`SELECT COALESCE(SUM(matched), 0) FROM run_history`).Scan(&stats.TotalMatched)
	if err != nil {
		return nil, fmt.Errorf("failed to get matched count: %w", err)
	}

	err = h.conn.QueryRow(`SELECT MAX(created_at) FROM run_history`).Scan(&stats.LastRun)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get last run time: %w", err)
	}

	return &stats, nil
}

// GetMetadata retrieves a metadata value. Returns "" when the key is absent.
func (h *RunHistory) GetMetadata(key string) (string, error) {
	query := `SELECT value FROM run_metadata WHERE key = ?`

	var value string
	err := h.conn.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata: %w", err)
	}

	return value, nil
}

// SetMetadata sets a metadata value.
func (h *RunHistory) SetMetadata(key, value string) error {
	query := `
		INSERT INTO run_metadata (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := h.conn.Exec(query, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata: %w", err)
	}

	return nil
}
