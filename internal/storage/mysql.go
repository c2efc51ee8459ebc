package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"exrun/internal/domain"
)

var _ History = (*MySQLHistory)(nil)

// MySQLHistory appends every run and its failures to the history database.
// The schema is created by the migrate command.
type MySQLHistory struct {
	db *sql.DB
}

// NewMySQLHistory wraps an open connection to the history database
func NewMySQLHistory(db *sql.DB) *MySQLHistory {
	return &MySQLHistory{db: db}
}

const insertRun = `INSERT INTO runs
	(id, started_at, total_suites, failed_suites, total_cases, failed_cases, duration_seconds, workers)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

const insertFailure = `INSERT INTO case_failures
	(run_id, suite, target, source, case_index, inputs, expected, actual, message, error)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Record stores the run and its failures in one transaction
func (h *MySQLHistory) Record(ctx context.Context, output *domain.TestResultsOutput) error {
	meta := output.Meta
	startedAt, err := time.Parse(time.RFC3339, meta.Timestamp)
	if err != nil {
		startedAt = time.Now()
	}

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin history transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, insertRun,
		meta.RunID, startedAt.UTC(), meta.TotalSuites, meta.FailedSuites,
		meta.TotalCases, meta.FailedCases, meta.DurationSeconds, meta.Workers,
	); err != nil {
		return fmt.Errorf("insert run %s: %w", meta.RunID, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertFailure)
	if err != nil {
		return fmt.Errorf("prepare failure insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range output.Details {
		if _, err := stmt.ExecContext(ctx,
			meta.RunID, f.Suite, f.Target, f.Source, f.CaseIndex,
			jsonList(f.Inputs), jsonList(f.Expected), jsonList(f.Actual), f.Message, f.Error,
		); err != nil {
			return fmt.Errorf("insert failure for %s: %w", f.Suite, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history: %w", err)
	}
	return nil
}

func jsonList(values []int64) string {
	if values == nil {
		values = []int64{}
	}
	data, _ := json.Marshal(values)
	return string(data)
}
