package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Store persists generation run records.
type Store struct {
	db *sql.DB
}

// NewStore creates a store over an open database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// RunRecord is one generate invocation.
type RunRecord struct {
	ID           int64
	CreatedAt    string
	PlanDate     string
	Mode         string
	ArtifactPath string
	DueTotal     int
	CarryCount   int
	Written      bool
}

// RecordRun inserts a run record.
func (s *Store) RecordRun(ctx context.Context, rec RunRecord) error {
	createdAt := rec.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}
	if _, err := s.db.ExecContext(ctx, `INSERT INTO runs(created_at, plan_date, mode, artifact_path, due_total, carry_count, written)
		VALUES(?, ?, ?, ?, ?, ?, ?)`,
		createdAt, rec.PlanDate, rec.Mode, rec.ArtifactPath, rec.DueTotal, rec.CarryCount, boolToInt(rec.Written)); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// ListRuns returns the newest runs, most recent first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `SELECT id, created_at, plan_date, mode, artifact_path, due_total, carry_count, written
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var written int
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.PlanDate, &rec.Mode, &rec.ArtifactPath, &rec.DueTotal, &rec.CarryCount, &written); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.Written = written != 0
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return records, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
