package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/catalog"
)

// Attempt is one finished session as persisted in the attempts table.
type Attempt struct {
	ID            int64
	AttemptID     string
	SetID         string
	SetTitle      string
	Category      string
	Score         int
	Correct       int
	Total         int
	TimeTakenSecs int
	DurationSecs  int
	CreatedAt     time.Time
}

// Overview aggregates the whole attempt history for the stats command and
// the catalog header line.
type Overview struct {
	Attempts      int
	SetsCompleted int
	AverageScore  int
}

// AttemptRepo provides access to persisted attempts.
type AttemptRepo interface {
	// Save appends one attempt to the history.
	Save(ctx context.Context, a Attempt) error
	// Stats returns per-set aggregates keyed by set ID. Best score is the
	// maximum over all attempts of a set.
	Stats(ctx context.Context) (map[string]catalog.AttemptStats, error)
	// Recent returns the newest attempts first, at most limit of them.
	// A non-positive limit returns everything.
	Recent(ctx context.Context, limit int) ([]Attempt, error)
	// Overview aggregates the full history.
	Overview(ctx context.Context) (Overview, error)
	// DeleteAll wipes the attempt history.
	DeleteAll(ctx context.Context) error
}

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Save(ctx context.Context, a Attempt) error {
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO attempts (
			attempt_id, set_id, set_title, category,
			score, correct, total, time_taken_secs, duration_secs, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.AttemptID, a.SetID, a.SetTitle, a.Category,
		a.Score, a.Correct, a.Total, a.TimeTakenSecs, a.DurationSecs,
		createdAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Stats(ctx context.Context) (map[string]catalog.AttemptStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT set_id, COUNT(*), MAX(score)
		FROM attempts
		GROUP BY set_id`)
	if err != nil {
		return nil, fmt.Errorf("query attempt stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]catalog.AttemptStats)
	for rows.Next() {
		var setID string
		var s catalog.AttemptStats
		if err := rows.Scan(&setID, &s.Attempts, &s.BestScore); err != nil {
			return nil, fmt.Errorf("scan attempt stats: %w", err)
		}
		stats[setID] = s
	}
	return stats, rows.Err()
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	q := `
		SELECT id, attempt_id, set_id, set_title, category,
		       score, correct, total, time_taken_secs, duration_secs, created_at
		FROM attempts
		ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var createdAt string
		if err := rows.Scan(
			&a.ID, &a.AttemptID, &a.SetID, &a.SetTitle, &a.Category,
			&a.Score, &a.Correct, &a.Total, &a.TimeTakenSecs, &a.DurationSecs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		if a.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parse attempt timestamp %q: %w", createdAt, err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

func (r *attemptRepo) Overview(ctx context.Context) (Overview, error) {
	var o Overview
	var avg sql.NullFloat64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COUNT(DISTINCT set_id), AVG(score)
		FROM attempts`).Scan(&o.Attempts, &o.SetsCompleted, &avg)
	if err != nil {
		return Overview{}, fmt.Errorf("query overview: %w", err)
	}
	if avg.Valid {
		o.AverageScore = int(avg.Float64 + 0.5)
	}
	return o, nil
}

func (r *attemptRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM attempts`); err != nil {
		return fmt.Errorf("delete attempts: %w", err)
	}
	return nil
}
