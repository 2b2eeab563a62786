package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/catalog"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/exam"
)

// ResultRecorder persists finished sessions as attempts. It implements
// exam.ResultSink, so the engine never sees the database.
type ResultRecorder struct {
	repo    AttemptRepo
	timeout time.Duration

	mu      sync.Mutex
	lastErr error
}

var _ exam.ResultSink = (*ResultRecorder)(nil)

// NewResultRecorder creates a recorder writing through repo.
func NewResultRecorder(repo AttemptRepo) *ResultRecorder {
	return &ResultRecorder{repo: repo, timeout: 5 * time.Second}
}

// SessionFinished saves the attempt. A write failure never disturbs the
// finished session; it is kept for Err.
func (r *ResultRecorder) SessionFinished(set *catalog.QuestionSet, res exam.Result) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	err := r.repo.Save(ctx, Attempt{
		AttemptID:     uuid.New().String(),
		SetID:         set.ID,
		SetTitle:      set.Title,
		Category:      set.Category,
		Score:         res.Score,
		Correct:       res.Correct,
		Total:         res.Total,
		TimeTakenSecs: res.TimeTakenSecs,
		DurationSecs:  set.DurationSecs,
	})

	r.mu.Lock()
	r.lastErr = err
	r.mu.Unlock()
}

// Err returns the error from the most recent save, if any.
func (r *ResultRecorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}
