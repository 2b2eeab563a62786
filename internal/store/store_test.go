package store

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"
)

var attemptSeq atomic.Int64

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testAttempt(setID string, score int) Attempt {
	return Attempt{
		AttemptID:     fmt.Sprintf("%s-%d", setID, attemptSeq.Add(1)),
		SetID:         setID,
		SetTitle:      "Title for " + setID,
		Category:      "general",
		Score:         score,
		Correct:       score / 10,
		Total:         10,
		TimeTakenSecs: 120,
		DurationSecs:  600,
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAttemptSaveAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	attempts, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent on empty store: %v", err)
	}
	if len(attempts) != 0 {
		t.Fatalf("got %d attempts from empty store, want 0", len(attempts))
	}

	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	for i, score := range []int{40, 70, 90} {
		a := testAttempt("quantitative-aptitude", score)
		a.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := repo.Save(ctx, a); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	attempts, err = repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("got %d attempts, want 2", len(attempts))
	}
	if attempts[0].Score != 90 || attempts[1].Score != 70 {
		t.Errorf("scores = %d, %d; want newest first 90, 70", attempts[0].Score, attempts[1].Score)
	}
	if attempts[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not round-tripped")
	}
}

func TestAttemptStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	for _, a := range []Attempt{
		testAttempt("verbal-ability", 60),
		testAttempt("verbal-ability", 85),
		testAttempt("verbal-ability", 70),
		testAttempt("logical-reasoning", 50),
	} {
		if err := repo.Save(ctx, a); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got stats for %d sets, want 2", len(stats))
	}
	verbal := stats["verbal-ability"]
	if verbal.Attempts != 3 {
		t.Errorf("verbal attempts = %d, want 3", verbal.Attempts)
	}
	if verbal.BestScore != 85 {
		t.Errorf("verbal best score = %d, want 85", verbal.BestScore)
	}
	logical := stats["logical-reasoning"]
	if logical.Attempts != 1 || logical.BestScore != 50 {
		t.Errorf("logical stats = %+v, want 1 attempt, best 50", logical)
	}
}

func TestAttemptOverview(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	o, err := repo.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview on empty store: %v", err)
	}
	if o.Attempts != 0 || o.SetsCompleted != 0 || o.AverageScore != 0 {
		t.Errorf("empty overview = %+v, want zeros", o)
	}

	for _, a := range []Attempt{
		testAttempt("verbal-ability", 80),
		testAttempt("verbal-ability", 60),
		testAttempt("logical-reasoning", 70),
	} {
		if err := repo.Save(ctx, a); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	o, err = repo.Overview(ctx)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	if o.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", o.Attempts)
	}
	if o.SetsCompleted != 2 {
		t.Errorf("SetsCompleted = %d, want 2", o.SetsCompleted)
	}
	if o.AverageScore != 70 {
		t.Errorf("AverageScore = %d, want 70", o.AverageScore)
	}
}

func TestAttemptDeleteAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	if err := repo.Save(ctx, testAttempt("verbal-ability", 75)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}

	attempts, err := repo.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("got %d attempts after DeleteAll, want 0", len(attempts))
	}
}
