package exam

import (
	"testing"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/catalog"
)

func TestScore_MixedAnswers(t *testing.T) {
	set := testSet()
	sheet := NewAnswerSheet(set)
	// Two right, one wrong, one unanswered.
	mustRecord(t, sheet, 0, 1) // correct
	mustRecord(t, sheet, 1, 1) // correct
	mustRecord(t, sheet, 2, 2) // wrong

	r := Score(set, sheet, 15)

	if r.Correct != 2 {
		t.Errorf("Correct = %d, want 2", r.Correct)
	}
	if r.Total != 4 {
		t.Errorf("Total = %d, want 4", r.Total)
	}
	if r.Score != 50 {
		t.Errorf("Score = %d, want 50", r.Score)
	}
	if r.TimeTakenSecs != 45 {
		t.Errorf("TimeTakenSecs = %d, want 45", r.TimeTakenSecs)
	}
	if r.Accuracy() != r.Score {
		t.Errorf("Accuracy() = %d, want %d", r.Accuracy(), r.Score)
	}
}

func TestScore_Rounding(t *testing.T) {
	set := testSet() // 4 questions
	sheet := NewAnswerSheet(set)
	mustRecord(t, sheet, 0, 1) // 1/4 = 25, exact

	set3 := &catalog.QuestionSet{
		ID:           "three",
		DurationSecs: 60,
		Questions:    set.Questions[:3],
	}
	sheet3 := NewAnswerSheet(set3)
	mustRecord(t, sheet3, 0, 1) // 1/3 → 33.33 rounds to 33

	if r := Score(set, sheet, 0); r.Score != 25 {
		t.Errorf("Score(1/4) = %d, want 25", r.Score)
	}
	if r := Score(set3, sheet3, 0); r.Score != 33 {
		t.Errorf("Score(1/3) = %d, want 33", r.Score)
	}

	mustRecord(t, sheet3, 1, 1) // 2/3 → 66.67 rounds to 67
	if r := Score(set3, sheet3, 0); r.Score != 67 {
		t.Errorf("Score(2/3) = %d, want 67", r.Score)
	}
}

func TestScore_AllCorrectAndNoneAnswered(t *testing.T) {
	set := testSet()

	full := NewAnswerSheet(set)
	for i, q := range set.Questions {
		mustRecord(t, full, i, q.Correct)
	}
	if r := Score(set, full, 0); r.Score != 100 || r.Correct != 4 {
		t.Errorf("all correct: Score = %d, Correct = %d, want 100, 4", r.Score, r.Correct)
	}

	empty := NewAnswerSheet(set)
	if r := Score(set, empty, 0); r.Score != 0 || r.Correct != 0 {
		t.Errorf("no answers: Score = %d, Correct = %d, want 0, 0", r.Score, r.Correct)
	}
}

func TestScore_EmptySet(t *testing.T) {
	set := &catalog.QuestionSet{ID: "empty", DurationSecs: 60}
	sheet := NewAnswerSheet(set)

	r := Score(set, sheet, 60)
	if r.Score != 0 {
		t.Errorf("Score = %d for empty set, want 0", r.Score)
	}
	if r.Total != 0 {
		t.Errorf("Total = %d, want 0", r.Total)
	}
}

func TestScore_TimeTakenClamped(t *testing.T) {
	set := testSet() // 60 second duration
	sheet := NewAnswerSheet(set)

	if r := Score(set, sheet, -5); r.TimeTakenSecs != 60 {
		t.Errorf("TimeTakenSecs = %d with negative remaining, want 60", r.TimeTakenSecs)
	}
	if r := Score(set, sheet, 120); r.TimeTakenSecs != 0 {
		t.Errorf("TimeTakenSecs = %d with oversized remaining, want 0", r.TimeTakenSecs)
	}
}

func mustRecord(t *testing.T, sheet *AnswerSheet, question, option int) {
	t.Helper()
	if err := sheet.Record(question, option); err != nil {
		t.Fatalf("Record(%d, %d) = %v", question, option, err)
	}
}
