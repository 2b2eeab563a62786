package results

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/report"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/router"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/screen"
)

func testCard() report.Card {
	return report.Card{
		SetTitle:  "Verbal Ability",
		Score:     75,
		Band:      report.BandGood,
		Correct:   "6/8",
		Accuracy:  "75%",
		TimeTaken: "4:10",
	}
}

func TestResultsScreen_Title(t *testing.T) {
	r := New(testCard(), nil)
	if r.Title() != "Results" {
		t.Errorf("Title = %q, want %q", r.Title(), "Results")
	}
}

func TestResultsScreen_Display(t *testing.T) {
	r := New(testCard(), nil)
	view := r.View(80, 24)
	if view == "" {
		t.Error("expected non-empty results view")
	}
}

func TestResultsScreen_EnterPopsTwo(t *testing.T) {
	r := New(testCard(), nil)
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg, ok := cmd().(router.PopScreensMsg)
	if !ok {
		t.Fatalf("expected PopScreensMsg, got %T", cmd())
	}
	if msg.N != 2 || msg.Then != nil {
		t.Errorf("PopScreensMsg = %+v, want N=2 with no replacement", msg)
	}
}

func TestResultsScreen_RetakeReplacesSession(t *testing.T) {
	var built bool
	r := New(testCard(), func() screen.Screen {
		built = true
		return nil
	})

	_, cmd := r.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command on R")
	}
	msg, ok := cmd().(router.PopScreensMsg)
	if !ok {
		t.Fatalf("expected PopScreensMsg, got %T", cmd())
	}
	if msg.N != 2 {
		t.Errorf("PopScreensMsg.N = %d, want 2", msg.N)
	}
	if !built {
		t.Error("expected the retake factory to run")
	}
}

func TestResultsScreen_RetakeDisabledWithoutFactory(t *testing.T) {
	r := New(testCard(), nil)
	_, cmd := r.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd != nil {
		t.Error("expected no command when retake is disabled")
	}
	if len(r.KeyHints()) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(r.KeyHints()))
	}
}
