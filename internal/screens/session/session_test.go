package session

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/catalog"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/exam"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/router"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/screens/results"
)

func testSet() *catalog.QuestionSet {
	return &catalog.QuestionSet{
		ID:           "go-basics",
		Title:        "Go Basics",
		Category:     "cse",
		Difficulty:   "Easy",
		DurationSecs: 600,
		Questions: []catalog.Question{
			{ID: "q1", Prompt: "one", Options: []string{"a", "b", "c"}, Correct: 1},
			{ID: "q2", Prompt: "two", Options: []string{"a", "b"}, Correct: 0},
			{ID: "q3", Prompt: "three", Options: []string{"a", "b", "c", "d"}, Correct: 3},
		},
	}
}

func startSession(t *testing.T) *SessionScreen {
	t.Helper()
	s := New(testSet(), nil)
	if cmd := s.Init(); cmd == nil {
		t.Fatal("Init() = nil, want tick command")
	}
	t.Cleanup(s.ctrl.Abandon)
	return s
}

func press(t *testing.T, s *SessionScreen, r rune) tea.Cmd {
	t.Helper()
	_, cmd := s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	return cmd
}

func TestInitStartsSession(t *testing.T) {
	s := startSession(t)

	snap := s.ctrl.Snapshot()
	if snap.State != exam.StateRunning {
		t.Errorf("State = %v, want StateRunning", snap.State)
	}
	if snap.Current != 0 {
		t.Errorf("Current = %d, want 0", snap.Current)
	}
}

func TestAnswerRecordsPick(t *testing.T) {
	s := startSession(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	snap := s.ctrl.Snapshot()
	if pick, ok := snap.Picks[0]; !ok || pick != 1 {
		t.Errorf("Picks[0] = %d (%v), want 1", pick, ok)
	}
	if s.options.Picked != 1 {
		t.Errorf("options.Picked = %d, want 1", s.options.Picked)
	}
}

func TestNavigationRebuildsOptions(t *testing.T) {
	s := startSession(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	snap := s.ctrl.Snapshot()
	if snap.Current != 1 {
		t.Fatalf("Current = %d, want 1", snap.Current)
	}
	if got := len(s.options.Options); got != 2 {
		t.Errorf("len(options) = %d, want 2", got)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if snap := s.ctrl.Snapshot(); snap.Current != 0 {
		t.Errorf("Current = %d, want 0 after left", snap.Current)
	}
}

func TestNavigationRestoresPick(t *testing.T) {
	s := startSession(t)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})

	if s.options.Picked != 0 {
		t.Errorf("options.Picked = %d, want 0 after returning", s.options.Picked)
	}
}

func TestSubmitNeedsConfirmation(t *testing.T) {
	s := startSession(t)

	press(t, s, 's')
	if !s.confirmSubmit {
		t.Fatal("confirmSubmit = false after s")
	}

	press(t, s, 'n')
	if s.confirmSubmit {
		t.Error("confirmSubmit = true after n")
	}
	if snap := s.ctrl.Snapshot(); snap.State != exam.StateRunning {
		t.Errorf("State = %v, want StateRunning after cancelled submit", snap.State)
	}
}

func TestConfirmedSubmitPushesResults(t *testing.T) {
	s := startSession(t)

	press(t, s, 's')
	cmd := press(t, s, 'y')
	if cmd == nil {
		t.Fatal("confirm submit returned nil command")
	}

	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("command produced %T, want PushScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("pushed %T, want *results.ResultsScreen", msg.Screen)
	}
	if snap := s.ctrl.Snapshot(); snap.State != exam.StateCompleted {
		t.Errorf("State = %v, want StateCompleted", snap.State)
	}
}

func TestResultsPushedOnce(t *testing.T) {
	s := startSession(t)

	press(t, s, 's')
	if cmd := press(t, s, 'y'); cmd == nil {
		t.Fatal("confirm submit returned nil command")
	}
	if _, cmd := s.handleTick(); cmd != nil {
		t.Error("tick after finish produced a command, want nil")
	}
}

func TestEscAsksBeforeLeaving(t *testing.T) {
	s := startSession(t)

	if cmd := s.HandleEsc(); cmd != nil {
		t.Error("HandleEsc returned a command while running, want confirm overlay")
	}
	if !s.confirmExit {
		t.Fatal("confirmExit = false after esc")
	}

	cmd := press(t, s, 'y')
	if cmd == nil {
		t.Fatal("confirm exit returned nil command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("command produced %T, want PopScreenMsg", cmd())
	}
	if snap := s.ctrl.Snapshot(); snap.State != exam.StateIdle {
		t.Errorf("State = %v, want StateIdle after abandon", snap.State)
	}
}

func TestExitCancelKeepsRunning(t *testing.T) {
	s := startSession(t)

	s.HandleEsc()
	press(t, s, 'n')
	if s.confirmExit {
		t.Error("confirmExit = true after n")
	}
	if snap := s.ctrl.Snapshot(); snap.State != exam.StateRunning {
		t.Errorf("State = %v, want StateRunning", snap.State)
	}
}
