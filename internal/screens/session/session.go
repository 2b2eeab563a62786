// Package session hosts the screen for a running timed test.
package session

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/catalog"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/exam"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/report"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/router"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/screen"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/screens/results"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/ui/components"
	"github.com/Sakthirajan135/gct-connect-career-path/internal/ui/layout"
)

// timerTickMsg drives the once-a-second redraw while the clock runs.
type timerTickMsg time.Time

// SessionScreen runs one timed attempt over a question set. The engine owns
// the countdown and all session state; this screen only issues commands and
// renders snapshots.
type SessionScreen struct {
	set  *catalog.QuestionSet
	sink exam.ResultSink
	ctrl *exam.Controller

	options components.OptionList

	confirmSubmit bool
	confirmExit   bool
	finished      bool
	errMsg        string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.EscHandler = (*SessionScreen)(nil)

// New creates a session screen for the given set. The countdown starts on
// Init, not here.
func New(set *catalog.QuestionSet, sink exam.ResultSink) *SessionScreen {
	return &SessionScreen{
		set:  set,
		sink: sink,
		ctrl: exam.NewController(sink),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	if err := s.ctrl.Start(s.set); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.syncOptions()
	return tickCmd()
}

func (s *SessionScreen) Title() string {
	return s.set.Title
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.confirmSubmit || s.confirmExit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Confirm"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Answer"},
		{Key: "S", Description: "Submit"},
		{Key: "Esc", Description: "Leave"},
	}
}

// HandleEsc asks for confirmation instead of leaving a running test.
func (s *SessionScreen) HandleEsc() tea.Cmd {
	if s.finished {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	s.confirmSubmit = false
	s.confirmExit = true
	return nil
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleTick() (screen.Screen, tea.Cmd) {
	snap := s.ctrl.Snapshot()
	if snap.State == exam.StateCompleted {
		// The countdown expired between ticks.
		return s, s.showResults()
	}
	if snap.State != exam.StateRunning {
		return s, nil
	}
	return s, tickCmd()
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.finished {
		return s, nil
	}

	key := msg.String()

	if s.confirmExit {
		switch key {
		case "y", "Y", "enter":
			s.ctrl.Abandon()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmExit = false
		}
		return s, nil
	}

	if s.confirmSubmit {
		switch key {
		case "y", "Y", "enter":
			s.confirmSubmit = false
			if _, err := s.ctrl.Submit(); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			return s, s.showResults()
		case "n", "N", "esc":
			s.confirmSubmit = false
		}
		return s, nil
	}

	switch key {
	case "left", "h":
		if err := s.ctrl.Navigate(-1); err == nil {
			s.syncOptions()
		}
	case "right", "l":
		if err := s.ctrl.Navigate(1); err == nil {
			s.syncOptions()
		}
	case "up", "k", "down", "j":
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		return s, cmd
	case "enter":
		if err := s.ctrl.Answer(s.options.Cursor); err == nil {
			s.options.SetPicked(s.options.Cursor)
		}
	case "s", "S":
		s.confirmSubmit = true
	}

	return s, nil
}

// showResults pushes the results screen exactly once, no matter whether the
// submit key or the expiring clock got there first.
func (s *SessionScreen) showResults() tea.Cmd {
	if s.finished {
		return nil
	}
	r, ok := s.ctrl.Result()
	if !ok {
		return nil
	}
	s.finished = true

	set, sink := s.set, s.sink
	card := report.BuildCard(set.Title, r)
	retake := func() screen.Screen { return New(set, sink) }

	return func() tea.Msg {
		return router.PushScreenMsg{Screen: results.New(card, retake)}
	}
}

// syncOptions rebuilds the option list for the current question, restoring
// any recorded pick.
func (s *SessionScreen) syncOptions() {
	snap := s.ctrl.Snapshot()
	if snap.QuestionCount == 0 {
		s.options = components.NewOptionList(nil)
		return
	}
	q := s.set.Questions[snap.Current]
	s.options = components.NewOptionList(q.Options)
	if pick, ok := snap.Picks[snap.Current]; ok {
		s.options.SetPicked(pick)
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
