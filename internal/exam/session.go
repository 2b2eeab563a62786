// Package exam implements the timed assessment engine: the countdown timer,
// the answer sheet, the scorer, and the session controller that ties them
// into one state machine shared by every test-taking screen.
package exam

import (
	"time"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/catalog"
)

// State is the lifecycle phase of a session.
type State int

const (
	// StateIdle: no session has been started.
	StateIdle State = iota
	// StateRunning: the countdown is live and answers are being accepted.
	StateRunning
	// StateFinishing: a finish trigger won the admission gate; the timer is
	// cancelled and the result is being computed. Transient.
	StateFinishing
	// StateCompleted: terminal. The result exists and the session is frozen.
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFinishing:
		return "finishing"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// Session is one attempt at a QuestionSet. All fields are owned by the
// Controller; screens observe sessions through Snapshot.
type Session struct {
	ID        string
	Set       *catalog.QuestionSet
	Remaining int
	Current   int
	Answers   *AnswerSheet
	StartedAt time.Time

	state  State
	result *Result
}

// Result is the immutable scored outcome of a completed session.
type Result struct {
	Score         int
	Correct       int
	Total         int
	TimeTakenSecs int
}

// Accuracy equals Score in this model; kept as its own accessor because the
// result card displays both.
func (r Result) Accuracy() int {
	return r.Score
}

// Snapshot is a read-only view of the controller's session for rendering.
type Snapshot struct {
	SessionID     string
	SetID         string
	SetTitle      string
	State         State
	Remaining     int
	Current       int
	QuestionCount int
	Answered      int
	// Picks maps question index to the chosen option index.
	Picks  map[int]int
	Result *Result
}
