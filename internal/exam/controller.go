package exam

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Sakthirajan135/gct-connect-career-path/internal/catalog"
)

var (
	// ErrSessionActive is returned by Start while a session is still running.
	ErrSessionActive = errors.New("a session is already running")
	// ErrNoSession is returned by commands issued before any Start.
	ErrNoSession = errors.New("no session has been started")
	// ErrSessionOver is returned by mutating commands on a completed session.
	ErrSessionOver = errors.New("session is already completed")
)

// ResultSink receives the outcome of every completed session. Persistence
// and best-score bookkeeping live behind this interface, not in the engine.
type ResultSink interface {
	SessionFinished(set *catalog.QuestionSet, r Result)
}

// Controller owns at most one session at a time and is the only component
// allowed to move a session into its terminal state. Timer callbacks and
// user commands serialize on the controller's mutex; the Running→Finishing
// transition is the single admission gate, so a finish trigger that loses
// the race observes a non-Running state and becomes a no-op.
type Controller struct {
	sink     ResultSink
	interval time.Duration

	mu    sync.Mutex
	sess  *Session
	timer *Timer
}

// NewController creates a controller emitting results to sink. A nil sink
// discards results.
func NewController(sink ResultSink) *Controller {
	return &Controller{sink: sink, interval: time.Second}
}

// SetTickInterval overrides the one-second tick, for tests.
func (c *Controller) SetTickInterval(d time.Duration) {
	c.interval = d
}

// Start begins a new session over the given set. Starting while a session is
// running is an error; a completed or abandoned session is replaced. Retry
// goes through here too: it creates a brand-new session, never resets an old
// one.
func (c *Controller) Start(set *catalog.QuestionSet) error {
	c.mu.Lock()

	if c.sess != nil && (c.sess.state == StateRunning || c.sess.state == StateFinishing) {
		c.mu.Unlock()
		return ErrSessionActive
	}

	sess := &Session{
		ID:        uuid.New().String(),
		Set:       set,
		Remaining: set.DurationSecs,
		Answers:   NewAnswerSheet(set),
		StartedAt: time.Now(),
		state:     StateRunning,
	}
	c.sess = sess
	c.timer = NewTimer(c.interval)
	timer := c.timer
	c.mu.Unlock()

	timer.Start(set.DurationSecs, c.handleTick, c.handleExpiry)
	return nil
}

// Navigate moves the current question index by delta, clamped to the valid
// range. Boundary presses are expected candidate behaviour and never error;
// navigating outside a running session is a caller bug and does.
func (c *Controller) Navigate(delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireRunning(); err != nil {
		return err
	}

	next := c.sess.Current + delta
	if next < 0 {
		next = 0
	}
	if max := len(c.sess.Set.Questions) - 1; next > max {
		next = max
	}
	if next < 0 {
		// Empty set: index stays pinned at zero.
		next = 0
	}
	c.sess.Current = next
	return nil
}

// Answer records the given option for the current question. It does not
// advance the index.
func (c *Controller) Answer(option int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireRunning(); err != nil {
		return err
	}
	return c.sess.Answers.Record(c.sess.Current, option)
}

// Submit finishes the session explicitly. Submitting an already-completed
// session is a no-op that returns the existing result, so a duplicate press
// or a submit racing the timer's expiry can never produce a second result.
func (c *Controller) Submit() (Result, error) {
	c.mu.Lock()

	switch {
	case c.sess == nil:
		c.mu.Unlock()
		return Result{}, ErrNoSession
	case c.sess.state == StateCompleted:
		r := *c.sess.result
		c.mu.Unlock()
		return r, nil
	case c.sess.state != StateRunning:
		c.mu.Unlock()
		return Result{}, ErrNoSession
	}

	set, r := c.finishLocked()
	c.mu.Unlock()

	c.emit(set, r)
	return r, nil
}

// Abandon discards the running session without scoring it, cancelling the
// countdown. Leaving the session view and starting over both come through
// here. Abandoning when nothing is running is a no-op.
func (c *Controller) Abandon() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess == nil || c.sess.state != StateRunning {
		return
	}
	c.timer.Cancel()
	c.sess = nil
	c.timer = nil
}

// Result returns the completed session's result, or ok=false before
// completion.
func (c *Controller) Result() (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess == nil || c.sess.result == nil {
		return Result{}, false
	}
	return *c.sess.result, true
}

// Snapshot returns a copy of the observable session state for rendering.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess == nil {
		return Snapshot{State: StateIdle}
	}

	picks := make(map[int]int, c.sess.Answers.AnsweredCount())
	for i := range c.sess.Set.Questions {
		if pick, ok := c.sess.Answers.Selected(i); ok {
			picks[i] = pick
		}
	}

	snap := Snapshot{
		SessionID:     c.sess.ID,
		SetID:         c.sess.Set.ID,
		SetTitle:      c.sess.Set.Title,
		State:         c.sess.state,
		Remaining:     c.sess.Remaining,
		Current:       c.sess.Current,
		QuestionCount: len(c.sess.Set.Questions),
		Answered:      c.sess.Answers.AnsweredCount(),
		Picks:         picks,
	}
	if c.sess.result != nil {
		r := *c.sess.result
		snap.Result = &r
	}
	return snap
}

// handleTick records the countdown position. Ticks landing after the session
// left Running are stale and ignored.
func (c *Controller) handleTick(remaining int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess == nil || c.sess.state != StateRunning {
		return
	}
	if remaining < c.sess.Remaining {
		c.sess.Remaining = remaining
	}
}

// handleExpiry finishes the session when the countdown runs out. If an
// explicit submit won the gate first, the expiry is a no-op.
func (c *Controller) handleExpiry() {
	c.mu.Lock()

	if c.sess == nil || c.sess.state != StateRunning {
		c.mu.Unlock()
		return
	}
	c.sess.Remaining = 0
	set, r := c.finishLocked()
	c.mu.Unlock()

	c.emit(set, r)
}

// finishLocked runs the Running→Finishing→Completed transition. The caller
// holds the mutex and has already verified the session is Running. The timer
// is cancelled as the very first effect so the countdown cannot deliver new
// triggers while the result is computed.
func (c *Controller) finishLocked() (*catalog.QuestionSet, Result) {
	sess := c.sess
	sess.state = StateFinishing
	c.timer.Cancel()

	r := Score(sess.Set, sess.Answers, sess.Remaining)
	sess.result = &r
	sess.state = StateCompleted

	return sess.Set, r
}

func (c *Controller) emit(set *catalog.QuestionSet, r Result) {
	if c.sink != nil {
		c.sink.SessionFinished(set, r)
	}
}

func (c *Controller) requireRunning() error {
	if c.sess == nil {
		return ErrNoSession
	}
	switch c.sess.state {
	case StateRunning:
		return nil
	case StateCompleted, StateFinishing:
		return ErrSessionOver
	}
	return ErrNoSession
}
