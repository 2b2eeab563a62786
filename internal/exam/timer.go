package exam

import (
	"sync"
	"time"
)

// Timer is a cancellable countdown. It holds no business state; it only
// schedules tick and expiry callbacks. Expiry fires exactly once, after the
// tick that reaches zero. Cancel is idempotent and suppresses callbacks that
// have not been delivered yet.
//
// Callbacks run on the timer's own goroutine. Callers that share state with
// them must serialize access themselves; Controller does so with its mutex
// and treats its Finishing gate as the authority for any tick that slips
// through the cancellation window.
type Timer struct {
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done bool
}

// NewTimer creates a timer that ticks once per interval. Sessions use one
// second; tests shrink the interval.
func NewTimer(interval time.Duration) *Timer {
	if interval <= 0 {
		interval = time.Second
	}
	return &Timer{
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start begins the countdown from the given number of ticks. onTick receives
// the remaining count after each tick; onExpire fires once when it reaches
// zero. A non-positive count expires immediately. Start must be called at
// most once per timer.
func (t *Timer) Start(remaining int, onTick func(remaining int), onExpire func()) {
	go t.run(remaining, onTick, onExpire)
}

func (t *Timer) run(remaining int, onTick func(int), onExpire func()) {
	if remaining <= 0 {
		if t.claim(true) && onExpire != nil {
			onExpire()
		}
		return
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			remaining--
			expired := remaining <= 0
			if !t.claim(expired) {
				return
			}
			if onTick != nil {
				onTick(remaining)
			}
			if expired {
				if onExpire != nil {
					onExpire()
				}
				return
			}
		}
	}
}

// claim checks whether the timer is still live, marking it done when the
// countdown has expired. It returns false once Cancel has won.
func (t *Timer) claim(expired bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return false
	}
	if expired {
		t.done = true
	}
	return true
}

// Cancel stops the countdown. No further callbacks fire after Cancel has
// been observed; cancelling a stopped or expired timer is a no-op.
func (t *Timer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	t.done = true
	close(t.stop)
}
