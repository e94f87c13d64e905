package walk

import (
	"sync"
	"time"
)

// TimerState is the session timer's state machine state.
type TimerState string

const (
	StateIdle    TimerState = "idle"
	StateRunning TimerState = "running"
	StatePaused  TimerState = "paused"
)

// Timer tracks elapsed walking time for one session. Elapsed time is
// recomputed from the session-start wall clock on every tick instead of
// accumulating fixed increments, so late or dropped ticks self-correct.
//
// The timer does not schedule its own ticks; any scheduler (a ticker
// goroutine in production, a test driving fake time) calls Tick.
type Timer struct {
	mu           sync.Mutex
	state        TimerState
	elapsed      int // seconds
	sessionStart time.Time
	now          func() time.Time
}

// NewTimer creates an idle timer using the wall clock.
func NewTimer() *Timer {
	return NewTimerWithClock(time.Now)
}

// NewTimerWithClock creates an idle timer with an injected clock.
func NewTimerWithClock(now func() time.Time) *Timer {
	return &Timer{state: StateIdle, now: now}
}

// Start transitions Idle or Paused to Running. The session start is anchored
// at now minus the already accumulated elapsed time, so resuming after a
// pause continues from where it left off. Returns false if already running.
func (t *Timer) Start() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateRunning {
		return false
	}
	t.sessionStart = t.now().Add(-time.Duration(t.elapsed) * time.Second)
	t.state = StateRunning
	return true
}

// Pause transitions Running to Paused. Elapsed time keeps its last computed
// value. A no-op in any other state.
func (t *Timer) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRunning {
		return
	}
	t.elapsed = int(t.now().Sub(t.sessionStart) / time.Second)
	t.state = StatePaused
}

// Reset returns the timer to Idle from any state and zeroes elapsed time.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state = StateIdle
	t.elapsed = 0
	t.sessionStart = time.Time{}
}

// Tick recomputes and returns elapsed seconds. Only advances while Running.
func (t *Timer) Tick() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateRunning {
		t.elapsed = int(t.now().Sub(t.sessionStart) / time.Second)
	}
	return t.elapsed
}

// Elapsed returns the last computed elapsed seconds.
func (t *Timer) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

// State returns the current state.
func (t *Timer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}
