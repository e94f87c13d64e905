package walk

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock drives the timer with simulated time.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestTimerStartsIdle(t *testing.T) {
	timer := NewTimer()
	assert.Equal(t, StateIdle, timer.State())
	assert.Equal(t, 0, timer.Elapsed())
}

func TestTimerPausePreservesElapsedAcrossResume(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimerWithClock(clock.Now)

	timer.Start()
	clock.Advance(3 * time.Second)
	timer.Tick()
	timer.Pause()
	assert.Equal(t, 3, timer.Elapsed())

	// Time passing while paused must not count.
	clock.Advance(30 * time.Second)
	assert.Equal(t, 3, timer.Tick())

	timer.Start()
	clock.Advance(2 * time.Second)
	assert.Equal(t, 5, timer.Tick(), "resume must continue from accumulated time")
}

func TestTimerSelfCorrectsMissedTicks(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimerWithClock(clock.Now)

	timer.Start()
	// Seven seconds pass but only one tick fires; wall-clock subtraction
	// must still report the full span.
	clock.Advance(7 * time.Second)
	assert.Equal(t, 7, timer.Tick())
}

func TestTimerStartWhileRunningIsNoop(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimerWithClock(clock.Now)

	timer.Start()
	clock.Advance(4 * time.Second)
	assert.False(t, timer.Start(), "second start must be rejected")
	assert.Equal(t, 4, timer.Tick(), "restart must not reanchor the session start")
}

func TestTimerReset(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimerWithClock(clock.Now)

	timer.Start()
	clock.Advance(10 * time.Second)
	timer.Tick()
	timer.Reset()

	assert.Equal(t, StateIdle, timer.State())
	assert.Equal(t, 0, timer.Elapsed())

	// A fresh start counts from zero again.
	timer.Start()
	clock.Advance(2 * time.Second)
	assert.Equal(t, 2, timer.Tick())
}

func TestTimerTickWhilePausedDoesNotAdvance(t *testing.T) {
	clock := newFakeClock()
	timer := NewTimerWithClock(clock.Now)

	timer.Start()
	clock.Advance(5 * time.Second)
	timer.Tick()
	timer.Pause()

	clock.Advance(60 * time.Second)
	assert.Equal(t, 5, timer.Tick())
	assert.Equal(t, 5, timer.Tick())
}
