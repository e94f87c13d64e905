package walk

import (
	"sync"

	"github.com/minseokang/walkmate/internal/domain"
)

// StepMeter normalizes an external step-event source into a monotonic step
// count for the current session.
//
// Each event's value is treated as the absolute cumulative count for the
// session, not a delta to accumulate. A stale event reporting less than the
// current count is ignored so the count never moves backwards.
type StepMeter struct {
	mu          sync.Mutex
	count       int
	available   bool
	unsubscribe func()
	onChange    func(steps int)
}

// NewStepMeter creates a detached meter. onChange may be nil; when set it is
// invoked with the new count on every change.
func NewStepMeter(onChange func(steps int)) *StepMeter {
	return &StepMeter{onChange: onChange}
}

// Attach subscribes the meter to a step source and reports whether the
// source is available. An unavailable or nil source leaves the meter at
// zero; that is a degraded mode, not an error.
func (m *StepMeter) Attach(src domain.StepSource) bool {
	if src == nil || !src.IsAvailable() {
		return false
	}

	unsub, err := src.Subscribe(m.observe)
	if err != nil {
		return false
	}

	m.mu.Lock()
	m.available = true
	m.unsubscribe = unsub
	m.mu.Unlock()
	return true
}

// Steps returns the current session step count.
func (m *StepMeter) Steps() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

// Available reports whether a step source is attached.
func (m *StepMeter) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available
}

// ResetSteps zeroes the count without touching the subscription.
func (m *StepMeter) ResetSteps() {
	m.mu.Lock()
	m.count = 0
	fn := m.onChange
	m.mu.Unlock()

	if fn != nil {
		fn(0)
	}
}

// Close cancels the source subscription. Safe to call more than once.
func (m *StepMeter) Close() {
	m.mu.Lock()
	unsub := m.unsubscribe
	m.unsubscribe = nil
	m.available = false
	m.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}

func (m *StepMeter) observe(steps int) {
	m.mu.Lock()
	if steps <= m.count {
		m.mu.Unlock()
		return
	}
	m.count = steps
	fn := m.onChange
	m.mu.Unlock()

	if fn != nil {
		fn(steps)
	}
}
