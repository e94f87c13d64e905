package walk

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSink struct {
	mu       sync.Mutex
	messages []string
}

func (s *captureSink) Deliver(title, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, body)
}

func (s *captureSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func TestNotifierFiresEachThresholdOnce(t *testing.T) {
	sink := &captureSink{}
	// 10 recommended minutes = 600s; thresholds at 60, 180, 300, 420, 600.
	n := NewNotifier(10, "Rex", sink)

	var fired []int
	for elapsed := 0; elapsed <= 650; elapsed++ {
		fired = append(fired, n.Observe(elapsed)...)
	}

	assert.Equal(t, []int{10, 30, 50, 70, 100}, fired)
	assert.Equal(t, 5, sink.count())
}

func TestNotifierExactBoundaries(t *testing.T) {
	n := NewNotifier(10, "Rex", &captureSink{})

	assert.Empty(t, n.Observe(59))
	assert.Equal(t, []int{10}, n.Observe(60))
	assert.Empty(t, n.Observe(60), "re-observing the same second must not refire")
	assert.Equal(t, []int{30}, n.Observe(180))
	assert.Equal(t, []int{50}, n.Observe(300))
	assert.Equal(t, []int{70}, n.Observe(420))
	assert.Equal(t, []int{100}, n.Observe(600))
	assert.Empty(t, n.Observe(10000))
}

func TestNotifierLateTickCrossesSkippedThresholds(t *testing.T) {
	n := NewNotifier(10, "Rex", &captureSink{})

	// One late observation must catch every threshold it jumped over.
	assert.Equal(t, []int{10, 30, 50}, n.Observe(310))
}

func TestNotifierResetAllowsRefire(t *testing.T) {
	sink := &captureSink{}
	n := NewNotifier(10, "Rex", sink)

	require.Equal(t, []int{10}, n.Observe(60))
	assert.Empty(t, n.Observe(60))

	n.Reset()

	assert.Equal(t, []int{10}, n.Observe(60), "threshold must fire again after reset")
	assert.Equal(t, 2, sink.count())
}

func TestNotifierZeroDurationFiresNothing(t *testing.T) {
	n := NewNotifier(0, "Rex", &captureSink{})
	assert.Empty(t, n.Observe(1000))
}

func TestNotifierNilSinkDoesNotPanic(t *testing.T) {
	n := NewNotifier(10, "Rex", nil)
	assert.NotPanics(t, func() { n.Observe(600) })
}

func TestNotifierFloorSemantics(t *testing.T) {
	// 1 recommended minute = 60s; 10% of 60 is 6s exactly, 30% is 18s.
	n := NewNotifier(1, "Rex", &captureSink{})
	assert.Empty(t, n.Observe(5))
	assert.Equal(t, []int{10}, n.Observe(6))
	assert.Equal(t, []int{30}, n.Observe(18))
}
