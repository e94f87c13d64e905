package walk

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/minseokang/walkmate/internal/breeds"
	"github.com/minseokang/walkmate/internal/domain"
)

// tickPeriod is the scheduler wake-up interval for a running session.
const tickPeriod = time.Second

// Session bundles the timer, progress notifier and step meter for one dog
// for the lifetime of one walk-tracking visit. It is never persisted; saving
// goes through the session recorder with a Snapshot.
type Session struct {
	ID                 string
	Dog                domain.Dog
	RecommendedMinutes int

	timer    *Timer
	notifier *Notifier
	steps    *StepMeter

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// Snapshot is the session state the recorder persists from.
type Snapshot struct {
	ElapsedSeconds     int
	Steps              int
	RecommendedMinutes int
	StepsAvailable     bool
}

// NewSession creates an idle session for the given dog. The recommended walk
// duration is derived once from the breed table; the step source is attached
// immediately so counting spans pauses.
func NewSession(table *breeds.Table, dog domain.Dog, sink domain.NotificationSink, src domain.StepSource) *Session {
	recommended := RecommendedWalkMinutes(table, dog.Breed, dog.Age)

	s := &Session{
		ID:                 uuid.New().String(),
		Dog:                dog,
		RecommendedMinutes: recommended,
		timer:              NewTimer(),
		notifier:           NewNotifier(recommended, dog.Name, sink),
		steps:              NewStepMeter(nil),
	}
	s.steps.Attach(src)
	return s
}

// Start begins or resumes the walk and launches the 1 Hz tick loop.
func (s *Session) Start() {
	if !s.timer.Start() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.stop, s.done)
}

// Pause stops the tick loop and freezes elapsed time.
func (s *Session) Pause() {
	s.timer.Pause()
	s.cancelTicker()
}

// Reset discards the session's accumulated state: elapsed time, fired
// thresholds and step count all return to zero. The step subscription stays.
func (s *Session) Reset() {
	s.cancelTicker()
	s.timer.Reset()
	s.notifier.Reset()
	s.steps.ResetSteps()
}

// Close tears the session down when its screen goes away. Idempotent.
func (s *Session) Close() {
	s.cancelTicker()
	s.steps.Close()
}

// State returns the timer state.
func (s *Session) State() TimerState {
	return s.timer.State()
}

// Snapshot captures the current session values for display or saving.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ElapsedSeconds:     s.timer.Tick(),
		Steps:              s.steps.Steps(),
		RecommendedMinutes: s.RecommendedMinutes,
		StepsAvailable:     s.steps.Available(),
	}
}

func (s *Session) run(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(tickPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.notifier.Observe(s.timer.Tick())
		case <-stop:
			return
		}
	}
}

func (s *Session) cancelTicker() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop = nil
	s.done = nil
	s.mu.Unlock()

	if stop != nil {
		close(stop)
		<-done
	}
}
