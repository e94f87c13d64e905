package pedometer

import (
	"sync"
)

// ManualSource is a step source fed by user-reported counts. Telegram has no
// device pedometer, so the walk screen lets the owner report the cumulative
// count from their phone or watch; each report is pushed to subscribers like
// a device event would be.
type ManualSource struct {
	mu          sync.Mutex
	nextID      int
	subscribers map[int]func(steps int)
}

// NewManualSource creates an available, empty source.
func NewManualSource() *ManualSource {
	return &ManualSource{subscribers: make(map[int]func(int))}
}

// IsAvailable always reports true; manual entry needs no hardware.
func (s *ManualSource) IsAvailable() bool { return true }

// Subscribe registers a callback and returns its cancel handle.
func (s *ManualSource) Subscribe(fn func(steps int)) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}, nil
}

// Publish pushes a cumulative step count to all subscribers.
func (s *ManualSource) Publish(steps int) {
	s.mu.Lock()
	fns := make([]func(int), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(steps)
	}
}

// Unavailable is a step source for devices without any counting capability.
// Attaching it degrades the session to steps=0 without an error.
type Unavailable struct{}

func (Unavailable) IsAvailable() bool { return false }

func (Unavailable) Subscribe(func(steps int)) (func(), error) {
	return func() {}, nil
}
