package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minseokang/walkmate/internal/domain"
)

func testDog() domain.Dog {
	return domain.Dog{
		OwnerUID: "owner-1",
		Name:     "Rex",
		Breed:    "Labrador Retriever",
		Gender:   domain.GenderMale,
		Age:      "4",
		Weight:   "72",
	}
}

func TestNewSessionDerivesRecommendedMinutes(t *testing.T) {
	table := testTable(t)
	s := NewSession(table, testDog(), nil, nil)
	defer s.Close()

	assert.Equal(t, 60, s.RecommendedMinutes)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, StateIdle, s.State())
}

func TestNewSessionUnknownBreedUsesFallback(t *testing.T) {
	table := testTable(t)
	dog := testDog()
	dog.Breed = "Direwolf"

	s := NewSession(table, dog, nil, nil)
	defer s.Close()

	assert.Equal(t, FallbackWalkMinutes, s.RecommendedMinutes)
}

func TestSessionSnapshotReflectsSteps(t *testing.T) {
	table := testTable(t)
	src := &fakeStepSource{available: true}

	s := NewSession(table, testDog(), nil, src)
	defer s.Close()

	src.emit(120)

	snap := s.Snapshot()
	assert.Equal(t, 120, snap.Steps)
	assert.True(t, snap.StepsAvailable)
	assert.Equal(t, 60, snap.RecommendedMinutes)
}

func TestSessionResetClearsEverything(t *testing.T) {
	table := testTable(t)
	src := &fakeStepSource{available: true}

	s := NewSession(table, testDog(), nil, src)
	defer s.Close()

	s.Start()
	src.emit(50)
	s.Reset()

	snap := s.Snapshot()
	assert.Equal(t, 0, snap.ElapsedSeconds)
	assert.Equal(t, 0, snap.Steps)
	assert.Equal(t, StateIdle, s.State())

	// The subscription survives a reset.
	src.emit(7)
	assert.Equal(t, 7, s.Snapshot().Steps)
}

func TestSessionLifecycleIsIdempotent(t *testing.T) {
	table := testTable(t)
	s := NewSession(table, testDog(), nil, nil)

	s.Start()
	s.Start()
	require.Equal(t, StateRunning, s.State())

	s.Pause()
	s.Pause()
	require.Equal(t, StatePaused, s.State())

	s.Start()
	s.Close()
	s.Close()
}
