package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minseokang/walkmate/internal/breeds"
	"github.com/minseokang/walkmate/internal/domain"
)

const testDataset = `[
  {
    "Breed": "Labrador Retriever",
    "Puppy_Age": 1,
    "Adult_Age": 7,
    "Puppy_Walk_Time(Min)": 20,
    "Adult_Walk_Time(Min)": 60,
    "Senior_Walk_Time(Min)": 30,
    "Overweight_Male(lbs)": 80,
    "Overweight_Female(lbs)": 70
  }
]`

func testTable(t *testing.T) *breeds.Table {
	t.Helper()
	table, err := breeds.Parse([]byte(testDataset))
	require.NoError(t, err)
	return table
}

func testDog() *domain.Dog {
	return &domain.Dog{
		ID:       1,
		OwnerUID: "owner-1",
		Name:     "Rex",
		Breed:    "Labrador Retriever",
		Gender:   domain.GenderMale,
		Age:      "4",
		Weight:   "72",
	}
}

func TestRegistryBeginReplacesPrevious(t *testing.T) {
	registry := NewSessionRegistry()
	table := testTable(t)

	first := registry.Begin(42, table, testDog(), nil)
	first.session.Start()

	second := registry.Begin(42, table, testDog(), nil)

	got, ok := registry.Get(42)
	require.True(t, ok)
	assert.Same(t, second, got)

	// the replaced session is closed: step reports no longer reach it
	first.source.Publish(50)
	assert.Equal(t, 0, first.session.Snapshot().Steps)
}

func TestRegistryIsPerUser(t *testing.T) {
	registry := NewSessionRegistry()
	table := testTable(t)

	registry.Begin(1, table, testDog(), nil)

	_, ok := registry.Get(2)
	assert.False(t, ok)
}

func TestRegistryEnd(t *testing.T) {
	registry := NewSessionRegistry()
	table := testTable(t)

	visit := registry.Begin(7, table, testDog(), nil)
	visit.session.Start()

	registry.End(7)

	_, ok := registry.Get(7)
	assert.False(t, ok)

	visit.source.Publish(30)
	assert.Equal(t, 0, visit.session.Snapshot().Steps)

	// ending again is a no-op
	registry.End(7)
}

func TestRegistryStepReportsReachSession(t *testing.T) {
	registry := NewSessionRegistry()
	visit := registry.Begin(9, testTable(t), testDog(), nil)

	visit.source.Publish(120)
	assert.Equal(t, 120, visit.session.Snapshot().Steps)
}
