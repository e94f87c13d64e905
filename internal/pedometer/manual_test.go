package pedometer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualSourcePublishReachesSubscribers(t *testing.T) {
	src := NewManualSource()
	require.True(t, src.IsAvailable())

	var a, b []int
	_, err := src.Subscribe(func(steps int) { a = append(a, steps) })
	require.NoError(t, err)
	_, err = src.Subscribe(func(steps int) { b = append(b, steps) })
	require.NoError(t, err)

	src.Publish(100)
	src.Publish(250)

	assert.Equal(t, []int{100, 250}, a)
	assert.Equal(t, []int{100, 250}, b)
}

func TestManualSourceUnsubscribe(t *testing.T) {
	src := NewManualSource()

	var seen []int
	unsub, err := src.Subscribe(func(steps int) { seen = append(seen, steps) })
	require.NoError(t, err)

	src.Publish(10)
	unsub()
	src.Publish(20)

	assert.Equal(t, []int{10}, seen)
}

func TestUnavailableSource(t *testing.T) {
	src := Unavailable{}
	assert.False(t, src.IsAvailable())

	unsub, err := src.Subscribe(func(int) {})
	require.NoError(t, err)
	assert.NotPanics(t, unsub)
}
