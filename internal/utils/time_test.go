package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0 min 0 sec", FormatElapsed(0))
	assert.Equal(t, "0 min 59 sec", FormatElapsed(59))
	assert.Equal(t, "2 min 5 sec", FormatElapsed(125))
}

func TestWalkedMinutesRounding(t *testing.T) {
	assert.Equal(t, 1.0, WalkedMinutes(60))
	assert.Equal(t, 1.5, WalkedMinutes(90))
	assert.Equal(t, 0.02, WalkedMinutes(1))
}

func TestWalkedMinutesRoundTripTolerance(t *testing.T) {
	// Stored minutes times 60 must stay within a second of the original.
	for elapsed := 0; elapsed <= 3600; elapsed += 7 {
		stored := WalkedMinutes(elapsed)
		assert.Less(t, math.Abs(stored*60-float64(elapsed)), 0.6, "elapsed=%d", elapsed)
	}
}
