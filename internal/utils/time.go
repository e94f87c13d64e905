package utils

import (
	"fmt"
	"math"
)

// FormatElapsed renders elapsed seconds the way the walk screen shows them.
func FormatElapsed(seconds int) string {
	return fmt.Sprintf("%d min %d sec", seconds/60, seconds%60)
}

// WalkedMinutes converts elapsed seconds to minutes with two-decimal
// rounding, the precision stored on activity records.
func WalkedMinutes(elapsedSeconds int) float64 {
	return math.Round(float64(elapsedSeconds)/60*100) / 100
}
