package engine

import (
	"fmt"
	"time"
)

// HitReward returns the score gained by striking the target after elapsed
// Decays linearly from 1.0 at zero to 0.0 at maxRoundTime, clamped to [0, 1]
// A strike and the timeout tick can land on the same instant, the clamp keeps that case at 0
func HitReward(elapsed, maxRoundTime time.Duration) float64 {
	if maxRoundTime <= 0 {
		return 0
	}
	reward := 1.0 - float64(elapsed)/float64(maxRoundTime)
	if reward < 0 {
		return 0
	}
	if reward > 1 {
		return 1
	}
	return reward
}

// FormatElapsed renders d as seconds with millisecond precision ("3.042")
// Negative durations render as zero
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("%d.%03d", ms/1000, ms%1000)
}
