package constants

import "time"

// Board
const (
	// TargetSlots is the number of physical target positions (3x3 board)
	TargetSlots = 9

	// BoardColumns is the number of slots per board row
	BoardColumns = 3
)

// Round Timing & Scoring
const (
	// MaxRoundTime is how long a raised round waits for a strike before timing out
	MaxRoundTime = 5000 * time.Millisecond

	// WrongHitPenalty is subtracted from the score when a decoy is struck
	WrongHitPenalty = 0.5
)

// Inter-round intervals per difficulty
const (
	EasyInterRoundInterval   = 3000 * time.Millisecond
	MediumInterRoundInterval = 2000 * time.Millisecond
	HardInterRoundInterval   = 1000 * time.Millisecond
)

// Raised targets per round per difficulty
const (
	EasyRoundTargets   = 5
	MediumRoundTargets = 5
	HardRoundTargets   = 5
)

// Rounds per game per difficulty
const (
	EasyRounds   = 5
	MediumRounds = 7
	HardRounds   = 9
)
