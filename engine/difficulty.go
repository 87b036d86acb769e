package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/whac-a-mole/constants"
)

// ErrUnknownDifficulty is returned for values outside the Difficulty enumeration
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty selects the pacing table of a game
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Params is the immutable per-difficulty configuration looked up at game start
type Params struct {
	InterRoundInterval time.Duration // Wait between rounds, and before the first one
	RoundTargets       int           // Targets raised each round, index 0 is the strike target
	Rounds             int           // Rounds per game
}

var difficultyTable = map[Difficulty]Params{
	Easy: {
		InterRoundInterval: constants.EasyInterRoundInterval,
		RoundTargets:       constants.EasyRoundTargets,
		Rounds:             constants.EasyRounds,
	},
	Medium: {
		InterRoundInterval: constants.MediumInterRoundInterval,
		RoundTargets:       constants.MediumRoundTargets,
		Rounds:             constants.MediumRounds,
	},
	Hard: {
		InterRoundInterval: constants.HardInterRoundInterval,
		RoundTargets:       constants.HardRoundTargets,
		Rounds:             constants.HardRounds,
	},
}

// Params returns the table entry for d
func (d Difficulty) Params() (Params, error) {
	p, ok := difficultyTable[d]
	if !ok {
		return Params{}, fmt.Errorf("%w: %d", ErrUnknownDifficulty, int(d))
	}
	return p, nil
}

// Valid reports whether d is part of the enumeration
func (d Difficulty) Valid() bool {
	_, ok := difficultyTable[d]
	return ok
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty converts easy/medium/hard (any case) to a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// Difficulties lists the enumeration in ascending order
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}
