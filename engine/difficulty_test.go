package engine

import (
	"errors"
	"testing"
	"time"
)

func TestDifficultyTable(t *testing.T) {
	tests := []struct {
		d        Difficulty
		interval time.Duration
		targets  int
		rounds   int
	}{
		{Easy, 3000 * time.Millisecond, 5, 5},
		{Medium, 2000 * time.Millisecond, 5, 7},
		{Hard, 1000 * time.Millisecond, 5, 9},
	}

	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			p, err := tt.d.Params()
			if err != nil {
				t.Fatalf("Expected params, got %v", err)
			}
			if p.InterRoundInterval != tt.interval {
				t.Errorf("Expected interval %v, got %v", tt.interval, p.InterRoundInterval)
			}
			if p.RoundTargets != tt.targets {
				t.Errorf("Expected %d targets, got %d", tt.targets, p.RoundTargets)
			}
			if p.Rounds != tt.rounds {
				t.Errorf("Expected %d rounds, got %d", tt.rounds, p.Rounds)
			}
		})
	}
}

func TestDifficultyUnknown(t *testing.T) {
	d := Difficulty(7)
	if d.Valid() {
		t.Error("Expected Difficulty(7) to be invalid")
	}
	if _, err := d.Params(); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("Expected ErrUnknownDifficulty, got %v", err)
	}
	if d.String() != "difficulty(7)" {
		t.Errorf("Expected difficulty(7), got %q", d.String())
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range Difficulties() {
		got, err := ParseDifficulty(" " + d.String() + " ")
		if err != nil || got != d {
			t.Errorf("Expected %v, got %v (%v)", d, got, err)
		}
	}
	if got, err := ParseDifficulty("HARD"); err != nil || got != Hard {
		t.Errorf("Expected case-insensitive parse, got %v (%v)", got, err)
	}
	if _, err := ParseDifficulty("nightmare"); !errors.Is(err, ErrUnknownDifficulty) {
		t.Errorf("Expected ErrUnknownDifficulty, got %v", err)
	}
}

func TestPhaseTransitions(t *testing.T) {
	tests := []struct {
		from, to Phase
		valid    bool
	}{
		{PhaseIdle, PhaseInterRoundWait, true},
		{PhaseIdle, PhaseRoundActive, false},
		{PhaseIdle, PhaseEnded, false},
		{PhaseInterRoundWait, PhaseRoundActive, true},
		{PhaseInterRoundWait, PhaseEnded, true},
		{PhaseInterRoundWait, PhaseInterRoundWait, true},
		{PhaseRoundActive, PhaseInterRoundWait, true},
		{PhaseRoundActive, PhaseEnded, true},
		{PhaseRoundActive, PhaseRoundActive, false},
		{PhaseEnded, PhaseInterRoundWait, true},
		{PhaseEnded, PhaseRoundActive, false},
		{PhaseEnded, PhaseIdle, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.valid {
			t.Errorf("%v -> %v: expected %v, got %v", tt.from, tt.to, tt.valid, got)
		}
	}
}

func TestPhaseActive(t *testing.T) {
	if PhaseIdle.Active() || PhaseEnded.Active() {
		t.Error("Expected Idle and Ended to be inactive")
	}
	if !PhaseInterRoundWait.Active() || !PhaseRoundActive.Active() {
		t.Error("Expected InterRoundWait and RoundActive to be active")
	}
	if Phase(42).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %q", Phase(42).String())
	}
}
