package engine

// Phase is the lifecycle state of a RoundEngine
type Phase int

const (
	// PhaseIdle is the state before the first Start
	PhaseIdle Phase = iota
	// PhaseInterRoundWait waits for the delay timer before raising targets
	PhaseInterRoundWait
	// PhaseRoundActive has targets raised and accepts strikes
	PhaseRoundActive
	// PhaseEnded is terminal until the next Start
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseInterRoundWait:
		return "InterRoundWait"
	case PhaseRoundActive:
		return "RoundActive"
	case PhaseEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Active reports whether a game is in progress
func (p Phase) Active() bool {
	return p == PhaseInterRoundWait || p == PhaseRoundActive
}

// validTransitions lists every phase change the engine performs
// Start may restart from any phase, so InterRoundWait is reachable from all of them
var validTransitions = map[Phase][]Phase{
	PhaseIdle:           {PhaseInterRoundWait},
	PhaseInterRoundWait: {PhaseInterRoundWait, PhaseRoundActive, PhaseEnded},
	PhaseRoundActive:    {PhaseInterRoundWait, PhaseEnded},
	PhaseEnded:          {PhaseInterRoundWait},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}
