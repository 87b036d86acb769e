package input

import "github.com/lixenwraith/whac-a-mole/engine"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // Ctrl+S
	IntentResize     // Terminal resize event

	// Game control
	IntentStart            // s, Enter
	IntentStop             // x
	IntentSelectDifficulty // e, m, h

	// Board
	IntentStrike // Keypad rune, press then release on Slot
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentResize:
		return "resize"
	case IntentStart:
		return "start"
	case IntentStop:
		return "stop"
	case IntentSelectDifficulty:
		return "select_difficulty"
	case IntentStrike:
		return "strike"
	default:
		return "none"
	}
}

// Intent is the resolved meaning of one key event
type Intent struct {
	Type       IntentType
	Slot       int               // IntentStrike
	Difficulty engine.Difficulty // IntentSelectDifficulty
}
