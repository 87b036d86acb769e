package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/whac-a-mole/engine"
)

// KeyTable maps tcell key events to intents
// Keypad runes are checked before control runes, so a layout may reuse any letter
type KeyTable struct {
	Keypad *KeyMap

	// Special keys (Ctrl+*, Enter, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Control rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default control bindings over keypad
func DefaultKeyTable(keypad *KeyMap) *KeyTable {
	return &KeyTable{
		Keypad: keypad,
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyEnter:  {Type: IntentStart},
			tcell.KeyEscape: {Type: IntentQuit},
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyCtrlS:  {Type: IntentToggleMute},
		},
		Runes: map[rune]Intent{
			's': {Type: IntentStart},
			'x': {Type: IntentStop},
			'q': {Type: IntentQuit},
			'e': {Type: IntentSelectDifficulty, Difficulty: engine.Easy},
			'm': {Type: IntentSelectDifficulty, Difficulty: engine.Medium},
			'h': {Type: IntentSelectDifficulty, Difficulty: engine.Hard},
		},
	}
}

// Resolve classifies ev
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Intent {
	if ev.Key() != tcell.KeyRune {
		if in, ok := kt.SpecialKeys[ev.Key()]; ok {
			return in
		}
		return Intent{Type: IntentNone}
	}

	r := ev.Rune()
	if kt.Keypad != nil {
		if slot, ok := kt.Keypad.Slot(r); ok {
			return Intent{Type: IntentStrike, Slot: slot}
		}
	}
	if in, ok := kt.Runes[r]; ok {
		return in
	}
	return Intent{Type: IntentNone}
}
