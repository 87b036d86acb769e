package input

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/whac-a-mole/constants"
)

// DefaultKeypad lays slots out like a numeric keypad, top row first
const DefaultKeypad = "789456123"

// ErrInvalidKeypad is returned for layouts that are not one distinct rune per slot
var ErrInvalidKeypad = errors.New("invalid keypad layout")

// KeyMap maps keypad runes to board slots
type KeyMap struct {
	slots map[rune]int
	runes [constants.TargetSlots]rune
}

// NewKeyMap parses a layout string, rune i strikes slot i
func NewKeyMap(layout string) (*KeyMap, error) {
	runes := []rune(layout)
	if len(runes) != constants.TargetSlots {
		return nil, fmt.Errorf("%w: want %d keys, got %d", ErrInvalidKeypad, constants.TargetSlots, len(runes))
	}

	km := &KeyMap{slots: make(map[rune]int, constants.TargetSlots)}
	for i, r := range runes {
		if _, dup := km.slots[r]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidKeypad, r)
		}
		km.slots[r] = i
		km.runes[i] = r
	}
	return km, nil
}

// Slot returns the slot bound to r
func (km *KeyMap) Slot(r rune) (int, bool) {
	slot, ok := km.slots[r]
	return slot, ok
}

// Rune returns the key bound to slot, zero when out of range
func (km *KeyMap) Rune(slot int) rune {
	if slot < 0 || slot >= len(km.runes) {
		return 0
	}
	return km.runes[slot]
}
