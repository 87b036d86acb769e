package constants

import "time"

// Board layout (terminal cells)
const (
	// CellWidth and CellHeight are the size of one hole on screen
	CellWidth  = 11
	CellHeight = 5

	// CellGap is the blank spacing between holes
	CellGap = 1

	// BoardTop is the first screen row of the board, leaving room for the header
	BoardTop = 3

	// BoardLeft is the first screen column of the board
	BoardLeft = 2
)

// Header field labels
const (
	FieldRound   = "Round"
	FieldScore   = "Score"
	FieldElapsed = "Round time"
	FieldBest    = "Best"
)

// FeedbackTimeout is how long a hit/miss message stays on the feedback line
const FeedbackTimeout = 800 * time.Millisecond

// Slot glyphs, centered in the cell
const (
	GlyphHole   = "___"
	GlyphMole   = "(o.o)"
	GlyphTarget = "(O.O)"
)

// Screen rows below the board
const (
	// StatusRow shows difficulty and game state
	StatusRow = 1

	// FeedbackRow is the first row under the board
	FeedbackRow = BoardTop + 3*(CellHeight+CellGap)

	// HelpRow lists the key bindings
	HelpRow = FeedbackRow + 1
)
