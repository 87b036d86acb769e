package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/whac-a-mole/constants"
	"github.com/lixenwraith/whac-a-mole/engine"
	"github.com/lixenwraith/whac-a-mole/input"
)

// strikeKind colors the border of the last struck slot
type strikeKind int

const (
	strikeNone strikeKind = iota
	strikeHit
	strikeWrong
	strikeMiss
)

var (
	styleDefault = tcell.StyleDefault
	styleLabel   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHole    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleMole    = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleTarget  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHit     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleWrong   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleMiss    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHeader  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

// View renders the board and the information fields on a tcell screen
// It implements engine.Presenter; every notification updates state and redraws
type View struct {
	screen tcell.Screen
	clock  engine.TimeSource
	keys   *input.KeyMap

	raised      [constants.TargetSlots]bool
	highlighted int

	round, rounds int
	score         float64
	elapsed       string
	best          string
	difficulty    engine.Difficulty
	status        string

	feedback      string
	feedbackStyle tcell.Style
	feedbackAt    time.Time
	struck        int
	struckKind    strikeKind
}

// NewView creates a view over screen; keys may be nil to hide slot labels
func NewView(screen tcell.Screen, clock engine.TimeSource, keys *input.KeyMap) *View {
	return &View{
		screen:      screen,
		clock:       clock,
		keys:        keys,
		highlighted: engine.NoTarget,
		struck:      engine.NoTarget,
		elapsed:     engine.FormatElapsed(0),
		best:        "-",
		status:      "press s to start",
	}
}

// ===== PRESENTER =====

func (v *View) NotifyRoundSetup(targets []int, highlighted int) {
	v.raised = [constants.TargetSlots]bool{}
	for _, id := range targets {
		if id >= 0 && id < constants.TargetSlots {
			v.raised[id] = true
		}
	}
	v.highlighted = highlighted
	v.clearStrike()
	v.Draw()
}

func (v *View) NotifyAllLowered() {
	v.raised = [constants.TargetSlots]bool{}
	v.highlighted = engine.NoTarget
	v.Draw()
}

func (v *View) NotifyHit(id int) {
	v.setStrike(id, strikeHit, "hit!", styleHit)
}

func (v *View) NotifyWrongHit(id int) {
	v.setStrike(id, strikeWrong, fmt.Sprintf("wrong target -%.1f", constants.WrongHitPenalty), styleWrong)
}

func (v *View) NotifyMiss(id int) {
	v.setStrike(id, strikeMiss, "miss", styleMiss)
}

func (v *View) NotifyElapsedTime(elapsed string) {
	v.elapsed = elapsed
	if v.struckKind != strikeNone && v.clock.Now().Sub(v.feedbackAt) > constants.FeedbackTimeout {
		v.clearStrike()
	}
	v.Draw()
}

func (v *View) NotifyRoundAndScore(round, rounds int, score float64) {
	v.round, v.rounds, v.score = round, rounds, score
	if round == 0 {
		v.status = "get ready"
		v.feedback = ""
		v.clearStrike()
	} else {
		v.status = "playing"
	}
	v.Draw()
}

func (v *View) NotifyGameEnded(completed bool, finalScore float64) {
	v.elapsed = engine.FormatElapsed(0)
	if completed {
		v.status = "game over, press s to play again"
		v.feedback = fmt.Sprintf("final score %.3f", finalScore)
		v.feedbackStyle = styleHeader
	} else {
		v.status = "stopped, no high score"
		v.feedback = ""
	}
	v.Draw()
}

// ===== STATE =====

// SetDifficulty shows the difficulty applied on the next start
func (v *View) SetDifficulty(d engine.Difficulty) {
	v.difficulty = d
	v.Draw()
}

// SetBest shows the best completed score
func (v *View) SetBest(score float64) {
	v.best = fmt.Sprintf("%.3f", score)
	v.Draw()
}

// SetStatus replaces the status line text
func (v *View) SetStatus(s string) {
	v.status = s
	v.Draw()
}

// Raised reports whether slot is shown raised
func (v *View) Raised(slot int) bool {
	return slot >= 0 && slot < constants.TargetSlots && v.raised[slot]
}

// Highlighted returns the slot drawn as the strike target
func (v *View) Highlighted() int {
	return v.highlighted
}

// Feedback returns the current feedback line
func (v *View) Feedback() string {
	return v.feedback
}

func (v *View) setStrike(id int, kind strikeKind, text string, style tcell.Style) {
	v.struck = id
	v.struckKind = kind
	v.feedback = text
	v.feedbackStyle = style
	v.feedbackAt = v.clock.Now()
	v.Draw()
}

func (v *View) clearStrike() {
	v.struck = engine.NoTarget
	v.struckKind = strikeNone
}

// ===== GEOMETRY =====

// cellOrigin returns the top-left screen cell of slot
func cellOrigin(slot int) (int, int) {
	col := slot % constants.BoardColumns
	row := slot / constants.BoardColumns
	x := constants.BoardLeft + col*(constants.CellWidth+constants.CellGap)
	y := constants.BoardTop + row*(constants.CellHeight+constants.CellGap)
	return x, y
}

// SlotCenter returns the screen position at the middle of slot
func SlotCenter(slot int) (int, int) {
	x, y := cellOrigin(slot)
	return x + constants.CellWidth/2, y + constants.CellHeight/2
}

// SlotAt hit-tests a screen position, NoTarget when outside every cell
func (v *View) SlotAt(x, y int) int {
	return SlotAt(x, y)
}

// SlotAt hit-tests a screen position against the fixed board layout
func SlotAt(x, y int) int {
	dx := x - constants.BoardLeft
	dy := y - constants.BoardTop
	if dx < 0 || dy < 0 {
		return engine.NoTarget
	}

	strideX := constants.CellWidth + constants.CellGap
	strideY := constants.CellHeight + constants.CellGap
	col, offX := dx/strideX, dx%strideX
	row, offY := dy/strideY, dy%strideY

	rows := constants.TargetSlots / constants.BoardColumns
	if col >= constants.BoardColumns || row >= rows {
		return engine.NoTarget
	}
	if offX >= constants.CellWidth || offY >= constants.CellHeight {
		// Gap between cells
		return engine.NoTarget
	}
	return row*constants.BoardColumns + col
}

// ===== DRAWING =====

// Draw repaints the whole screen
func (v *View) Draw() {
	v.screen.Clear()

	v.drawHeader()
	for slot := 0; slot < constants.TargetSlots; slot++ {
		v.drawCell(slot)
	}
	drawText(v.screen, constants.BoardLeft, constants.FeedbackRow, v.feedback, v.feedbackStyle)
	drawText(v.screen, constants.BoardLeft, constants.HelpRow,
		"s start  x stop  e/m/h difficulty  ^S mute  q quit", styleLabel)

	v.screen.Show()
}

func (v *View) drawHeader() {
	x := constants.BoardLeft
	fields := []struct{ label, value string }{
		{constants.FieldRound, fmt.Sprintf("%d/%d", v.round, v.rounds)},
		{constants.FieldScore, fmt.Sprintf("%.3f", v.score)},
		{constants.FieldElapsed, v.elapsed},
		{constants.FieldBest, v.best},
	}
	for _, f := range fields {
		x = drawText(v.screen, x, 0, f.label+" ", styleLabel)
		x = drawText(v.screen, x, 0, f.value, styleHeader)
		x += 3
	}

	line := fmt.Sprintf("[%s] %s", v.difficulty, v.status)
	drawText(v.screen, constants.BoardLeft, constants.StatusRow, line, styleDefault)
}

func (v *View) drawCell(slot int) {
	x0, y0 := cellOrigin(slot)
	w, h := constants.CellWidth, constants.CellHeight

	border := styleLabel
	if slot == v.struck {
		switch v.struckKind {
		case strikeHit:
			border = styleHit
		case strikeWrong:
			border = styleWrong
		case strikeMiss:
			border = styleMiss
		}
	}

	for x := x0 + 1; x < x0+w-1; x++ {
		v.screen.SetContent(x, y0, tcell.RuneHLine, nil, border)
		v.screen.SetContent(x, y0+h-1, tcell.RuneHLine, nil, border)
	}
	for y := y0 + 1; y < y0+h-1; y++ {
		v.screen.SetContent(x0, y, tcell.RuneVLine, nil, border)
		v.screen.SetContent(x0+w-1, y, tcell.RuneVLine, nil, border)
	}
	v.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, border)
	v.screen.SetContent(x0+w-1, y0, tcell.RuneURCorner, nil, border)
	v.screen.SetContent(x0, y0+h-1, tcell.RuneLLCorner, nil, border)
	v.screen.SetContent(x0+w-1, y0+h-1, tcell.RuneLRCorner, nil, border)

	if v.keys != nil {
		if r := v.keys.Rune(slot); r != 0 {
			v.screen.SetContent(x0+1, y0+1, r, nil, styleLabel)
		}
	}

	glyph, style := constants.GlyphHole, styleHole
	switch {
	case v.raised[slot] && slot == v.highlighted:
		glyph, style = constants.GlyphTarget, styleTarget
	case v.raised[slot]:
		glyph, style = constants.GlyphMole, styleMole
	}
	cx, cy := SlotCenter(slot)
	drawText(v.screen, cx-len(glyph)/2, cy, glyph, style)
}

// drawText writes s from (x, y) and returns the column after the last rune
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
