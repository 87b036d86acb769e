package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/whac-a-mole/audio"
	"github.com/lixenwraith/whac-a-mole/constants"
	"github.com/lixenwraith/whac-a-mole/engine"
	"github.com/lixenwraith/whac-a-mole/status"
)

func newTestApp(t *testing.T, d engine.Difficulty) (*App, *engine.ManualScheduler, *status.Registry, tcell.SimulationScreen) {
	t.Helper()
	screen := newScreen(t)
	sched := engine.NewManualScheduler(testEpoch)
	reg := status.NewRegistry()
	app := NewApp(screen, sched, Config{Difficulty: d, Seed: 11, Registry: reg})
	return app, sched, reg, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// waitRound advances past the inter-round interval of d
func waitRound(t *testing.T, app *App, sched *engine.ManualScheduler, d engine.Difficulty) {
	t.Helper()
	p, _ := d.Params()
	sched.Advance(p.InterRoundInterval)
	if app.Engine().Phase() != engine.PhaseRoundActive {
		t.Fatalf("Expected RoundActive, got %v", app.Engine().Phase())
	}
}

func TestAppStartKeyBeginsGame(t *testing.T) {
	app, sched, reg, _ := newTestApp(t, engine.Medium)

	if !app.HandleEvent(key('s')) {
		t.Fatal("Expected start key not to quit")
	}
	if app.Engine().Phase() != engine.PhaseInterRoundWait {
		t.Errorf("Expected InterRoundWait, got %v", app.Engine().Phase())
	}
	if _, err := uuid.Parse(app.Session()); err != nil {
		t.Errorf("Expected a uuid session id, got %q (%v)", app.Session(), err)
	}
	if got := reg.Strings.Get(status.KeySession).Load(); got != app.Session() {
		t.Errorf("Expected registry session %q, got %q", app.Session(), got)
	}

	waitRound(t, app, sched, engine.Medium)
	targets := app.Engine().Targets()
	for _, id := range targets {
		if !app.View().Raised(id) {
			t.Errorf("Expected slot %d raised on screen", id)
		}
	}
	if app.View().Highlighted() != targets[0] {
		t.Errorf("Expected highlight %d, got %d", targets[0], app.View().Highlighted())
	}
}

func TestAppEnterStartsAndEachStartIsNewSession(t *testing.T) {
	app, _, _, _ := newTestApp(t, engine.Easy)

	app.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	first := app.Session()
	app.HandleEvent(key('s'))
	if app.Session() == first {
		t.Error("Expected restart to allocate a new session id")
	}
	if app.Engine().CurrentRound() != 0 {
		t.Errorf("Expected restart at round 0, got %d", app.Engine().CurrentRound())
	}
}

func TestAppMouseStrikeHits(t *testing.T) {
	app, sched, reg, _ := newTestApp(t, engine.Hard)
	app.HandleEvent(key('s'))
	waitRound(t, app, sched, engine.Hard)

	sched.Advance(time.Second)
	target := app.Engine().Targets()[0]
	x, y := SlotCenter(target)
	app.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonPrimary, tcell.ModNone))
	if app.Engine().CurrentRound() != 0 {
		t.Fatal("Expected press alone not to resolve the strike")
	}
	app.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))

	if app.Engine().CurrentRound() != 1 {
		t.Fatalf("Expected round resolved on release, got round %d", app.Engine().CurrentRound())
	}
	if got := app.Engine().CurrentScore(); got < 0.79 || got > 0.81 {
		t.Errorf("Expected score about 0.8 after 1s, got %f", got)
	}
	if reg.Ints.Get(status.KeyHits).Load() != 1 {
		t.Errorf("Expected one recorded hit, got %d", reg.Ints.Get(status.KeyHits).Load())
	}
	if app.View().Feedback() != "hit!" {
		t.Errorf("Expected hit feedback, got %q", app.View().Feedback())
	}
}

func TestAppSecondaryButtonCounts(t *testing.T) {
	app, sched, _, _ := newTestApp(t, engine.Hard)
	app.HandleEvent(key('s'))
	waitRound(t, app, sched, engine.Hard)

	target := app.Engine().Targets()[0]
	x, y := SlotCenter(target)
	app.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonSecondary, tcell.ModNone))
	app.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))

	if app.Engine().CurrentRound() != 1 {
		t.Errorf("Expected secondary button strike to resolve, got round %d", app.Engine().CurrentRound())
	}
}

func TestAppMouseOutsideBoardMisses(t *testing.T) {
	app, sched, reg, _ := newTestApp(t, engine.Hard)
	app.HandleEvent(key('s'))
	waitRound(t, app, sched, engine.Hard)

	app.HandleEvent(tcell.NewEventMouse(70, 1, tcell.ButtonPrimary, tcell.ModNone))
	app.HandleEvent(tcell.NewEventMouse(70, 1, tcell.ButtonNone, tcell.ModNone))

	if reg.Ints.Get(status.KeyMisses).Load() != 1 {
		t.Errorf("Expected a miss, got %d", reg.Ints.Get(status.KeyMisses).Load())
	}
	if app.Engine().Phase() != engine.PhaseRoundActive {
		t.Errorf("Expected round to keep running after a miss, got %v", app.Engine().Phase())
	}
}

func TestAppKeypadStrikeWrongHit(t *testing.T) {
	app, sched, reg, _ := newTestApp(t, engine.Hard)
	app.HandleEvent(key('s'))
	waitRound(t, app, sched, engine.Hard)

	decoy := app.Engine().Targets()[1]
	app.HandleEvent(key([]rune("789456123")[decoy]))

	if reg.Ints.Get(status.KeyWrongHits).Load() != 1 {
		t.Errorf("Expected a wrong hit, got %d", reg.Ints.Get(status.KeyWrongHits).Load())
	}
	if app.Engine().CurrentScore() != -constants.WrongHitPenalty {
		t.Errorf("Expected score %f, got %f", -constants.WrongHitPenalty, app.Engine().CurrentScore())
	}
}

func TestAppDifficultySelectionAppliesOnStart(t *testing.T) {
	app, _, _, screen := newTestApp(t, engine.Medium)
	app.HandleEvent(key('s'))
	app.HandleEvent(key('h'))

	if app.Engine().Rounds() != 7 {
		t.Errorf("Expected running game to keep medium rounds, got %d", app.Engine().Rounds())
	}
	if app.Difficulty() != engine.Hard {
		t.Errorf("Expected hard selected, got %v", app.Difficulty())
	}
	if line := rowText(screen, constants.StatusRow); !strings.Contains(line, "[hard]") {
		t.Errorf("Expected status line to show hard, got %q", line)
	}

	app.HandleEvent(key('s'))
	if app.Engine().Rounds() != 9 {
		t.Errorf("Expected hard rounds after restart, got %d", app.Engine().Rounds())
	}
}

func TestAppStopKey(t *testing.T) {
	app, sched, reg, _ := newTestApp(t, engine.Easy)
	app.HandleEvent(key('s'))
	waitRound(t, app, sched, engine.Easy)

	app.HandleEvent(key('x'))

	if app.Engine().Phase() != engine.PhaseEnded || app.Engine().Completed() {
		t.Errorf("Expected aborted game, got phase %v completed=%v", app.Engine().Phase(), app.Engine().Completed())
	}
	if reg.Ints.Get(status.KeyGamesAborted).Load() != 1 {
		t.Error("Expected abort recorded")
	}
	if sched.Pending() != 0 {
		t.Errorf("Expected timers cancelled, got %d pending", sched.Pending())
	}
}

func TestAppQuitKeys(t *testing.T) {
	app, _, _, _ := newTestApp(t, engine.Easy)
	for _, ev := range []*tcell.EventKey{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		if app.HandleEvent(ev) {
			t.Errorf("Expected %v to quit", ev.Name())
		}
	}
}

func TestAppCompletedGameUpdatesBest(t *testing.T) {
	app, sched, _, screen := newTestApp(t, engine.Easy)
	app.HandleEvent(key('s'))

	for app.Engine().Phase() != engine.PhaseEnded {
		sched.Advance(constants.UITickInterval)
		if app.Engine().Phase() == engine.PhaseRoundActive {
			app.HandleEvent(key([]rune("789456123")[app.Engine().Targets()[0]]))
		}
	}

	if !app.Engine().Completed() {
		t.Fatal("Expected completed game")
	}
	header := rowText(screen, 0)
	if strings.Contains(header, "Best -") {
		t.Errorf("Expected best score to be filled in, got %q", header)
	}
}

func TestAppMuteToggle(t *testing.T) {
	screen := newScreen(t)
	sound := audio.NewSoundManager()
	app := NewApp(screen, engine.NewManualScheduler(testEpoch), Config{Sound: sound})

	mute := tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)
	app.HandleEvent(mute)
	if !sound.Muted() {
		t.Error("Expected first toggle to mute")
	}
	app.HandleEvent(mute)
	if sound.Muted() {
		t.Error("Expected second toggle to unmute")
	}

	silent, _, _, silentScreen := newTestApp(t, engine.Easy)
	silent.HandleEvent(mute)
	if line := rowText(silentScreen, constants.StatusRow); !strings.Contains(line, "audio unavailable") {
		t.Errorf("Expected audio unavailable status, got %q", line)
	}
}

func TestAppRunQuitsOnKey(t *testing.T) {
	screen := newScreen(t)
	sched := engine.NewClockScheduler(nil)
	defer sched.Close()
	app := NewApp(screen, sched, Config{Difficulty: engine.Hard})

	errCh := make(chan error, 1)
	go func() { errCh <- app.Run(context.Background()) }()

	screen.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Expected nil on quit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected Run to return after quit key")
	}
	if app.Engine().Phase() != engine.PhaseEnded {
		t.Errorf("Expected quit to stop the game in progress, got %v", app.Engine().Phase())
	}
}

func TestAppRunHonoursContext(t *testing.T) {
	screen := newScreen(t)
	sched := engine.NewClockScheduler(nil)
	defer sched.Close()
	app := NewApp(screen, sched, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- app.Run(ctx) }()
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected Run to return after cancel")
	}
}
