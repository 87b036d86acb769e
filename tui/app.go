package tui

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/lixenwraith/whac-a-mole/audio"
	"github.com/lixenwraith/whac-a-mole/constants"
	"github.com/lixenwraith/whac-a-mole/core"
	"github.com/lixenwraith/whac-a-mole/engine"
	"github.com/lixenwraith/whac-a-mole/input"
	"github.com/lixenwraith/whac-a-mole/status"
)

// Dispatcher is the consumer side of a real-time scheduler, see engine.ClockScheduler
type Dispatcher interface {
	Ready() <-chan struct{}
	Dispatch() int
}

// Muter toggles sound output, satisfied by *audio.SoundManager
type Muter interface {
	Muted() bool
	SetMuted(bool)
}

// Config wires the collaborators of an App
type Config struct {
	Difficulty engine.Difficulty
	Seed       uint64 // 0 seeds from the scheduler clock
	Keypad     *input.KeyMap
	Sound      *audio.SoundManager // nil runs silent
	Registry   *status.Registry    // nil allocates a private one
}

// App owns the event loop: terminal input, timer dispatch and game control
// Every engine call happens on the goroutine running Run (or calling HandleEvent)
type App struct {
	engine.NopPresenter

	screen   tcell.Screen
	sched    engine.Scheduler
	loop     Dispatcher
	engine   *engine.RoundEngine
	view     *View
	recorder *status.Recorder
	keys     *input.KeyTable
	muter    Muter

	difficulty engine.Difficulty
	session    string
}

// NewApp builds the engine and its presenters over screen and sched
// sched that also implements Dispatcher has its events drained by Run
func NewApp(screen tcell.Screen, sched engine.Scheduler, cfg Config) *App {
	if cfg.Keypad == nil {
		cfg.Keypad, _ = input.NewKeyMap(input.DefaultKeypad)
	}
	if cfg.Registry == nil {
		cfg.Registry = status.NewRegistry()
	}
	if !cfg.Difficulty.Valid() {
		cfg.Difficulty = engine.Medium
	}

	a := &App{
		screen:     screen,
		sched:      sched,
		view:       NewView(screen, sched, cfg.Keypad),
		recorder:   status.NewRecorder(cfg.Registry),
		keys:       input.DefaultKeyTable(cfg.Keypad),
		difficulty: cfg.Difficulty,
	}
	if d, ok := sched.(Dispatcher); ok {
		a.loop = d
	}

	presenters := engine.Presenters{a.recorder, a.view}
	if cfg.Sound != nil {
		a.muter = cfg.Sound
		presenters = append(presenters, audio.NewFeedback(cfg.Sound))
	}
	// App last so the recorder has already folded in the final score
	presenters = append(presenters, a)

	var opts []engine.Option
	if cfg.Seed != 0 {
		opts = append(opts, engine.WithSeed(cfg.Seed))
	}
	a.engine = engine.NewRoundEngine(sched, presenters, opts...)

	a.view.SetDifficulty(a.difficulty)
	return a
}

// Engine exposes the round engine
func (a *App) Engine() *engine.RoundEngine {
	return a.engine
}

// View exposes the screen presenter
func (a *App) View() *View {
	return a.view
}

// Session returns the id of the last started game
func (a *App) Session() string {
	return a.session
}

// Difficulty returns the difficulty the next Start uses
func (a *App) Difficulty() engine.Difficulty {
	return a.difficulty
}

// ===== EVENT LOOP =====

// Run polls the screen and dispatches timers until quit or ctx is done
// Returns nil on quit
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, constants.InputChannelSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			// PollEvent returns nil once the screen is finalized
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	var ready <-chan struct{}
	if a.loop != nil {
		ready = a.loop.Ready()
	}

	a.view.Draw()
	for {
		select {
		case <-ctx.Done():
			a.engine.Stop()
			return ctx.Err()
		case ev := <-events:
			if !a.HandleEvent(ev) {
				a.engine.Stop()
				return nil
			}
		case <-ready:
			a.loop.Dispatch()
		}
	}
}

// HandleEvent applies one terminal event, returns false on quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleIntent(a.keys.Resolve(ev))

	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := ev.Buttons()
		a.engine.OnPointerStatus(a.view.SlotAt(x, y),
			buttons&tcell.ButtonPrimary != 0,
			buttons&tcell.ButtonSecondary != 0)

	case *tcell.EventResize:
		a.screen.Sync()
		a.view.Draw()
	}
	return true
}

func (a *App) handleIntent(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return false

	case input.IntentStart:
		a.start()

	case input.IntentStop:
		if a.engine.Phase().Active() {
			log.Printf("game stop session=%s round=%d score=%.3f", a.session, a.engine.CurrentRound(), a.engine.CurrentScore())
		}
		a.engine.Stop()

	case input.IntentSelectDifficulty:
		a.difficulty = in.Difficulty
		a.view.SetDifficulty(in.Difficulty)

	case input.IntentToggleMute:
		if a.muter == nil {
			a.view.SetStatus("audio unavailable")
			break
		}
		a.muter.SetMuted(!a.muter.Muted())
		if a.muter.Muted() {
			a.view.SetStatus("sound off")
		} else {
			a.view.SetStatus("sound on")
		}

	case input.IntentStrike:
		a.engine.OnPointerEdge(in.Slot, true)
		a.engine.OnPointerEdge(in.Slot, false)
	}
	return true
}

func (a *App) start() {
	a.session = uuid.NewString()
	a.recorder.BeginGame(a.session, a.difficulty)
	if err := a.engine.Start(a.difficulty); err != nil {
		log.Printf("game start failed session=%s err=%v", a.session, err)
		a.view.SetStatus(err.Error())
		return
	}
	log.Printf("game start session=%s difficulty=%s", a.session, a.difficulty)
}

// NotifyGameEnded logs the result and refreshes the best score field
func (a *App) NotifyGameEnded(completed bool, finalScore float64) {
	log.Printf("game end session=%s completed=%t score=%.3f", a.session, completed, finalScore)
	if best, ok := a.recorder.Best(); ok {
		a.view.SetBest(best)
	}
}
