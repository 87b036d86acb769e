package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/whac-a-mole/audio"
	"github.com/lixenwraith/whac-a-mole/config"
	"github.com/lixenwraith/whac-a-mole/core"
	"github.com/lixenwraith/whac-a-mole/engine"
	"github.com/lixenwraith/whac-a-mole/input"
	"github.com/lixenwraith/whac-a-mole/service"
	"github.com/lixenwraith/whac-a-mole/status"
	"github.com/lixenwraith/whac-a-mole/tui"
)

var (
	configFlag     = flag.String("config", config.DefaultPath, "Path to YAML config file")
	difficultyFlag = flag.String("difficulty", "", "Difficulty: easy, medium, hard (overrides config)")
	seedFlag       = flag.Uint64("seed", 0, "Target RNG seed, 0 derives from the clock (overrides config)")
	muteFlag       = flag.Bool("mute", false, "Disable sound")
	debugFlag      = flag.Bool("debug", false, "Write debug log to the log directory")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug, cfg.LogDir); logFile != nil {
		defer logFile.Close()
	}
	log.Printf("startup difficulty=%s seed=%d audio=%t", cfg.Difficulty, cfg.Seed, cfg.Audio)

	keypad, err := input.NewKeyMap(cfg.Keypad)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(2)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.SetCrashTerminal(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	sched := engine.NewClockScheduler(engine.NewTimeProvider())

	// Sound is optional, the game runs without an audio device
	hub := service.NewHub()
	var sound *audio.SoundManager
	if cfg.Audio {
		sound = audio.NewSoundManager()
		sound.SetVolume(cfg.Volume)
		hub.RegisterOptional(service.Func("audio", sound.Initialize, sound.Cleanup))
	}
	hub.Register(service.Func("scheduler", nil, sched.Close))

	if err := hub.StartAll(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Startup failed: %v\n", err)
		os.Exit(1)
	}
	defer hub.StopAll()
	if sound != nil && !hub.Running("audio") {
		sound = nil
	}

	reg := status.NewRegistry()
	app := tui.NewApp(screen, sched, tui.Config{
		Difficulty: cfg.DifficultyValue(),
		Seed:       cfg.Seed,
		Keypad:     keypad,
		Sound:      sound,
		Registry:   reg,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("event loop exited err=%v", err)
	}

	for _, m := range reg.Snapshot() {
		log.Printf("metric %s=%s", m.Key, m.Value)
	}
}

// loadConfig reads the config file and applies flag overrides
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return config.Config{}, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "difficulty":
			cfg.Difficulty = *difficultyFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "mute":
			cfg.Audio = cfg.Audio && !*muteFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
