// Package config loads game settings from a YAML file
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/whac-a-mole/constants"
	"github.com/lixenwraith/whac-a-mole/engine"
	"github.com/lixenwraith/whac-a-mole/input"
)

// DefaultPath is the config file read when no -config flag is given
const DefaultPath = "whac-a-mole.yaml"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds every user-tunable setting
type Config struct {
	Difficulty string  `yaml:"difficulty"`
	Seed       uint64  `yaml:"seed"` // 0 derives the seed from the clock
	Audio      bool    `yaml:"audio"`
	Volume     float64 `yaml:"volume"` // beep effects.Volume exponent, base 2
	Debug      bool    `yaml:"debug"`
	LogDir     string  `yaml:"log_dir"`
	Keypad     string  `yaml:"keypad"` // Keys for slots 0..8, row-major from top-left
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Difficulty: engine.Medium.String(),
		Audio:      true,
		Volume:     constants.DefaultVolume,
		LogDir:     "logs",
		Keypad:     input.DefaultKeypad,
	}
}

// Load reads path over the defaults; a missing file yields the defaults
// Keys absent from the file keep their default values
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field that has a restricted domain
func (c Config) Validate() error {
	if _, err := engine.ParseDifficulty(c.Difficulty); err != nil {
		return fmt.Errorf("%w: difficulty %q", ErrInvalid, c.Difficulty)
	}
	if c.Volume < constants.MinVolume || c.Volume > constants.MaxVolume {
		return fmt.Errorf("%w: volume %.2f outside [%.0f, %.0f]", ErrInvalid, c.Volume, constants.MinVolume, constants.MaxVolume)
	}
	if _, err := input.NewKeyMap(c.Keypad); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// DifficultyValue returns the parsed difficulty, Medium if the field is invalid
func (c Config) DifficultyValue() engine.Difficulty {
	d, err := engine.ParseDifficulty(c.Difficulty)
	if err != nil {
		return engine.Medium
	}
	return d
}

// Marshal renders c as YAML, used to write a starter file
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
