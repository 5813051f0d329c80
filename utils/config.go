package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the simulation
type Config struct {
	Width          int           `json:"width" env:"GOL_WIDTH"`
	Height         int           `json:"height" env:"GOL_HEIGHT"`
	TickPeriod     time.Duration `json:"tick_period" env:"GOL_TICK_PERIOD"`
	FrameRate      time.Duration `json:"frame_rate" env:"GOL_FRAME_RATE"`
	MaxGenerations int           `json:"max_generations" env:"GOL_MAX_GENERATIONS"`
	RandomDensity  float64       `json:"random_density" env:"GOL_RANDOM_DENSITY"`
	Seed           int64         `json:"seed" env:"GOL_SEED"`
	UseMemoryPool  bool          `json:"use_memory_pool" env:"GOL_USE_MEMORY_POOL"`
	Patterns       bool          `json:"patterns" env:"GOL_PATTERNS"`
	Interactive    bool          `json:"interactive" env:"GOL_INTERACTIVE"`
	Palette        []string      `json:"palette" env:"GOL_PALETTE" envSeparator:","`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          60,
		Height:         30,
		TickPeriod:     500 * time.Millisecond,
		FrameRate:      50 * time.Millisecond,
		MaxGenerations: 1000,
		RandomDensity:  0.15,
		Seed:           1,
		UseMemoryPool:  true,
		Patterns:       true,
		Interactive:    false,
		Palette:        []string{"red", "blue", "green", "yellow", "magenta", "cyan"},
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ApplyEnv overlays any GOL_* environment variables onto config. Unset
// variables leave the current value alone.
func ApplyEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return errors.Wrap(err, "[ApplyEnv] failed to parse environment")
	}
	return nil
}

// Validate reports settings the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.TickPeriod <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] tick period must be positive, got %v", c.TickPeriod)
	case c.FrameRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must be positive, got %v", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random density must be within [0,1], got %v", c.RandomDensity)
	}
	return nil
}
