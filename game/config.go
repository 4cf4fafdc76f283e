package game

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds host configuration. Particle counts and culling limits are
// fixed by the field package and are not configurable here.
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screenWidth"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screenHeight"`

	// Title is the window title
	Title string `yaml:"title"`

	// TPS is the number of window updates per second
	TPS int `yaml:"tps"`

	// ShootingStarPeriod is the shooting-star tick period
	ShootingStarPeriod time.Duration `yaml:"shootingStarPeriod"`

	// CometPeriod is the comet tick period
	CometPeriod time.Duration `yaml:"cometPeriod"`

	// FrameInterval is the redraw period of the terminal host
	FrameInterval time.Duration `yaml:"frameInterval"`

	// ShowHUD starts the window with the population overlay visible
	ShowHUD bool `yaml:"showHUD"`

	// ProfileDir enables CPU profile capture on TPS drops when non-empty
	ProfileDir string `yaml:"profileDir"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:        1024,
		ScreenHeight:       768,
		Title:              "starfolio",
		TPS:                60,
		ShootingStarPeriod: time.Second,
		CometPeriod:        5 * time.Second,
		FrameInterval:      time.Second / 30,
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	case c.ShootingStarPeriod <= 0:
		return fmt.Errorf("%w: shootingStarPeriod %v", ErrInvalidConfig, c.ShootingStarPeriod)
	case c.CometPeriod <= 0:
		return fmt.Errorf("%w: cometPeriod %v", ErrInvalidConfig, c.CometPeriod)
	case c.FrameInterval <= 0:
		return fmt.Errorf("%w: frameInterval %v", ErrInvalidConfig, c.FrameInterval)
	}
	return nil
}
