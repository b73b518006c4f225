// Package config loads the nxncube YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Limits offered by the new-game settings.
const (
	MinWidth   = 2
	MaxWidth   = 7
	MaxShuffle = 100
)

// Config holds all application configuration
type Config struct {
	Game   GameConfig   `yaml:"game"`
	Timing TimingConfig `yaml:"timing"`
	Sound  SoundConfig  `yaml:"sound"`
	Log    LogConfig    `yaml:"log"`
}

// GameConfig holds new-game defaults
type GameConfig struct {
	Width        int    `yaml:"width"`
	ShuffleCount int    `yaml:"shuffle_count"`
	Seed         uint64 `yaml:"seed"` // zero picks a random seed
}

// TimingConfig holds animation and timer cadences
type TimingConfig struct {
	Animation       time.Duration `yaml:"animation"`
	ShuffleInterval time.Duration `yaml:"shuffle_interval"`
	ShuffleSpeed    float64       `yaml:"shuffle_speed"`
	ClockInterval   time.Duration `yaml:"clock_interval"`
	FrameInterval   time.Duration `yaml:"frame_interval"` // host tick that advances the loop
}

// SoundConfig holds audio cue settings
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// LogConfig holds debug and event log settings
type LogConfig struct {
	Dir   string `yaml:"dir"`   // JSONL game logs, empty disables them
	Debug string `yaml:"debug"` // slog output file for the TUI, empty disables it
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// DefaultPath returns ~/.nxncube/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".nxncube", "config.yaml")
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the new-game settings against the supported range.
func (c *Config) Validate() error {
	if c.Game.Width < MinWidth || c.Game.Width > MaxWidth {
		return fmt.Errorf("game.width must be between %d and %d, got %d", MinWidth, MaxWidth, c.Game.Width)
	}
	if c.Game.ShuffleCount < 0 || c.Game.ShuffleCount > MaxShuffle {
		return fmt.Errorf("game.shuffle_count must be between 0 and %d, got %d", MaxShuffle, c.Game.ShuffleCount)
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("sound.volume must be between 0 and 1, got %g", c.Sound.Volume)
	}
	return nil
}

// Set defaults if not provided
func (c *Config) applyDefaults() {
	if c.Game.Width == 0 {
		c.Game.Width = 3
	}
	if c.Game.ShuffleCount == 0 {
		c.Game.ShuffleCount = 20
	}
	if c.Timing.Animation == 0 {
		c.Timing.Animation = 250 * time.Millisecond
	}
	if c.Timing.ShuffleInterval == 0 {
		c.Timing.ShuffleInterval = 50 * time.Millisecond
	}
	if c.Timing.ShuffleSpeed == 0 {
		c.Timing.ShuffleSpeed = 2
	}
	if c.Timing.ClockInterval == 0 {
		c.Timing.ClockInterval = 32 * time.Millisecond
	}
	if c.Timing.FrameInterval == 0 {
		c.Timing.FrameInterval = 16 * time.Millisecond
	}
	if c.Sound.Volume == 0 {
		c.Sound.Volume = 0.5
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
