// Package config loads user defaults for sleep-progress.
//
// Values come from, in increasing order of precedence: built-in defaults,
// an optional YAML file, and SLEEP_PROGRESS_* environment variables.
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Tick bounds.
const (
	MinTick     = 100 * time.Millisecond
	MaxTick     = time.Minute
	DefaultTick = time.Second
)

// Configuration errors
var (
	// ErrInvalidTick indicates the repaint interval is out of range
	ErrInvalidTick = errors.New("tick must be between 100ms and 1m")

	// ErrInvalidWidth indicates a negative line width
	ErrInvalidWidth = errors.New("width must not be negative")
)

// Config holds the user's defaults
type Config struct {
	// Progress shows the progress bar even without --progress
	Progress bool `yaml:"progress"`

	// Tick is how often the progress bar is repainted
	Tick time.Duration `yaml:"tick"`

	// Width is the width of the progress line; 0 uses the terminal width
	Width int `yaml:"width"`

	// Color enables colored output
	Color bool `yaml:"color"`
}

// DefaultConfig returns a Config with the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Progress: false,
		Tick:     DefaultTick,
		Width:    0,
		Color:    true,
	}
}

// DefaultPath returns the config file looked up when --config is not given:
// <user config dir>/sleep-progress/config.yaml
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "sleep-progress", "config.yaml")
}

// Load builds the configuration from the defaults, the file at path and the
// environment. An empty path means DefaultPath, and a missing default file is
// not an error. A file that was asked for explicitly must exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readFile overlays the YAML document at path onto c.
func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays SLEEP_PROGRESS_* environment variables onto c.
func (c *Config) applyEnv() {
	c.Progress = getEnvBool("SLEEP_PROGRESS", c.Progress)
	if ms := getEnvInt("SLEEP_PROGRESS_TICK", -1); ms >= 0 {
		c.Tick = time.Duration(ms) * time.Millisecond
	}
	c.Width = getEnvInt("SLEEP_PROGRESS_WIDTH", c.Width)
	c.Color = getEnvBool("SLEEP_PROGRESS_COLOR", c.Color)
}

// getEnvInt returns the environment variable as an int or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvBool returns the environment variable as a bool or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Tick < MinTick || c.Tick > MaxTick {
		return ErrInvalidTick
	}
	if c.Width < 0 {
		return ErrInvalidWidth
	}
	return nil
}
