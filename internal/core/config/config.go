// Package config handles configuration loading and validation for toastboard.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/toastboard/internal/core/notify"
	"github.com/colonyops/toastboard/internal/core/styles"
	"github.com/colonyops/toastboard/internal/core/toast"
)

// Config holds the application configuration.
type Config struct {
	Toasts  ToastsConfig `yaml:"toasts"`
	TUI     TUIConfig    `yaml:"tui"`
	DataDir string       `yaml:"-"` // set by caller, not from config file
}

// ToastsConfig controls how notifications are displayed and expired.
type ToastsConfig struct {
	// Capacity caps the number of visible toasts; 0 means unbounded.
	Capacity  int             `yaml:"capacity"`
	Order     notify.Order    `yaml:"order"`
	Durations toast.Durations `yaml:"durations"`
}

// TUIConfig holds dashboard settings.
type TUIConfig struct {
	Theme string        `yaml:"theme"`
	Tick  time.Duration `yaml:"tick"` // countdown redraw interval
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Toasts: ToastsConfig{
			Capacity:  notify.DefaultCapacity,
			Order:     notify.OldestFirst,
			Durations: toast.DefaultDurations(),
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
			Tick:  250 * time.Millisecond,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
// A zero duration is a valid setting (never expire) so durations are left
// untouched.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Toasts.Order == "" {
		c.Toasts.Order = defaults.Toasts.Order
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.Tick == 0 {
		c.TUI.Tick = defaults.TUI.Tick
	}
}
