package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/toastboard/internal/core/notify"
	"github.com/colonyops/toastboard/internal/core/styles"
)

// Validate checks that the configuration is valid. Failures are reported
// as criterio.FieldErrors keyed by YAML path.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data directory cannot be empty")
	}

	return criterio.ValidateStruct(
		criterio.Run("toasts.capacity", c.Toasts.Capacity, nonNegativeInt),
		criterio.Run("toasts.order", c.Toasts.Order, validOrder),
		criterio.Run("toasts.durations.success", c.Toasts.Durations.Success, nonNegativeDuration),
		criterio.Run("toasts.durations.error", c.Toasts.Durations.Error, nonNegativeDuration),
		criterio.Run("toasts.durations.warning", c.Toasts.Durations.Warning, nonNegativeDuration),
		criterio.Run("toasts.durations.info", c.Toasts.Durations.Info, nonNegativeDuration),
		criterio.Run("tui.theme", c.TUI.Theme, validTheme),
		criterio.Run("tui.tick", c.TUI.Tick, positiveDuration),
	)
}

// ValidateDeep runs Validate and additionally checks that configPath, when
// it exists, is a regular file.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return validateConfigFile(configPath)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func nonNegativeInt(v int) error {
	if v < 0 {
		return fmt.Errorf("must be zero or greater, got %d", v)
	}
	return nil
}

func nonNegativeDuration(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("must be zero or greater, got %s", d)
	}
	return nil
}

func positiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("must be greater than zero, got %s", d)
	}
	return nil
}

func validOrder(o notify.Order) error {
	if !o.IsValid() {
		return fmt.Errorf("unknown order %q (want %s or %s)", o, notify.OldestFirst, notify.NewestFirst)
	}
	return nil
}

func validTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}
