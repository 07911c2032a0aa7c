package toast

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/toastboard/internal/core/notify"
)

// NoExpiry is the lifetime of a toast that stays until dismissed.
const NoExpiry time.Duration = 0

// Durations holds the default lifetime for each severity.
type Durations struct {
	Success time.Duration `yaml:"success"`
	Error   time.Duration `yaml:"error"`
	Warning time.Duration `yaml:"warning"`
	Info    time.Duration `yaml:"info"`
}

// DefaultDurations returns the built-in lifetimes. Errors stay longer
// since they usually need more reading time.
func DefaultDurations() Durations {
	return Durations{
		Success: 4 * time.Second,
		Error:   5 * time.Second,
		Warning: 4 * time.Second,
		Info:    4 * time.Second,
	}
}

// For returns the default lifetime for severity.
func (d Durations) For(severity notify.Severity) time.Duration {
	switch severity {
	case notify.SeveritySuccess:
		return d.Success
	case notify.SeverityError:
		return d.Error
	case notify.SeverityWarning:
		return d.Warning
	default:
		return d.Info
	}
}

// merged returns d with negative entries replaced by the matching value
// from fallback.
func (d Durations) merged(fallback Durations) Durations {
	pick := func(v, fb time.Duration) time.Duration {
		if v < 0 {
			return fb
		}
		return v
	}
	return Durations{
		Success: pick(d.Success, fallback.Success),
		Error:   pick(d.Error, fallback.Error),
		Warning: pick(d.Warning, fallback.Warning),
		Info:    pick(d.Info, fallback.Info),
	}
}

// Option configures a Manager.
type Option func(*Manager)

// WithDefaults overrides the default lifetime per severity.
func WithDefaults(d Durations) Option {
	return func(m *Manager) {
		m.defaults = d.merged(DefaultDurations())
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Manager) {
		m.log = l
	}
}

// NotifyOption adjusts a single Notify call.
type NotifyOption func(*notifyOptions)

type notifyOptions struct {
	duration    time.Duration
	hasDuration bool
}

// WithDuration sets an explicit lifetime. NoExpiry keeps the toast until it
// is dismissed.
func WithDuration(d time.Duration) NotifyOption {
	return func(o *notifyOptions) {
		o.duration = d
		o.hasDuration = true
	}
}

// Sticky keeps the toast visible until it is dismissed.
func Sticky() NotifyOption {
	return WithDuration(NoExpiry)
}
