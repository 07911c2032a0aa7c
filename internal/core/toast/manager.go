// Package toast is the entry point for showing transient notifications.
//
// A Manager admits notifications into a notify.Store, schedules their
// expiry with an expiry.Scheduler and lets renderers observe the visible
// set. None of its operations fail: invalid input is corrected and logged.
package toast

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/toastboard/internal/core/expiry"
	"github.com/colonyops/toastboard/internal/core/notify"
)

// Manager wires a Store and a Scheduler together.
type Manager struct {
	store     *notify.Store
	scheduler *expiry.Scheduler
	log       zerolog.Logger

	mu       sync.RWMutex
	defaults Durations
}

// NewManager creates a Manager over the given store and scheduler.
func NewManager(store *notify.Store, scheduler *expiry.Scheduler, opts ...Option) *Manager {
	m := &Manager{
		store:     store,
		scheduler: scheduler,
		log:       zerolog.Nop(),
		defaults:  DefaultDurations(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Notify shows message with the given severity and returns its ID. Without
// a WithDuration option the severity's default lifetime is used.
func (m *Manager) Notify(message string, severity notify.Severity, opts ...NotifyOption) string {
	if !severity.IsValid() {
		m.log.Warn().Str("severity", string(severity)).Msg("unknown severity, using info")
		severity = notify.SeverityInfo
	}

	var o notifyOptions
	for _, opt := range opts {
		opt(&o)
	}

	lifetime := m.defaultFor(severity)
	if o.hasDuration {
		if o.duration < 0 {
			m.log.Warn().
				Dur("duration", o.duration).
				Str("severity", string(severity)).
				Msg("negative toast duration, using default")
		} else {
			lifetime = o.duration
		}
	}

	n, evicted := m.store.Admit(message, severity, lifetime)
	for _, id := range evicted {
		m.scheduler.Cancel(id)
		m.log.Debug().Str("toast_id", id).Msg("toast evicted at capacity")
	}
	m.scheduler.Schedule(n.ID, lifetime, m.expire)

	m.log.Debug().
		Str("toast_id", n.ID).
		Str("severity", string(severity)).
		Dur("lifetime", lifetime).
		Msg("toast admitted")

	return n.ID
}

// Success shows a success toast.
func (m *Manager) Success(message string, opts ...NotifyOption) string {
	return m.Notify(message, notify.SeveritySuccess, opts...)
}

// Error shows an error toast.
func (m *Manager) Error(message string, opts ...NotifyOption) string {
	return m.Notify(message, notify.SeverityError, opts...)
}

// Warning shows a warning toast.
func (m *Manager) Warning(message string, opts ...NotifyOption) string {
	return m.Notify(message, notify.SeverityWarning, opts...)
}

// Info shows an info toast.
func (m *Manager) Info(message string, opts ...NotifyOption) string {
	return m.Notify(message, notify.SeverityInfo, opts...)
}

// Successf shows a formatted success toast.
func (m *Manager) Successf(format string, args ...any) string {
	return m.Success(fmt.Sprintf(format, args...))
}

// Errorf shows a formatted error toast.
func (m *Manager) Errorf(format string, args ...any) string {
	return m.Error(fmt.Sprintf(format, args...))
}

// Warnf shows a formatted warning toast.
func (m *Manager) Warnf(format string, args ...any) string {
	return m.Warning(fmt.Sprintf(format, args...))
}

// Infof shows a formatted info toast.
func (m *Manager) Infof(format string, args ...any) string {
	return m.Info(fmt.Sprintf(format, args...))
}

// Dismiss removes a toast before it expires. The pending expiry is
// cancelled before the eviction so the timer can never act on the ID
// afterwards. Dismissing an unknown ID does nothing.
func (m *Manager) Dismiss(id string) {
	m.scheduler.Cancel(id)
	if m.store.Evict(id) {
		m.log.Debug().Str("toast_id", id).Msg("toast dismissed")
	}
}

// DismissNewest removes the most recently admitted toast. It reports false
// when nothing is visible.
func (m *Manager) DismissNewest() bool {
	list := m.store.List()
	if len(list) == 0 {
		return false
	}

	newest := list[len(list)-1]
	if m.store.Order() == notify.NewestFirst {
		newest = list[0]
	}
	m.Dismiss(newest.ID)
	return true
}

// DismissAll removes every visible toast.
func (m *Manager) DismissAll() {
	m.scheduler.CancelAll()
	if ids := m.store.Clear(); len(ids) > 0 {
		m.log.Debug().Int("count", len(ids)).Msg("toasts dismissed")
	}
}

// List returns the visible toasts in display order.
func (m *Manager) List() []notify.Notification {
	return m.store.List()
}

// Subscribe registers fn to receive the visible toasts after every change.
func (m *Manager) Subscribe(fn notify.Observer) (unsubscribe func()) {
	return m.store.Subscribe(fn)
}

// Configure replaces the default lifetimes. Negative values keep the
// current default for that severity. Visible toasts are not affected.
func (m *Manager) Configure(d Durations) {
	m.mu.Lock()
	m.defaults = d.merged(m.defaults)
	m.mu.Unlock()
}

// Defaults returns the current default lifetimes.
func (m *Manager) Defaults() Durations {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaults
}

// SetLimits changes the store's capacity and display order, releasing the
// timers of any toasts trimmed by a smaller capacity.
func (m *Manager) SetLimits(capacity int, order notify.Order) {
	for _, id := range m.store.SetLimits(capacity, order) {
		m.scheduler.Cancel(id)
	}
}

// Close cancels all pending expiries and clears the visible toasts. The
// manager stays usable afterwards.
func (m *Manager) Close() {
	cancelled := m.scheduler.CancelAll()
	cleared := m.store.Clear()
	m.log.Debug().
		Int("cancelled", cancelled).
		Int("cleared", len(cleared)).
		Msg("toast manager closed")
}

func (m *Manager) defaultFor(severity notify.Severity) time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaults.For(severity)
}

func (m *Manager) expire(id string) {
	if m.store.Evict(id) {
		m.log.Debug().Str("toast_id", id).Msg("toast expired")
	}
}
