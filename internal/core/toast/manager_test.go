package toast

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/toastboard/internal/core/expiry"
	"github.com/colonyops/toastboard/internal/core/notify"
	"github.com/colonyops/toastboard/pkg/clock"
)

func newTestManager(t *testing.T, storeOpts notify.StoreOptions, opts ...Option) (*Manager, *clock.Fake) {
	t.Helper()

	clk := clock.NewFake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	storeOpts.Now = clk.Now
	m := NewManager(notify.NewStore(storeOpts), expiry.New(clk), opts...)
	t.Cleanup(m.Close)
	return m, clk
}

func visible(m *Manager) []string {
	list := m.List()
	out := make([]string, len(list))
	for i, n := range list {
		out[i] = n.Message
	}
	return out
}

func TestManager_Notify_ids_unique_even_after_expiry(t *testing.T) {
	m, clk := newTestManager(t, notify.StoreOptions{})

	seen := make(map[string]bool)
	for range 100 {
		id := m.Info("x", WithDuration(time.Millisecond))
		require.False(t, seen[id])
		seen[id] = true
		clk.Advance(time.Millisecond)
	}

	assert.Empty(t, m.List())
}

func TestManager_Notify_order(t *testing.T) {
	m, _ := newTestManager(t, notify.StoreOptions{})

	m.Info("A")
	m.Info("B")

	assert.Equal(t, []string{"A", "B"}, visible(m))
}

func TestManager_Notify_expires_after_duration(t *testing.T) {
	m, clk := newTestManager(t, notify.StoreOptions{})

	m.Notify("x", notify.SeverityInfo, WithDuration(100*time.Millisecond))
	assert.Equal(t, []string{"x"}, visible(m))

	clk.Advance(99 * time.Millisecond)
	assert.Equal(t, []string{"x"}, visible(m))

	clk.Advance(time.Millisecond)
	assert.Empty(t, visible(m))
}

func TestManager_Notify_sticky_never_expires(t *testing.T) {
	m, clk := newTestManager(t, notify.StoreOptions{})

	id := m.Warning("stay", Sticky())
	clk.Advance(24 * time.Hour)
	assert.Equal(t, []string{"stay"}, visible(m))

	m.Dismiss(id)
	assert.Empty(t, visible(m))
}

func TestManager_Dismiss_idempotent(t *testing.T) {
	m, _ := newTestManager(t, notify.StoreOptions{})

	id := m.Success("ok")
	m.Info("other")

	m.Dismiss(id)
	once := m.List()
	m.Dismiss(id)

	assert.Equal(t, once, m.List())
	assert.Equal(t, []string{"other"}, visible(m))
	m.Dismiss("garbage")
}

func TestManager_Dismiss_before_expiry_never_resurrects(t *testing.T) {
	m, clk := newTestManager(t, notify.StoreOptions{})

	var snapshots [][]notify.Notification
	m.Subscribe(func(ns []notify.Notification) {
		snapshots = append(snapshots, ns)
	})

	id := m.Notify("x", notify.SeverityError, WithDuration(50*time.Millisecond))
	m.Dismiss(id)

	clk.Advance(50 * time.Millisecond)
	clk.Advance(time.Second)

	assert.Empty(t, m.List())
	// admit + dismiss only; the cancelled timer produced no further change.
	assert.Len(t, snapshots, 2)
	assert.Zero(t, clk.Pending())
}

func TestManager_expiry_and_dismiss_converge(t *testing.T) {
	expired, clk1 := newTestManager(t, notify.StoreOptions{})
	dismissed, _ := newTestManager(t, notify.StoreOptions{})

	expired.Info("x", WithDuration(time.Second))
	clk1.Advance(time.Second)

	id := dismissed.Info("x", WithDuration(time.Second))
	dismissed.Dismiss(id)

	assert.Equal(t, expired.List(), dismissed.List())
	assert.Zero(t, expired.scheduler.Len())
	assert.Zero(t, dismissed.scheduler.Len())
}

func TestManager_default_durations(t *testing.T) {
	m, clk := newTestManager(t, notify.StoreOptions{})

	m.Error("oops")
	m.Success("ok")

	clk.Advance(4 * time.Second)
	assert.Equal(t, []string{"oops"}, visible(m), "error outlives success")

	clk.Advance(time.Second)
	assert.Empty(t, visible(m))
}

func TestManager_default_durations_per_severity(t *testing.T) {
	m, _ := newTestManager(t, notify.StoreOptions{})

	m.Success("s")
	m.Error("e")
	m.Warning("w")
	m.Info("i")

	got := map[notify.Severity]time.Duration{}
	for _, n := range m.List() {
		got[n.Severity] = n.Lifetime
	}

	assert.Equal(t, map[notify.Severity]time.Duration{
		notify.SeveritySuccess: 4 * time.Second,
		notify.SeverityError:   5 * time.Second,
		notify.SeverityWarning: 4 * time.Second,
		notify.SeverityInfo:    4 * time.Second,
	}, got)
}

func TestManager_Notify_negative_duration_uses_default(t *testing.T) {
	var buf bytes.Buffer
	m, _ := newTestManager(t, notify.StoreOptions{}, WithLogger(zerolog.New(&buf)))

	m.Error("oops", WithDuration(-time.Second))

	require.Len(t, m.List(), 1)
	assert.Equal(t, 5*time.Second, m.List()[0].Lifetime)
	assert.Contains(t, buf.String(), "negative toast duration")
}

func TestManager_Notify_unknown_severity_becomes_info(t *testing.T) {
	m, _ := newTestManager(t, notify.StoreOptions{})

	m.Notify("hmm", notify.Severity("fatal"))

	require.Len(t, m.List(), 1)
	assert.Equal(t, notify.SeverityInfo, m.List()[0].Severity)
}

func TestManager_backpressure_evicts_oldest_and_cancels_timer(t *testing.T) {
	m, clk := newTestManager(t, notify.StoreOptions{Capacity: 3})

	first := m.Info("1")
	m.Info("2")
	m.Info("3")
	m.Info("4")

	assert.Equal(t, []string{"2", "3", "4"}, visible(m))
	assert.False(t, m.scheduler.Pending(first))
	assert.Equal(t, 3, clk.Pending())
}

func TestManager_formatted_wrappers(t *testing.T) {
	m, _ := newTestManager(t, notify.StoreOptions{})

	m.Successf("saved %d items", 3)
	m.Errorf("failed: %s", "boom")
	m.Warnf("careful %q", "x")
	m.Infof("hello %s", "world")

	assert.Equal(t, []string{"saved 3 items", "failed: boom", `careful "x"`, "hello world"}, visible(m))

	sevs := make([]notify.Severity, 0, 4)
	for _, n := range m.List() {
		sevs = append(sevs, n.Severity)
	}
	assert.Equal(t, notify.Severities(), sevs)
}

func TestManager_DismissNewest(t *testing.T) {
	tests := []struct {
		name  string
		order notify.Order
	}{
		{"oldest first", notify.OldestFirst},
		{"newest first", notify.NewestFirst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(t, notify.StoreOptions{Order: tt.order})

			assert.False(t, m.DismissNewest())

			m.Info("old")
			m.Info("new")

			assert.True(t, m.DismissNewest())
			assert.Equal(t, []string{"old"}, visible(m))
		})
	}
}

func TestManager_DismissAll(t *testing.T) {
	m, clk := newTestManager(t, notify.StoreOptions{})

	m.Info("a")
	m.Error("b")
	m.Warning("c", Sticky())

	m.DismissAll()

	assert.Empty(t, m.List())
	assert.Zero(t, clk.Pending())
}

func TestManager_Configure(t *testing.T) {
	m, clk := newTestManager(t, notify.StoreOptions{})

	m.Configure(Durations{Success: time.Second, Error: -1, Warning: 2 * time.Second, Info: NoExpiry})

	assert.Equal(t, Durations{
		Success: time.Second,
		Error:   5 * time.Second,
		Warning: 2 * time.Second,
		Info:    NoExpiry,
	}, m.Defaults())

	m.Success("fast")
	m.Info("sticky")
	clk.Advance(time.Second)

	assert.Equal(t, []string{"sticky"}, visible(m))
}

func TestManager_SetLimits_releases_trimmed_timers(t *testing.T) {
	m, clk := newTestManager(t, notify.StoreOptions{})

	m.Info("a")
	m.Info("b")
	m.Info("c")

	m.SetLimits(1, notify.OldestFirst)

	assert.Equal(t, []string{"c"}, visible(m))
	assert.Equal(t, 1, clk.Pending())
}

func TestManager_WithDefaults(t *testing.T) {
	m, _ := newTestManager(t, notify.StoreOptions{}, WithDefaults(Durations{
		Success: time.Second,
		Error:   -1,
		Warning: 3 * time.Second,
		Info:    time.Second,
	}))

	assert.Equal(t, 5*time.Second, m.Defaults().Error)
	assert.Equal(t, time.Second, m.Defaults().Success)
}

func TestManager_Close(t *testing.T) {
	m, clk := newTestManager(t, notify.StoreOptions{})

	m.Info("a")
	m.Close()

	assert.Empty(t, m.List())
	assert.Zero(t, clk.Pending())

	m.Info("after close")
	assert.Equal(t, []string{"after close"}, visible(m))
}
