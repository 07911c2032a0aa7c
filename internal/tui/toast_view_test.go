package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/toastboard/internal/core/notify"
	"github.com/colonyops/toastboard/internal/core/styles"
)

var viewNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestView(plain bool) (*ToastController, *ToastView) {
	c := NewToastController()
	return c, NewToastView(c, func() time.Time { return viewNow }, plain)
}

func TestToastView_View_empty(t *testing.T) {
	_, v := newTestView(false)
	assert.Empty(t, v.View())
}

func TestToastView_View_renders_each_severity(t *testing.T) {
	for _, sev := range notify.Severities() {
		t.Run(string(sev), func(t *testing.T) {
			c, v := newTestView(false)
			c.Set([]notify.Notification{{Severity: sev, Message: "test msg", Lifetime: time.Second, CreatedAt: viewNow}})

			out := v.View()
			require.NotEmpty(t, out)
			assert.Contains(t, out, styles.SeverityIcon(sev, false))
			assert.Contains(t, out, "test msg")
		})
	}
}

func TestToastView_View_plain_icons(t *testing.T) {
	c, v := newTestView(true)
	c.Set([]notify.Notification{{Severity: notify.SeverityError, Message: "nope", Lifetime: time.Second, CreatedAt: viewNow}})

	assert.Contains(t, v.View(), styles.PlainIconError)
}

func TestToastView_View_stacks_in_snapshot_order(t *testing.T) {
	c, v := newTestView(false)
	c.Set([]notify.Notification{
		{Severity: notify.SeverityInfo, Message: "first", CreatedAt: viewNow},
		{Severity: notify.SeverityError, Message: "second", CreatedAt: viewNow},
	})

	out := v.View()
	firstIdx := strings.Index(out, "first")
	secondIdx := strings.Index(out, "second")

	require.NotEqual(t, -1, firstIdx)
	require.NotEqual(t, -1, secondIdx)
	assert.Less(t, firstIdx, secondIdx)
}

func TestToastView_View_shows_remaining_time(t *testing.T) {
	c, v := newTestView(false)
	c.Set([]notify.Notification{
		{Severity: notify.SeveritySuccess, Message: "saved", Lifetime: 4 * time.Second, CreatedAt: viewNow.Add(-1500 * time.Millisecond)},
	})

	assert.Contains(t, v.View(), "3s")
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0s"},
		{-time.Second, "0s"},
		{time.Millisecond, "1s"},
		{time.Second, "1s"},
		{4 * time.Second, "4s"},
		{90 * time.Second, "1m30s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatRemaining(tt.in), "formatRemaining(%s)", tt.in)
	}
}

func TestToastView_Overlay_passthrough_when_empty(t *testing.T) {
	_, v := newTestView(false)
	assert.Equal(t, "background", v.Overlay("background", 80, 24))
}

func TestToastView_Overlay_places_toast(t *testing.T) {
	c, v := newTestView(true)
	c.Set([]notify.Notification{{Severity: notify.SeverityInfo, Message: "overlay me", CreatedAt: viewNow}})

	bg := strings.Repeat(strings.Repeat(".", 80)+"\n", 23) + strings.Repeat(".", 80)
	out := v.Overlay(bg, 80, 24)

	assert.Contains(t, out, "overlay me")
}
