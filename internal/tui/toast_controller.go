package tui

import (
	"time"

	"github.com/colonyops/toastboard/internal/core/notify"
)

const (
	defaultToastTick = 250 * time.Millisecond
	toastWidth       = 44
)

// ToastController mirrors the toast manager's visible set for rendering.
// The manager owns admission, expiry and dismissal; the controller only
// tracks the latest snapshot and whether the redraw tick is running.
type ToastController struct {
	toasts  []notify.Notification
	ticking bool
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Set replaces the visible toasts with snapshot, already in display order.
func (c *ToastController) Set(snapshot []notify.Notification) {
	c.toasts = snapshot
}

// HasToasts returns true if there are any visible toasts.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// HasCountdown reports whether any visible toast will expire on its own and
// so needs periodic redraws.
func (c *ToastController) HasCountdown() bool {
	for _, t := range c.toasts {
		if !t.Sticky() {
			return true
		}
	}
	return false
}

// Toasts returns the visible toasts in display order.
func (c *ToastController) Toasts() []notify.Notification {
	return c.toasts
}

// Ticking returns whether the tick timer is currently running.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

// SetTicking sets the tick timer state.
func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}
