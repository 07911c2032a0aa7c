package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/toastboard/internal/core/notify"
	"github.com/colonyops/toastboard/internal/core/styles"
)

type toastTickMsg time.Time

func scheduleToastTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView renders toast notifications and composites them as an overlay.
type ToastView struct {
	controller *ToastController
	now        func() time.Time
	plain      bool
}

// NewToastView creates a view over controller. now supplies the time used
// for countdowns; plain swaps nerd font icons for ASCII glyphs.
func NewToastView(controller *ToastController, now func() time.Time, plain bool) *ToastView {
	if now == nil {
		now = time.Now
	}
	return &ToastView{controller: controller, now: now, plain: plain}
}

// View renders the toast stack as a single string with toasts stacked
// vertically in the store's display order.
func (v *ToastView) View() string {
	toasts := v.controller.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	now := v.now()
	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, renderToast(t, now, v.plain))
	}

	return strings.Join(rendered, "\n")
}

func renderToast(t notify.Notification, now time.Time, plain bool) string {
	style, accent := styles.ToastStyle(t.Severity)
	icon := lipgloss.NewStyle().Foreground(accent).Render(styles.SeverityIcon(t.Severity, plain))

	content := icon + " " + t.Message
	if !t.Sticky() {
		content += " " + styles.ToastTimerStyle.Render(formatRemaining(t.Remaining(now)))
	}
	return style.Width(toastWidth).Render(content)
}

// formatRemaining rounds up to whole seconds so a toast never shows 0s
// while it is still visible.
func formatRemaining(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
}

// Overlay composites the toast stack over background in the lower-right corner.
func (v *ToastView) Overlay(background string, width, height int) string {
	toastContent := v.View()
	if toastContent == "" {
		return background
	}

	bgLayer := lipgloss.NewLayer(background)
	toastLayer := lipgloss.NewLayer(toastContent)

	toastW := lipgloss.Width(toastContent)
	toastH := lipgloss.Height(toastContent)

	rightX := max(width-toastW-1, 0)
	bottomY := max(height-toastH, 0)

	toastLayer.X(rightX).Y(bottomY).Z(2)

	compositor := lipgloss.NewCompositor(bgLayer, toastLayer)
	return compositor.Render()
}
