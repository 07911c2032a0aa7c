// Package printer writes styled command output. Output falls back to plain
// text when the destination is not a terminal.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	lipgloss "charm.land/lipgloss/v2"
	"golang.org/x/term"

	"github.com/colonyops/toastboard/internal/core/notify"
	"github.com/colonyops/toastboard/internal/core/styles"
)

type ctxKey struct{}

// Printer writes status lines and toast snapshots.
type Printer struct {
	mu    sync.Mutex
	w     io.Writer
	plain bool
}

// New creates a Printer writing to w.
func New(w io.Writer, plain bool) *Printer {
	return &Printer{w: w, plain: plain}
}

// NewStdout creates a Printer for os.Stdout, plain unless stdout is a
// terminal.
func NewStdout() *Printer {
	return New(os.Stdout, !IsTerminal(os.Stdout))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or a stdout printer.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return NewStdout()
}

// Plain reports whether styling is disabled.
func (p *Printer) Plain() bool {
	return p.plain
}

func (p *Printer) line(style lipgloss.Style, prefix, msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if prefix != "" {
		msg = prefix + " " + msg
	}
	if p.plain {
		_, _ = fmt.Fprintln(p.w, msg)
		return
	}
	_, _ = lipgloss.Fprintln(p.w, style.Render(msg))
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(lipgloss.NewStyle(), "", fmt.Sprintf(format, args...))
}

// Successf writes a success line.
func (p *Printer) Successf(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(styles.ColorSuccess), styles.PlainIconSuccess, fmt.Sprintf(format, args...))
}

// Infof writes an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(styles.ColorInfo), styles.PlainIconInfo, fmt.Sprintf(format, args...))
}

// Warnf writes a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(styles.ColorWarning), styles.PlainIconWarning, fmt.Sprintf(format, args...))
}

// Errorf writes an error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(lipgloss.NewStyle().Foreground(styles.ColorError), styles.PlainIconError, fmt.Sprintf(format, args...))
}

// Snapshot writes one block describing the visible toasts. elapsed labels
// the block; now is used for remaining lifetimes.
func (p *Printer) Snapshot(elapsed time.Duration, snapshot []notify.Notification, now time.Time) {
	var b strings.Builder
	fmt.Fprintf(&b, "[%6.2fs] %d visible", elapsed.Seconds(), len(snapshot))
	for _, n := range snapshot {
		b.WriteString("\n  ")
		b.WriteString(p.toastLine(n, now))
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.plain {
		_, _ = fmt.Fprintln(p.w, b.String())
		return
	}
	_, _ = lipgloss.Fprintln(p.w, b.String())
}

func (p *Printer) toastLine(n notify.Notification, now time.Time) string {
	life := "sticky"
	if !n.Sticky() {
		life = fmt.Sprintf("%.1fs left", n.Remaining(now).Seconds())
	}

	if p.plain {
		return fmt.Sprintf("%s %-7s %s (%s)", styles.SeverityIcon(n.Severity, true), n.Severity, n.Message, life)
	}

	_, accent := styles.ToastStyle(n.Severity)
	icon := lipgloss.NewStyle().Foreground(accent).Render(styles.SeverityIcon(n.Severity, false))
	return icon + " " + n.Message + " " + styles.ToastTimerStyle.Render("("+life+")")
}
