package commands

import (
	"context"
	"sync"
	"time"

	"github.com/colonyops/toastboard/internal/board"
	"github.com/colonyops/toastboard/internal/core/notify"
	"github.com/colonyops/toastboard/internal/printer"
)

// snapshotPrinter prints every toast snapshot the app's manager emits and
// lets callers wait until no expiring toast is left.
type snapshotPrinter struct {
	app     *board.App
	p       *printer.Printer
	started time.Time

	mu     sync.Mutex
	seen   int
	change chan struct{}
}

func newSnapshotPrinter(app *board.App, p *printer.Printer) *snapshotPrinter {
	return &snapshotPrinter{
		app:     app,
		p:       p,
		started: time.Now(),
		change:  make(chan struct{}, 1),
	}
}

// observe has the notify.Observer signature. It must not touch the store.
func (sp *snapshotPrinter) observe(snapshot []notify.Notification) {
	now := time.Now()
	sp.p.Snapshot(now.Sub(sp.started), snapshot, now)

	sp.mu.Lock()
	sp.seen++
	sp.mu.Unlock()

	select {
	case sp.change <- struct{}{}:
	default:
	}
}

func (sp *snapshotPrinter) snapshots() int {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.seen
}

// waitFor blocks until at least n snapshots were printed or timeout passes.
func (sp *snapshotPrinter) waitFor(ctx context.Context, n int, timeout time.Duration) bool {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for sp.snapshots() < n {
		select {
		case <-ctx.Done():
			return false
		case <-deadline.C:
			return false
		case <-sp.change:
		}
	}
	return true
}

// waitIdle blocks until every visible toast is sticky or gone.
func (sp *snapshotPrinter) waitIdle(ctx context.Context) error {
	for hasExpiring(sp.app.Toasts.List()) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-sp.change:
		}
	}
	return nil
}

func hasExpiring(snapshot []notify.Notification) bool {
	for _, n := range snapshot {
		if !n.Sticky() {
			return true
		}
	}
	return false
}
