package tui

import (
	"sync"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/toastboard/internal/core/notify"
)

// SnapshotBuffer carries toast snapshots from timer and bus goroutines into
// the Bubble Tea update loop. Only the latest snapshot is kept; signals are
// coalesced so a burst of changes produces a single drain.
type SnapshotBuffer struct {
	mu      sync.Mutex
	latest  []notify.Notification
	pending bool
	signal  chan struct{}
}

// NewSnapshotBuffer constructs a buffer for async snapshot delivery.
func NewSnapshotBuffer() *SnapshotBuffer {
	return &SnapshotBuffer{
		signal: make(chan struct{}, 1),
	}
}

// Push records snapshot as the latest state and emits a non-blocking drain
// signal. It has the notify.Observer signature.
func (b *SnapshotBuffer) Push(snapshot []notify.Notification) {
	b.mu.Lock()
	b.latest = snapshot
	b.pending = true
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// Drain returns the latest snapshot. The boolean is false when nothing was
// pushed since the previous drain.
func (b *SnapshotBuffer) Drain() ([]notify.Notification, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.pending {
		return nil, false
	}
	out := b.latest
	b.latest = nil
	b.pending = false
	return out, true
}

// WaitForSignal blocks until a snapshot is ready to drain.
func (b *SnapshotBuffer) WaitForSignal() tea.Cmd {
	return func() tea.Msg {
		<-b.signal
		return drainSnapshotsMsg{}
	}
}
