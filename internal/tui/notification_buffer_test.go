package tui

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/toastboard/internal/core/notify"
)

func TestSnapshotBuffer_Drain_empty(t *testing.T) {
	b := NewSnapshotBuffer()
	snap, ok := b.Drain()
	assert.False(t, ok)
	assert.Nil(t, snap)
}

func TestSnapshotBuffer_Push_keeps_latest_only(t *testing.T) {
	b := NewSnapshotBuffer()
	b.Push([]notify.Notification{{ID: "a"}})
	b.Push([]notify.Notification{{ID: "a"}, {ID: "b"}})

	snap, ok := b.Drain()
	require.True(t, ok)
	require.Len(t, snap, 2)
	assert.Equal(t, "b", snap[1].ID)

	_, ok = b.Drain()
	assert.False(t, ok)
}

func TestSnapshotBuffer_empty_snapshot_is_still_delivered(t *testing.T) {
	b := NewSnapshotBuffer()
	b.Push([]notify.Notification{})

	snap, ok := b.Drain()
	require.True(t, ok)
	assert.Empty(t, snap)
}

func TestSnapshotBuffer_WaitForSignal_bufferedSignal(t *testing.T) {
	b := NewSnapshotBuffer()
	b.Push([]notify.Notification{{ID: "queued"}})

	msg := b.WaitForSignal()()
	_, ok := msg.(drainSnapshotsMsg)
	require.True(t, ok)
}

func TestSnapshotBuffer_concurrent_push(t *testing.T) {
	b := NewSnapshotBuffer()

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Push([]notify.Notification{{ID: "x"}})
		}()
	}
	wg.Wait()

	// One coalesced signal, one drain.
	_ = b.WaitForSignal()()
	snap, ok := b.Drain()
	require.True(t, ok)
	assert.Len(t, snap, 1)
}
