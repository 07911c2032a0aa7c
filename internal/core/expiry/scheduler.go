// Package expiry turns notification lifetimes into deferred, cancellable
// evictions.
package expiry

import (
	"sync"
	"time"

	"github.com/colonyops/toastboard/pkg/clock"
)

// Scheduler tracks at most one pending expiry timer per notification ID.
type Scheduler struct {
	clock clock.Clock

	mu      sync.Mutex
	pending map[string]pendingExpiry
	version uint64
}

type pendingExpiry struct {
	timer   clock.Timer
	version uint64
}

// New creates a Scheduler that uses clk for its timers.
func New(clk clock.Clock) *Scheduler {
	if clk == nil {
		clk = clock.Real()
	}
	return &Scheduler{
		clock:   clk,
		pending: make(map[string]pendingExpiry),
	}
}

// Schedule arranges for onExpire(id) to run once after lifetime has
// elapsed. A zero or negative lifetime registers nothing and reports
// false. Scheduling an ID that is already pending replaces its timer.
func (s *Scheduler) Schedule(id string, lifetime time.Duration, onExpire func(id string)) bool {
	if lifetime <= 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.pending[id]; ok {
		prev.timer.Stop()
	}

	// Each registration gets its own version so a callback that was already
	// dispatched for a cancelled or replaced timer can tell it is stale.
	s.version++
	ver := s.version
	timer := s.clock.AfterFunc(lifetime, func() {
		if !s.claim(id, ver) {
			return
		}
		onExpire(id)
	})
	s.pending[id] = pendingExpiry{timer: timer, version: ver}

	return true
}

// Cancel stops the pending timer for id. It reports false when nothing was
// pending.
func (s *Scheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[id]
	if !ok {
		return false
	}
	p.timer.Stop()
	delete(s.pending, id)
	return true
}

// CancelAll stops every pending timer and returns how many were pending.
func (s *Scheduler) CancelAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.pending)
	for id, p := range s.pending {
		p.timer.Stop()
		delete(s.pending, id)
	}
	return n
}

// Pending reports whether id has an outstanding timer.
func (s *Scheduler) Pending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[id]
	return ok
}

// Len returns the number of outstanding timers.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// claim removes the bookkeeping for id if the firing timer is still the
// registered one. Cancel and claim are serialized by mu, so a cancelled
// timer can never deliver.
func (s *Scheduler) claim(id string, ver uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[id]
	if !ok || p.version != ver {
		return false
	}
	delete(s.pending, id)
	return true
}
