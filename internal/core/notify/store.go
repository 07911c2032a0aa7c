package notify

import (
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/colonyops/toastboard/pkg/randid"
)

// DefaultCapacity is the number of notifications kept visible before the
// oldest ones are evicted to make room.
const DefaultCapacity = 50

// Order controls the order in which List returns notifications.
type Order string

const (
	OldestFirst Order = "oldest-first"
	NewestFirst Order = "newest-first"
)

// IsValid reports whether o is a supported display order.
func (o Order) IsValid() bool {
	return o == OldestFirst || o == NewestFirst
}

// Observer receives a snapshot of the visible notifications, in display
// order, after every change to the store.
type Observer func([]Notification)

// StoreOptions configures a Store.
type StoreOptions struct {
	// Capacity caps the number of visible notifications. Zero means
	// unbounded.
	Capacity int
	Order    Order
	// Now stamps CreatedAt. Defaults to time.Now.
	Now func() time.Time
}

// Store is the single source of truth for which notifications are visible.
// It knows nothing about expiry; callers evict entries explicitly.
//
// Mutations and the observer callbacks they trigger are serialized, so
// observers see snapshots in the same order the mutations were made.
// Observers may read the store but must not mutate it.
type Store struct {
	// dispatch serializes mutate+notify; mu guards the fields below.
	dispatch sync.Mutex
	mu       sync.Mutex

	items    []Notification
	seq      uint64
	capacity int
	order    Order
	now      func() time.Time

	observers map[uint64]Observer
	obsSeq    uint64
}

// NewStore creates an empty Store.
func NewStore(opts StoreOptions) *Store {
	if opts.Capacity < 0 {
		opts.Capacity = 0
	}
	if !opts.Order.IsValid() {
		opts.Order = OldestFirst
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Store{
		capacity:  opts.Capacity,
		order:     opts.Order,
		now:       opts.Now,
		observers: make(map[uint64]Observer),
	}
}

// Admit appends a new notification with a fresh ID. When the store is at
// capacity the oldest notifications are evicted first; their IDs are
// returned so the caller can release anything tied to them.
func (s *Store) Admit(message string, severity Severity, lifetime time.Duration) (Notification, []string) {
	s.dispatch.Lock()
	defer s.dispatch.Unlock()

	s.mu.Lock()
	s.seq++
	n := Notification{
		ID:        newID(s.seq),
		Message:   message,
		Severity:  severity,
		Lifetime:  lifetime,
		CreatedAt: s.now(),
	}
	s.items = append(s.items, n)
	evicted := s.trimLocked()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
	return n, evicted
}

// Evict removes the notification with the given ID. Evicting an unknown or
// already removed ID is a no-op and reports false.
func (s *Store) Evict(id string) bool {
	s.dispatch.Lock()
	defer s.dispatch.Unlock()

	s.mu.Lock()
	idx := slices.IndexFunc(s.items, func(n Notification) bool { return n.ID == id })
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.items = slices.Delete(s.items, idx, idx+1)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snapshot)
	return true
}

// Clear removes every notification and returns the removed IDs, oldest
// first.
func (s *Store) Clear() []string {
	s.dispatch.Lock()
	defer s.dispatch.Unlock()

	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return nil
	}
	ids := make([]string, len(s.items))
	for i, n := range s.items {
		ids[i] = n.ID
	}
	s.items = nil
	s.mu.Unlock()

	s.notify([]Notification{})
	return ids
}

// SetLimits changes the capacity and display order. Notifications beyond
// the new capacity are evicted oldest first and their IDs returned.
func (s *Store) SetLimits(capacity int, order Order) []string {
	s.dispatch.Lock()
	defer s.dispatch.Unlock()

	s.mu.Lock()
	if capacity < 0 {
		capacity = 0
	}
	if !order.IsValid() {
		order = s.order
	}
	changed := capacity != s.capacity || order != s.order
	s.capacity = capacity
	s.order = order
	evicted := s.trimLocked()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if changed {
		s.notify(snapshot)
	}
	return evicted
}

// List returns a snapshot of the visible notifications in display order.
func (s *Store) List() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get returns the notification with the given ID if it is visible.
func (s *Store) Get(id string) (Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.items {
		if n.ID == id {
			return n, true
		}
	}
	return Notification{}, false
}

// Len returns the number of visible notifications.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Order returns the configured display order.
func (s *Store) Order() Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order
}

// Subscribe registers an observer and returns a function that removes it.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	s.obsSeq++
	key := s.obsSeq
	s.observers[key] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, key)
			s.mu.Unlock()
		})
	}
}

// trimLocked evicts the oldest entries beyond capacity.
func (s *Store) trimLocked() []string {
	if s.capacity == 0 || len(s.items) <= s.capacity {
		return nil
	}

	excess := len(s.items) - s.capacity
	evicted := make([]string, excess)
	for i := range excess {
		evicted[i] = s.items[i].ID
	}
	s.items = slices.Delete(s.items, 0, excess)
	return evicted
}

func (s *Store) snapshotLocked() []Notification {
	out := slices.Clone(s.items)
	if out == nil {
		out = []Notification{}
	}
	if s.order == NewestFirst {
		slices.Reverse(out)
	}
	return out
}

func (s *Store) notify(snapshot []Notification) {
	s.mu.Lock()
	keys := make([]uint64, 0, len(s.observers))
	for k := range s.observers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	observers := make([]Observer, 0, len(keys))
	for _, k := range keys {
		observers = append(observers, s.observers[k])
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(slices.Clone(snapshot))
	}
}

// newID combines the admission counter, which alone guarantees uniqueness
// for the life of the store, with a random suffix that keeps IDs opaque.
func newID(seq uint64) string {
	return fmt.Sprintf("t%s-%s", strconv.FormatUint(seq, 36), randid.Generate(6))
}
