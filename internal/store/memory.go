package store

import (
	"context"
	"sync"
	"time"

	"github.com/Mking11/reque3sted/internal/logging"
	"github.com/Mking11/reque3sted/internal/types"
)

// Latency holds the artificial delay applied to each MemoryStore
// operation, simulating a slow backend.
type Latency struct {
	Insert time.Duration
	Update time.Duration
	Delete time.Duration
	Get    time.Duration
}

// DefaultLatency matches the demo timings: 500ms for writes, 1s for reads.
func DefaultLatency() Latency {
	return Latency{
		Insert: 500 * time.Millisecond,
		Update: 500 * time.Millisecond,
		Delete: 500 * time.Millisecond,
		Get:    time.Second,
	}
}

// NoLatency disables the artificial delays. Used by tests and anywhere
// the demo timing is unwanted.
func NoLatency() Latency {
	return Latency{}
}

// MemoryStore keeps users in a plain map guarded by an RWMutex.
// Every operation sleeps for its configured latency before touching
// the map; the sleep aborts early if the context is cancelled.
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[int64]types.User
	latency Latency
}

// NewMemoryStore returns an empty in-memory store with the given
// simulated latency.
func NewMemoryStore(latency Latency) *MemoryStore {
	return &MemoryStore{
		users:   make(map[int64]types.User),
		latency: latency,
	}
}

// sleep waits for d or until ctx is cancelled, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Insert creates or overwrites the record for u.ID.
func (s *MemoryStore) Insert(ctx context.Context, u types.User) error {
	if err := sleep(ctx, s.latency.Insert); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
	logging.StoreDebug("memory: inserted user %d", u.ID)
	return nil
}

// Update overwrites the record for u.ID if it exists; otherwise it is
// a no-op.
func (s *MemoryStore) Update(ctx context.Context, u types.User) error {
	if err := sleep(ctx, s.latency.Update); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.ID]; ok {
		s.users[u.ID] = u
		logging.StoreDebug("memory: updated user %d", u.ID)
	}
	return nil
}

// Delete removes the record for u.ID if present.
func (s *MemoryStore) Delete(ctx context.Context, u types.User) error {
	if err := sleep(ctx, s.latency.Delete); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, u.ID)
	logging.StoreDebug("memory: deleted user %d", u.ID)
	return nil
}

// GetByID returns the record for id, or (nil, nil) if absent.
func (s *MemoryStore) GetByID(ctx context.Context, id int64) (*types.User, error) {
	if err := sleep(ctx, s.latency.Get); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// Preload inserts records without the simulated latency. Intended for
// fixtures at startup and in tests.
func (s *MemoryStore) Preload(users ...types.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		s.users[u.ID] = u
	}
}

// Len reports how many records the store currently holds.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
