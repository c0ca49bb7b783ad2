package cache

import (
	"context"
	"sync"
	"time"

	"github.com/umitgh/procurement-system/internal/domain/shared"
)

// defaultSweepInterval is how often expired claims are dropped
const defaultSweepInterval = 5 * time.Minute

// InMemoryIdempotencyStore keeps claims in process memory. Claims are lost
// on restart and are not shared between replicas.
type InMemoryIdempotencyStore struct {
	mu      sync.Mutex
	claims  map[string]time.Time
	stop    chan struct{}
	done    chan struct{}
	stopped sync.Once
}

// NewInMemoryIdempotencyStore creates a store that sweeps expired claims
// in the background until Close
func NewInMemoryIdempotencyStore() *InMemoryIdempotencyStore {
	return newInMemoryIdempotencyStore(defaultSweepInterval)
}

func newInMemoryIdempotencyStore(sweepEvery time.Duration) *InMemoryIdempotencyStore {
	s := &InMemoryIdempotencyStore{
		claims: make(map[string]time.Time),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go s.sweepLoop(sweepEvery)
	return s
}

// MarkProcessed claims key until now+ttl. An expired claim can be taken again.
func (s *InMemoryIdempotencyStore) MarkProcessed(_ context.Context, key string, ttl time.Duration) (bool, error) {
	now := shared.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	if until, ok := s.claims[key]; ok && now.Before(until) {
		return false, nil
	}
	s.claims[key] = now.Add(ttl)
	return true, nil
}

// IsProcessed reports whether key holds an unexpired claim
func (s *InMemoryIdempotencyStore) IsProcessed(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.claims[key]
	return ok && shared.Now().Before(until), nil
}

// Close stops the sweeper. Safe to call more than once.
func (s *InMemoryIdempotencyStore) Close() error {
	s.stopped.Do(func() {
		close(s.stop)
		<-s.done
	})
	return nil
}

// Len returns the number of claims held, expired or not
func (s *InMemoryIdempotencyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.claims)
}

func (s *InMemoryIdempotencyStore) sweepLoop(every time.Duration) {
	defer close(s.done)
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *InMemoryIdempotencyStore) sweep() {
	now := shared.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, until := range s.claims {
		if !now.Before(until) {
			delete(s.claims, key)
		}
	}
}

var _ shared.IdempotencyStore = (*InMemoryIdempotencyStore)(nil)
