package idempotency

import (
	"context"
	"sync"

	"payrouter/internal/domain"
)

// InMemoryStore implements Store with a process-local map. No eviction or
// expiry: entries live for the process lifetime. For multi-instance
// deployments use RedisStore instead.
type InMemoryStore struct {
	mu        sync.RWMutex
	decisions map[string]*domain.RouteDecision
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		decisions: make(map[string]*domain.RouteDecision),
	}
}

// Get returns the stored decision by reference; callers must treat it as
// immutable.
func (s *InMemoryStore) Get(ctx context.Context, key string) (*domain.RouteDecision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.decisions[key], nil
}

func (s *InMemoryStore) Put(ctx context.Context, key string, decision *domain.RouteDecision) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decisions[key] = decision
	return nil
}

// Len reports the number of cached decisions.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.decisions)
}
