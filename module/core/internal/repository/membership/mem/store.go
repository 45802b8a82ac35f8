package mem

import (
	"context"
	"sync"

	"github.com/Aravinth1228/safehaven/module/core/internal/repository/membership"
)

var _ membership.Store = (*Store)(nil)

// Store keeps containment flags in process memory. Suitable for a single
// server instance; use the redis store when running more than one.
type Store struct {
	mu    sync.RWMutex
	state map[string]bool
}

func NewStore() *Store {
	return &Store{state: make(map[string]bool)}
}

func (s *Store) Get(_ context.Context, touristID, zoneID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state[touristID+"|"+zoneID], nil
}

func (s *Store) Set(_ context.Context, touristID, zoneID string, inside bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state[touristID+"|"+zoneID] = inside
	return nil
}
