package store

import (
	"errors"
	"sync"

	"github.com/i474232898/weather-now/internal/weather"
)

var (
	// ErrNoState is returned before anything has been published.
	ErrNoState = errors.New("no weather state published yet")
)

// MemoryStore is a concurrency-safe single-slot holder for the latest ViewState.
// It keeps no history: every Save replaces the previous value.
type MemoryStore struct {
	mu     sync.RWMutex
	latest weather.ViewState
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save replaces the published state.
func (s *MemoryStore) Save(state weather.ViewState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = state
}

// Latest returns the most recently saved state.
func (s *MemoryStore) Latest() (weather.ViewState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == nil {
		return nil, ErrNoState
	}
	return s.latest, nil
}
