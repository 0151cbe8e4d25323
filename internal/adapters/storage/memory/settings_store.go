package memory

import (
	"context"
	"sync"

	"babylog/internal/ports/kv"
)

type settingsStore struct {
	mu   sync.RWMutex
	vals map[string]string
}

func NewSettingsStore() kv.Store {
	return &settingsStore{vals: make(map[string]string)}
}

func (s *settingsStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.vals[key]
	return v, ok, nil
}

func (s *settingsStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.vals[key] = value
	return nil
}

func (s *settingsStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.vals, key)
	return nil
}
