package cache

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store for tests and cache-less deployments.
type MemStore struct {
	mu      sync.RWMutex
	entries map[string]Payload
}

func NewMemStore() *MemStore {
	return &MemStore{entries: make(map[string]Payload)}
}

func (m *MemStore) Read(_ context.Context, key string) (Payload, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.entries[key]
	return p, ok
}

func (m *MemStore) Write(_ context.Context, key string, p Payload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = p
	return nil
}
