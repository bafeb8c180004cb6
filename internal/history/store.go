package history

import "sync"

// Store owns the in-memory order set; the loader replaces it wholesale.
type Store struct {
	mu      sync.RWMutex
	records []Record
	loaded  bool
}

func NewStore() *Store { return &Store{} }

func (s *Store) Replace(recs []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = recs
	s.loaded = true
}

func (s *Store) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
