package catalog

import "sync"

// Store owns the in-memory catalog. The loader replaces its contents
// wholesale; everything else reads. Readers therefore always see a
// complete, consistent set.
type Store struct {
	mu      sync.RWMutex
	records []Record
	mapping Mapping
	loaded  bool
}

func NewStore() *Store { return &Store{} }

// Replace swaps in a freshly parsed record set and marks the store loaded.
func (s *Store) Replace(recs []Record, m Mapping) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = recs
	s.mapping = m
	s.loaded = true
}

// MarkLoaded flags the store ready without touching records; used when a
// load fails so dependents are not blocked on a dead feed.
func (s *Store) MarkLoaded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
}

func (s *Store) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

func (s *Store) Mapping() Mapping {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mapping
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
