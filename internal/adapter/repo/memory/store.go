package memory

import (
	"sync"

	"worldforge/internal/domain/world"
)

type worldEntry struct {
	mu sync.RWMutex
	m  *world.WorldMap
}

// Store keeps worlds in process. The store lock guards the index; each world
// has its own lock so searches on one world never wait on writes to another.
type Store struct {
	mu     sync.RWMutex
	worlds map[string]*worldEntry
}

func NewStore() *Store {
	return &Store{worlds: make(map[string]*worldEntry)}
}

func (s *Store) entry(id string) (*worldEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.worlds[id]
	return e, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.worlds)
}
