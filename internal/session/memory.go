package session

import (
	"context"
	"sync"
)

// MemoryStore backs tests; no Redis required.
type MemoryStore struct {
	mu   sync.Mutex
	bags map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bags: make(map[string]Session)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bag, ok := s.bags[id]
	if !ok {
		return nil, nil
	}
	bag.dirty = false
	return &bag, nil
}

func (s *MemoryStore) Save(ctx context.Context, id string, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bags[id] = *sess
	return nil
}
