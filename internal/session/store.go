package session

import (
	"context"
	"sync"
)

// Store persists session records keyed by session identifier.
type Store interface {
	// Get returns ErrNotFound when nothing is stored and ErrInvalidRecord
	// when the stored record cannot be decoded.
	Get(ctx context.Context, id string) (*User, error)
	Set(ctx context.Context, id string, user *User) error
	Clear(ctx context.Context, id string) error
}

// MemoryStore keeps encoded records in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*User, error) {
	s.mu.RLock()
	raw, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return decodeUser(raw)
}

func (s *MemoryStore) Set(_ context.Context, id string, user *User) error {
	raw, err := encodeUser(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.records[id] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.records, id)
	s.mu.Unlock()
	return nil
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
