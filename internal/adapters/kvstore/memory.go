package kvstore

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/streak-radar/internal/core/domain"
)

var _ domain.KeyValueStore = (*MemoryStore)(nil)

// MemoryStore keeps values in process memory. State is lost on exit.
type MemoryStore struct {
	store map[string][]byte

	mu sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		store: make(map[string][]byte),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.store[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return append([]byte(nil), value...), nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.store, key)
	return nil
}
