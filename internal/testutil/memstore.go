package testutil

import (
	"context"
	"errors"
	"sync"
)

// ErrStoreUnavailable is returned by FailingStore.
var ErrStoreUnavailable = errors.New("store unavailable")

// MemoryStore is an in-memory preference store for tests.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	writes int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// NewMemoryStoreWith seeds the store with the given key/value pairs.
func NewMemoryStoreWith(seed map[string]string) *MemoryStore {
	s := NewMemoryStore()
	for k, v := range seed {
		s.values[k] = v
	}
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.writes++
	return nil
}

// Raw returns the stored value for key without going through a service.
func (s *MemoryStore) Raw(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

// Writes counts successful Set calls.
func (s *MemoryStore) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// FailingStore wraps a MemoryStore and fails reads and/or writes on demand.
type FailingStore struct {
	*MemoryStore
	FailGet bool
	FailSet bool
}

func NewFailingStore(failGet, failSet bool) *FailingStore {
	return &FailingStore{MemoryStore: NewMemoryStore(), FailGet: failGet, FailSet: failSet}
}

func (s *FailingStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.FailGet {
		return "", false, ErrStoreUnavailable
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *FailingStore) Set(ctx context.Context, key, value string) error {
	if s.FailSet {
		return ErrStoreUnavailable
	}
	return s.MemoryStore.Set(ctx, key, value)
}
