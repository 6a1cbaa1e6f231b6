package securestore

import (
	"context"
	"sync"

	"pantry/internal/domain/repository"
)

// MemoryStore is an in-memory CredentialStore. Contents live for the
// process only; it exists for tests and for running without a writable
// data directory.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore is the constructor for MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get retrieves the value for a key, or repository.ErrKeyNotFound if absent.
func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}
	return value, nil
}

// Set writes the value for a key, overwriting any previous value.
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// SetMany writes several keys under one lock.
func (s *MemoryStore) SetMany(_ context.Context, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range values {
		s.values[key] = value
	}
	return nil
}
