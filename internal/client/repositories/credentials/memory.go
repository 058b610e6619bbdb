package credentials

import (
	"context"
	"sync"
)

// MemoryStore holds the credential for the life of the process.
type MemoryStore struct {
	mu    sync.Mutex
	value string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns a store pre-loaded with credential, which may be empty.
func NewMemoryStore(credential string) *MemoryStore {
	return &MemoryStore{value: credential}
}

func (s *MemoryStore) Read(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, nil
}

func (s *MemoryStore) Write(_ context.Context, credential string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = credential
	return nil
}

func (s *MemoryStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = ""
	return nil
}
