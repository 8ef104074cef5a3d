package kyc

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	cases map[string]Verification
}

// NewMemoryRepository builds an in-memory KYC store for tests and dev mode.
func NewMemoryRepository() Repository {
	return &memoryRepository{cases: make(map[string]Verification)}
}

func (r *memoryRepository) Create(_ context.Context, verification Verification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cases[verification.ID] = verification
	return nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (Verification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	verification, ok := r.cases[id]
	if !ok {
		return Verification{}, ErrNotFound
	}
	return verification, nil
}
