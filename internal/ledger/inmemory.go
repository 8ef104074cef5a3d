package ledger

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"
)

type inMemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]Account
}

// NewInMemory creates a concurrency-safe in-memory ledger repository for
// tests and dev mode.
func NewInMemory() Repository {
	return &inMemoryRepository{accounts: make(map[string]Account)}
}

func (r *inMemoryRepository) Create(_ context.Context, account Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[account.ID] = account
	return nil
}

func (r *inMemoryRepository) Get(_ context.Context, id string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	account, ok := r.accounts[id]
	if !ok {
		return Account{}, ErrNotFound
	}
	return account, nil
}

func (r *inMemoryRepository) TotalBalance(_ context.Context, userID string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := decimal.Zero
	for _, account := range r.accounts {
		if account.UserID == userID {
			total = total.Add(account.Balance)
		}
	}
	return total, nil
}
