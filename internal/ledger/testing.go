package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SeedAccount is a test helper that inserts a funded sub-account when using
// the in-memory repository. Returns the new account id.
func SeedAccount(r Repository, userID string, balance decimal.Decimal) string {
	mem, ok := r.(*inMemoryRepository)
	if !ok {
		return ""
	}
	account := Account{
		ID:        uuid.NewString(),
		UserID:    userID,
		Balance:   balance,
		CreatedAt: time.Now().UTC(),
	}
	mem.mu.Lock()
	defer mem.mu.Unlock()
	mem.accounts[account.ID] = account
	return account.ID
}
