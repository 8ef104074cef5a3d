package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates the referenced sub-account does not exist.
var ErrNotFound = errors.New("account not found")

// Account is a balance-holding sub-account of a user. A user may own any
// number of them; the dashboard figure is their sum.
type Account struct {
	ID        string
	UserID    string
	Balance   decimal.Decimal
	CreatedAt time.Time
}

// Repository persists ledger sub-accounts and answers aggregate reads.
type Repository interface {
	Create(ctx context.Context, account Account) error
	Get(ctx context.Context, id string) (Account, error)
	// TotalBalance sums the balances of every account owned by the user
	// within a single consistent snapshot. Unknown users and users without
	// accounts both yield zero.
	TotalBalance(ctx context.Context, userID string) (decimal.Decimal, error)
}
