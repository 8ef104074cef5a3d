package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service exposes sub-account provisioning and balance aggregation.
type Service struct {
	repo Repository
}

// NewService builds a ledger service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateAccount provisions a zero-balance sub-account for the user.
func (s *Service) CreateAccount(ctx context.Context, userID string) (Account, error) {
	account := Account{
		ID:        uuid.NewString(),
		UserID:    userID,
		Balance:   decimal.Zero,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return Account{}, err
	}
	return account, nil
}

// TotalBalance returns the sum over every sub-account the user owns. A user
// with no accounts, or an unknown user, totals zero; callers needing to
// distinguish the two must resolve the user separately.
func (s *Service) TotalBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	return s.repo.TotalBalance(ctx, userID)
}
