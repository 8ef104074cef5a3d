package bank

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/okapi-fin/okapi/internal/identity"
)

// Service drives the bank-link verification lifecycle: an account is created
// unverified, a one-time code is issued against it, and presenting the
// matching code back marks it permanently verified.
type Service struct {
	repo  Repository
	users identity.Repository
}

// NewService creates a bank link service. The user repository is consulted
// only to confirm the owner exists before linking.
func NewService(repo Repository, users identity.Repository) *Service {
	return &Service{repo: repo, users: users}
}

// LinkInput captures the data needed to link a bank account.
type LinkInput struct {
	UserID            string
	AccountNumber     string
	DebitCardLastFour string
}

// Link creates an unverified bank account bound to an existing user.
func (s *Service) Link(ctx context.Context, input LinkInput) (Account, error) {
	if _, err := s.users.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return Account{}, identity.ErrNotFound
		}
		return Account{}, err
	}

	account := Account{
		ID:                uuid.NewString(),
		UserID:            input.UserID,
		AccountNumber:     input.AccountNumber,
		DebitCardLastFour: input.DebitCardLastFour,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return Account{}, err
	}

	return account, nil
}

// IssueCode stores a verification code on the account, overwriting any
// previously issued code regardless of whether it was used.
func (s *Service) IssueCode(ctx context.Context, accountID, code string) error {
	return s.repo.SetVerificationCode(ctx, accountID, code)
}

// Verify transitions the account to verified when the presented code equals
// the stored one exactly. The code survives verification, so replaying the
// last issued code keeps succeeding; no single-use invalidation applies.
func (s *Service) Verify(ctx context.Context, accountID, code string) error {
	if code == "" {
		// A link with no issued code has nothing to match against.
		return ErrCodeMismatch
	}
	return s.repo.Verify(ctx, accountID, code)
}

// Get fetches a linked account.
func (s *Service) Get(ctx context.Context, accountID string) (Account, error) {
	return s.repo.Get(ctx, accountID)
}
