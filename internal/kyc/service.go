package kyc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/okapi-fin/okapi/internal/identity"
)

// Service tracks KYC verification cases. It only ever opens cases; status
// advancement is owned by the external review pipeline.
type Service struct {
	repo  Repository
	users identity.Repository
}

// NewService creates a KYC tracking service.
func NewService(repo Repository, users identity.Repository) *Service {
	return &Service{repo: repo, users: users}
}

// Initiate opens a new pending case for the user. No uniqueness is enforced:
// initiating twice yields two independent cases.
func (s *Service) Initiate(ctx context.Context, userID string) (Verification, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return Verification{}, identity.ErrNotFound
		}
		return Verification{}, err
	}

	verification := Verification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, verification); err != nil {
		return Verification{}, err
	}

	return verification, nil
}

// Get fetches a verification case.
func (s *Service) Get(ctx context.Context, id string) (Verification, error) {
	return s.repo.Get(ctx, id)
}
