package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/okapi-fin/okapi/internal/notification"
)

const civilIDSuffixLen = 2

var (
	// ErrInvalidCredentials indicates the username/civil-id pair did not
	// resolve to a user.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCivilIDMismatch indicates the user exists but the presented civil id
	// suffix does not match.
	ErrCivilIDMismatch = errors.New("civil id mismatch")
)

// Service manages the user onboarding lifecycle.
type Service struct {
	repo     Repository
	notifier notification.Notifier
}

// NewService creates a new identity service.
func NewService(repo Repository, notifier notification.Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Register creates a user from phone and credential. The credential is
// stored as a bcrypt hash; every other profile field starts empty.
func (s *Service) Register(ctx context.Context, phone, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           uuid.NewString(),
		Phone:        phone,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}

	return user, nil
}

// SignIn resolves a user by exact username and the last two characters of
// their civil id. The full civil id never participates in the comparison.
func (s *Service) SignIn(ctx context.Context, username, civilIDLastTwo string) (User, error) {
	user, err := s.repo.FindByUsernameAndCivilIDSuffix(ctx, username, civilIDLastTwo)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	return user, nil
}

// AcceptTerms marks the terms and conditions as accepted.
func (s *Service) AcceptTerms(ctx context.Context, userID string) error {
	return s.repo.SetTermsAccepted(ctx, userID, true)
}

// CompleteProfile overwrites the user's name, address and phone. There are
// no partial-update semantics: empty inputs overwrite stored values.
func (s *Service) CompleteProfile(ctx context.Context, userID string, profile Profile) error {
	return s.repo.UpdateProfile(ctx, userID, profile)
}

// AuthenticateWithCivilID checks that the user's civil id ends with the
// presented suffix.
func (s *Service) AuthenticateWithCivilID(ctx context.Context, userID, civilIDLastTwo string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if len(user.CivilID) < civilIDSuffixLen || !strings.HasSuffix(user.CivilID, civilIDLastTwo) {
		return ErrCivilIDMismatch
	}
	return nil
}

// RetrieveByPhone looks up an account by phone number.
func (s *Service) RetrieveByPhone(ctx context.Context, phone string) (User, error) {
	return s.repo.FindByPhone(ctx, phone)
}

// SendOnboardingNotification delivers the onboarding reminder to the user's
// phone. Delivery failures are not surfaced to the caller.
func (s *Service) SendOnboardingNotification(ctx context.Context, userID string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	_ = s.notifier.Send(ctx, notification.Message{
		Kind:        notification.KindOnboarding,
		Destination: user.Phone,
		Body:        "Welcome back! Continue your onboarding process by signing in to the app.",
	})
	return nil
}
