package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/okapi-fin/okapi/internal/notification"
)

type testNotifier struct {
	last notification.Message
}

func (n *testNotifier) Send(_ context.Context, msg notification.Message) error {
	n.last = msg
	return nil
}

func seedUser(t *testing.T, repo Repository, user User) User {
	t.Helper()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now().UTC()
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestRegisterCreatesBareUser(t *testing.T) {
	svc := NewService(NewMemoryRepository(), &testNotifier{})
	ctx := context.Background()

	user, err := svc.Register(ctx, "+96550001122", "hunter2")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected server-assigned id")
	}
	if user.TermsAccepted {
		t.Fatalf("terms must start unaccepted")
	}
	if user.Username != "" || user.Name != "" || user.Address != "" {
		t.Fatalf("profile fields must start empty: %+v", user)
	}
	if len(user.PasswordHash) == 0 {
		t.Fatalf("credential must be hashed and stored")
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	svc := NewService(NewMemoryRepository(), &testNotifier{})
	ctx := context.Background()

	if _, err := svc.Register(ctx, "+96550001122", "hunter2"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, "+96550001122", "other"); !errors.Is(err, ErrPhoneTaken) {
		t.Fatalf("expected phone conflict, got %v", err)
	}
}

func TestSignInBySuffix(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, &testNotifier{})
	ctx := context.Background()

	seeded := seedUser(t, repo, User{Username: "jdoe", CivilID: "ABCD12", Phone: "+96550000001"})

	user, err := svc.SignIn(ctx, "jdoe", "12")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if user.ID != seeded.ID {
		t.Fatalf("resolved wrong user")
	}

	if _, err := svc.SignIn(ctx, "jdoe", "34"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong suffix must fail, got %v", err)
	}
	if _, err := svc.SignIn(ctx, "other", "12"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong username must fail, got %v", err)
	}
}

func TestAcceptTerms(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, &testNotifier{})
	ctx := context.Background()

	user := seedUser(t, repo, User{Phone: "+96550000002"})

	if err := svc.AcceptTerms(ctx, user.ID); err != nil {
		t.Fatalf("accept terms: %v", err)
	}
	got, _ := repo.FindByID(ctx, user.ID)
	if !got.TermsAccepted {
		t.Fatalf("terms flag not set")
	}

	if err := svc.AcceptTerms(ctx, uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCompleteProfileOverwritesUnconditionally(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, &testNotifier{})
	ctx := context.Background()

	user := seedUser(t, repo, User{Phone: "+96550000003", Name: "Old Name", Address: "Old Street"})

	err := svc.CompleteProfile(ctx, user.ID, Profile{Name: "New Name", Address: "", Phone: "+96550009999"})
	if err != nil {
		t.Fatalf("complete profile: %v", err)
	}

	got, _ := repo.FindByID(ctx, user.ID)
	if got.Name != "New Name" {
		t.Fatalf("name not overwritten: %q", got.Name)
	}
	if got.Address != "" {
		t.Fatalf("empty address must overwrite stored value, got %q", got.Address)
	}
	if got.Phone != "+96550009999" {
		t.Fatalf("phone not overwritten: %q", got.Phone)
	}
}

func TestAuthenticateWithCivilID(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, &testNotifier{})
	ctx := context.Background()

	user := seedUser(t, repo, User{Phone: "+96550000004", CivilID: "XYZ789"})

	if err := svc.AuthenticateWithCivilID(ctx, user.ID, "89"); err != nil {
		t.Fatalf("matching suffix: %v", err)
	}
	if err := svc.AuthenticateWithCivilID(ctx, user.ID, "12"); !errors.Is(err, ErrCivilIDMismatch) {
		t.Fatalf("expected mismatch, got %v", err)
	}
	if err := svc.AuthenticateWithCivilID(ctx, uuid.NewString(), "89"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAuthenticateWithCivilIDNoCivilID(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, &testNotifier{})
	ctx := context.Background()

	user := seedUser(t, repo, User{Phone: "+96550000005"})

	if err := svc.AuthenticateWithCivilID(ctx, user.ID, "89"); !errors.Is(err, ErrCivilIDMismatch) {
		t.Fatalf("missing civil id must mismatch, got %v", err)
	}
}

func TestRetrieveByPhone(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, &testNotifier{})
	ctx := context.Background()

	seedUser(t, repo, User{Phone: "+96550000006", Username: "found"})

	user, err := svc.RetrieveByPhone(ctx, "+96550000006")
	if err != nil {
		t.Fatalf("retrieve: %v", err)
	}
	if user.Username != "found" {
		t.Fatalf("wrong user: %+v", user)
	}

	if _, err := svc.RetrieveByPhone(ctx, "+96550007777"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSendOnboardingNotification(t *testing.T) {
	repo := NewMemoryRepository()
	notifier := &testNotifier{}
	svc := NewService(repo, notifier)
	ctx := context.Background()

	user := seedUser(t, repo, User{Phone: "+96550000007"})

	if err := svc.SendOnboardingNotification(ctx, user.ID); err != nil {
		t.Fatalf("send notification: %v", err)
	}
	if notifier.last.Kind != notification.KindOnboarding {
		t.Fatalf("expected onboarding notification, got %+v", notifier.last)
	}
	if notifier.last.Destination != user.Phone {
		t.Fatalf("notification must target the user's phone, got %q", notifier.last.Destination)
	}

	if err := svc.SendOnboardingNotification(ctx, uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
