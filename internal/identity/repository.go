package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound indicates the referenced user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrPhoneTaken indicates the phone number is already registered.
	ErrPhoneTaken = errors.New("phone number already registered")
)

// Repository persists users.
type Repository interface {
	Create(ctx context.Context, user User) error
	FindByID(ctx context.Context, id string) (User, error)
	FindByPhone(ctx context.Context, phone string) (User, error)
	FindByUsernameAndCivilIDSuffix(ctx context.Context, username, suffix string) (User, error)
	SetTermsAccepted(ctx context.Context, id string, accepted bool) error
	UpdateProfile(ctx context.Context, id string, profile Profile) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed user repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, username, civil_id, phone, name, address, password_hash, terms_accepted, created_at`

// Create inserts a new user. Phone uniqueness is enforced by the schema.
func (r *PostgresRepository) Create(ctx context.Context, user User) error {
	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, `INSERT INTO users (id, username, civil_id, phone, name, address, password_hash, terms_accepted, created_at)
        SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9
        WHERE NOT EXISTS (SELECT 1 FROM users WHERE phone = $4)`,
		userID, user.Username, user.CivilID, user.Phone, user.Name, user.Address, user.PasswordHash, user.TermsAccepted, user.CreatedAt.UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPhoneTaken
	}
	return nil
}

// FindByID fetches a user by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return User{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	return scanUser(row)
}

// FindByPhone fetches a user by phone number.
func (r *PostgresRepository) FindByPhone(ctx context.Context, phone string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE phone = $1`, phone)
	return scanUser(row)
}

// FindByUsernameAndCivilIDSuffix fetches the user whose username matches
// exactly and whose civil id ends with the given suffix.
func (r *PostgresRepository) FindByUsernameAndCivilIDSuffix(ctx context.Context, username, suffix string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users
        WHERE username = $1 AND civil_id LIKE '%' || $2`, username, suffix)
	return scanUser(row)
}

// SetTermsAccepted records the terms acceptance flag.
func (r *PostgresRepository) SetTermsAccepted(ctx context.Context, id string, accepted bool) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	tag, err := r.db.Exec(ctx, `UPDATE users SET terms_accepted = $1 WHERE id = $2`, accepted, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProfile overwrites name, address and phone, empty values included.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, id string, profile Profile) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	tag, err := r.db.Exec(ctx, `UPDATE users SET name = $1, address = $2, phone = $3 WHERE id = $4`,
		profile.Name, profile.Address, profile.Phone, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (User, error) {
	var (
		id        uuid.UUID
		createdAt time.Time
		user      User
	)
	if err := row.Scan(&id, &user.Username, &user.CivilID, &user.Phone, &user.Name, &user.Address, &user.PasswordHash, &user.TermsAccepted, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	user.ID = id.String()
	user.CreatedAt = createdAt.UTC()
	return user, nil
}
