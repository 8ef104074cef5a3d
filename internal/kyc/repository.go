package kyc

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the referenced verification case does not exist.
var ErrNotFound = errors.New("kyc verification not found")

// Repository persists KYC verification cases.
type Repository interface {
	Create(ctx context.Context, verification Verification) error
	Get(ctx context.Context, id string) (Verification, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed KYC repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new verification case.
func (r *PostgresRepository) Create(ctx context.Context, verification Verification) error {
	verificationID, err := uuid.Parse(verification.ID)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(verification.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO kyc_verifications (id, user_id, status, document_url, biometric_ref, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`,
		verificationID, userID, verification.Status, verification.DocumentURL, verification.BiometricRef, verification.CreatedAt.UTC())
	return err
}

// Get fetches a verification case by identifier.
func (r *PostgresRepository) Get(ctx context.Context, id string) (Verification, error) {
	verificationID, err := uuid.Parse(id)
	if err != nil {
		return Verification{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT id, user_id, status, document_url, biometric_ref, created_at
        FROM kyc_verifications WHERE id = $1`, verificationID)
	var (
		idVal        uuid.UUID
		userID       uuid.UUID
		createdAt    time.Time
		verification Verification
	)
	if err := row.Scan(&idVal, &userID, &verification.Status, &verification.DocumentURL, &verification.BiometricRef, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Verification{}, ErrNotFound
		}
		return Verification{}, err
	}
	verification.ID = idVal.String()
	verification.UserID = userID.String()
	verification.CreatedAt = createdAt.UTC()
	return verification, nil
}
