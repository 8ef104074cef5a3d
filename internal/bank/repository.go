package bank

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound indicates the referenced bank account does not exist.
	ErrNotFound = errors.New("bank account not found")

	// ErrCodeMismatch indicates the presented code does not equal the stored
	// verification code.
	ErrCodeMismatch = errors.New("verification code mismatch")
)

// Repository persists linked bank accounts.
type Repository interface {
	Create(ctx context.Context, account Account) error
	Get(ctx context.Context, id string) (Account, error)
	SetVerificationCode(ctx context.Context, id, code string) error
	// Verify marks the account verified iff the stored code equals the
	// presented one. The match and the flag write happen atomically; on
	// mismatch the row is left untouched and ErrCodeMismatch is returned.
	Verify(ctx context.Context, id, code string) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed bank account repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new unverified bank account.
func (r *PostgresRepository) Create(ctx context.Context, account Account) error {
	accountID, err := uuid.Parse(account.ID)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(account.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO bank_accounts (id, user_id, account_number, debit_card_last_four, verification_code, verified, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		accountID, userID, account.AccountNumber, account.DebitCardLastFour, account.VerificationCode, account.Verified, account.CreatedAt.UTC())
	return err
}

// Get fetches a bank account by identifier.
func (r *PostgresRepository) Get(ctx context.Context, id string) (Account, error) {
	accountID, err := uuid.Parse(id)
	if err != nil {
		return Account{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT id, user_id, account_number, debit_card_last_four, verification_code, verified, created_at
        FROM bank_accounts WHERE id = $1`, accountID)
	var (
		idVal     uuid.UUID
		userID    uuid.UUID
		createdAt time.Time
		account   Account
	)
	if err := row.Scan(&idVal, &userID, &account.AccountNumber, &account.DebitCardLastFour, &account.VerificationCode, &account.Verified, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrNotFound
		}
		return Account{}, err
	}
	account.ID = idVal.String()
	account.UserID = userID.String()
	account.CreatedAt = createdAt.UTC()
	return account, nil
}

// SetVerificationCode overwrites the stored code unconditionally, whether or
// not a previously issued code was ever used.
func (r *PostgresRepository) SetVerificationCode(ctx context.Context, id, code string) error {
	accountID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	tag, err := r.db.Exec(ctx, `UPDATE bank_accounts SET verification_code = $1 WHERE id = $2`, code, accountID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Verify performs the match-then-set transition in a single conditional
// UPDATE, so two concurrent calls cannot observe a half-applied state. When
// no row is updated a follow-up read distinguishes a missing account from a
// code mismatch.
func (r *PostgresRepository) Verify(ctx context.Context, id, code string) error {
	accountID, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	tag, err := r.db.Exec(ctx, `UPDATE bank_accounts SET verified = TRUE
        WHERE id = $1 AND verification_code = $2`, accountID, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	row := r.db.QueryRow(ctx, `SELECT 1 FROM bank_accounts WHERE id = $1`, accountID)
	var one int
	if err := row.Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return ErrCodeMismatch
}
