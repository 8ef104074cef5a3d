package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PostgresRepository stores sub-accounts in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed ledger repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a sub-account row.
func (r *PostgresRepository) Create(ctx context.Context, account Account) error {
	accountID, err := uuid.Parse(account.ID)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(account.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO accounts (id, user_id, balance, created_at)
        VALUES ($1, $2, $3, $4)`, accountID, userID, account.Balance, account.CreatedAt.UTC())
	return err
}

// Get fetches a sub-account by identifier.
func (r *PostgresRepository) Get(ctx context.Context, id string) (Account, error) {
	accountID, err := uuid.Parse(id)
	if err != nil {
		return Account{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT id, user_id, balance, created_at FROM accounts WHERE id = $1`, accountID)
	var (
		idVal     uuid.UUID
		userID    uuid.UUID
		createdAt time.Time
		account   Account
	)
	if err := row.Scan(&idVal, &userID, &account.Balance, &createdAt); err != nil {
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

// TotalBalance sums all sub-account balances for the user. The single SELECT
// evaluates against one snapshot, so no partially applied concurrent
// mutation is ever observable in the sum.
func (r *PostgresRepository) TotalBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return decimal.Zero, nil
	}
	const query = `SELECT COALESCE(SUM(balance), 0) FROM accounts WHERE user_id = $1`
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, id).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
