package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	"github.com/fintrackr/finance_tracker_app/internal/models"
	"github.com/fintrackr/finance_tracker_app/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTransactionRepository creates a new repository for transaction data.
func NewPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{pool: pool}
}

// SaveTransaction inserts a new transaction row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, amount, type, description, category, transaction_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	m := mapping.ToModelTransaction(txn)
	_, err := r.pool.Exec(ctx, query,
		m.TransactionID,
		m.Amount,
		m.Type,
		m.Description,
		m.Category,
		m.Date,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a single transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, amount, type, description, category, transaction_date, created_at, updated_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	var m models.Transaction
	err := r.pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID,
		&m.Amount,
		&m.Type,
		&m.Description,
		&m.Category,
		&m.Date,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// FindTransactions retrieves the full transaction set, newest first.
func (r *PgxTransactionRepository) FindTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, amount, type, description, category, transaction_date, created_at, updated_at
		FROM transactions
		ORDER BY transaction_date DESC, created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var m models.Transaction
		err := row.Scan(
			&m.TransactionID,
			&m.Amount,
			&m.Type,
			&m.Description,
			&m.Category,
			&m.Date,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(txns), nil
}

// UpdateTransaction replaces every mutable field of an existing row.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET amount = $2, type = $3, description = $4, category = $5, transaction_date = $6, updated_at = $7
		WHERE transaction_id = $1;
	`

	m := mapping.ToModelTransaction(txn)
	tag, err := r.pool.Exec(ctx, query,
		m.TransactionID,
		m.Amount,
		m.Type,
		m.Description,
		m.Category,
		m.Date,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a row by ID.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`

	tag, err := r.pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
