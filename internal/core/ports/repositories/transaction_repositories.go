package repositories

import (
	"context"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
)

// TransactionRepository defines the persistence operations for transactions.
// Implementations return apperrors.ErrNotFound for missing IDs; any other error
// is treated by the store as the persistence layer being unavailable.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	FindTransactions(ctx context.Context) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
	DeleteTransaction(ctx context.Context, transactionID string) error
}
