// Package unavailable provides repository stand-ins used when no database is
// configured. Every call fails with apperrors.ErrPersistenceUnavailable, which
// the stores treat as a signal to serve from their in-memory replicas.
package unavailable

import (
	"context"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
)

type TransactionRepository struct{}

var _ portsrepo.TransactionRepository = TransactionRepository{}

func (TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return apperrors.ErrPersistenceUnavailable
}

func (TransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return nil, apperrors.ErrPersistenceUnavailable
}

func (TransactionRepository) FindTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return nil, apperrors.ErrPersistenceUnavailable
}

func (TransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	return apperrors.ErrPersistenceUnavailable
}

func (TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	return apperrors.ErrPersistenceUnavailable
}

type BudgetRepository struct{}

var _ portsrepo.BudgetRepository = BudgetRepository{}

func (BudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) error {
	return apperrors.ErrPersistenceUnavailable
}

func (BudgetRepository) FindBudgets(ctx context.Context) ([]domain.Budget, error) {
	return nil, apperrors.ErrPersistenceUnavailable
}
