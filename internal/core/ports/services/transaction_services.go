package services

import (
	"context"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/fintrackr/finance_tracker_app/internal/core/query"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
)

// TransactionReaderSvc exposes read-only access to the transaction store.
// The Source return value tells the caller whether it received fresh data or
// the last known in-memory snapshot (backing store unreachable).
type TransactionReaderSvc interface {
	ListTransactions(ctx context.Context, filter query.Filter, sort query.Sort) ([]domain.Transaction, domain.Source, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// TransactionSvcFacade is the full transaction store contract. Mutations report
// the achieved durability: persistence failures degrade to an in-memory
// mutation instead of failing, so the UI stays consistent either way.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, domain.Durability, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, domain.Durability, error)
	DeleteTransaction(ctx context.Context, transactionID string) (domain.Durability, error)
}
