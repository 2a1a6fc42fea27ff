package services

import (
	"context"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

// BudgetReaderSvc exposes read-only access to the budget table.
type BudgetReaderSvc interface {
	ListBudgets(ctx context.Context) ([]domain.Budget, domain.Source, error)
	// GetBudgetAmount returns the ceiling for a category, zero when unset.
	GetBudgetAmount(ctx context.Context, category domain.Category) (decimal.Decimal, error)
	TotalBudget(ctx context.Context) (decimal.Decimal, error)
}

// BudgetSvcFacade is the full budget store contract. SetBudget is an upsert
// keyed by category.
type BudgetSvcFacade interface {
	BudgetReaderSvc
	SetBudget(ctx context.Context, req dto.SetBudgetRequest) (*domain.Budget, domain.Durability, error)
}
