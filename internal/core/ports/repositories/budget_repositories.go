package repositories

import (
	"context"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
)

// BudgetRepository defines the persistence operations for budgets.
// Category is the natural key: UpsertBudget replaces an existing ceiling for
// the category or inserts a new one.
type BudgetRepository interface {
	UpsertBudget(ctx context.Context, budget domain.Budget) error
	FindBudgets(ctx context.Context) ([]domain.Budget, error)
}
