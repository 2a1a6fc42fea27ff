package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portsrepo "github.com/fintrackr/finance_tracker_app/internal/core/ports/repositories"
	"github.com/fintrackr/finance_tracker_app/internal/models"
	"github.com/fintrackr/finance_tracker_app/internal/utils/mapping"
)

type PgxBudgetRepository struct {
	pool *pgxpool.Pool
}

// NewPgxBudgetRepository creates a new repository for budget data.
func NewPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{pool: pool}
}

// UpsertBudget inserts or replaces the spending ceiling for a category.
// Category is the table's primary key.
func (r *PgxBudgetRepository) UpsertBudget(ctx context.Context, budget domain.Budget) error {
	query := `
		INSERT INTO budgets (category, amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (category) DO UPDATE SET
			amount = EXCLUDED.amount,
			updated_at = EXCLUDED.updated_at;
	`

	m := mapping.ToModelBudget(budget)
	_, err := r.pool.Exec(ctx, query,
		m.Category,
		m.Amount,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert budget for %s: %w", budget.Category, err)
	}
	return nil
}

// FindBudgets retrieves all category budgets.
func (r *PgxBudgetRepository) FindBudgets(ctx context.Context) ([]domain.Budget, error) {
	query := `
		SELECT category, amount, created_at, updated_at
		FROM budgets
		ORDER BY category;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	budgets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Budget, error) {
		var m models.Budget
		err := row.Scan(
			&m.Category,
			&m.Amount,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect budgets: %w", err)
	}

	return mapping.ToDomainBudgetSlice(budgets), nil
}
