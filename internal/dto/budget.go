package dto

import (
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetBudgetRequest defines the upsert payload for a category budget.
type SetBudgetRequest struct {
	Category domain.Category `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	Category   domain.Category   `json:"category"`
	Amount     decimal.Decimal   `json:"amount"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	Durability domain.Durability `json:"durability,omitempty"`
}

// ToBudgetResponse converts a domain.Budget to its response DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		Category:  b.Category,
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// ListBudgetsResponse wraps the budget table with its total and the
// utilization overview used by the budget management screen.
type ListBudgetsResponse struct {
	Budgets     []BudgetResponse      `json:"budgets"`
	TotalBudget decimal.Decimal       `json:"totalBudget"`
	Overview    domain.BudgetOverview `json:"overview"`
	Source      domain.Source         `json:"source"`
}
