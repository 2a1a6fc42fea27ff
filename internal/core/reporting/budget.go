package reporting

import (
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetUtilization compares every budget against actual spending in its
// category. A zero budget amount yields a zero percentage rather than a
// division error. TotalUtilization is nil when no budget is set at all.
func BudgetUtilization(transactions []domain.Transaction, budgets []domain.Budget) domain.BudgetOverview {
	totals := expenseTotals(transactions)

	overview := domain.BudgetOverview{
		Statuses:    make([]domain.BudgetStatus, 0, len(budgets)),
		TotalBudget: decimal.Zero,
	}

	for _, b := range budgets {
		actual := totals[b.Category] // zero value is a valid decimal zero
		overspent := actual.Sub(b.Amount)

		remaining := b.Amount.Sub(actual)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		percentage := decimal.Zero
		if b.Amount.IsPositive() {
			percentage = actual.Div(b.Amount).Mul(hundred)
		}

		overview.Statuses = append(overview.Statuses, domain.BudgetStatus{
			Category:   b.Category,
			Budget:     b.Amount,
			Actual:     actual,
			Remaining:  remaining,
			Overspent:  overspent,
			Percentage: percentage,
			OverBudget: actual.GreaterThan(b.Amount),
		})
		overview.TotalBudget = overview.TotalBudget.Add(b.Amount)
	}

	totalSpending := decimal.Zero
	for _, amount := range totals {
		totalSpending = totalSpending.Add(amount)
	}
	overview.TotalSpending = totalSpending

	if overview.TotalBudget.IsPositive() {
		utilization := totalSpending.Div(overview.TotalBudget).Mul(hundred)
		overview.TotalUtilization = &utilization
	}

	return overview
}
