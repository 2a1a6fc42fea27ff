package reporting

import (
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Insights derives the dashboard highlight cards: the top spending category,
// budgets currently exceeded, and the upcoming bill reminders.
func Insights(transactions []domain.Transaction, budgets []domain.Budget, now time.Time) domain.Insights {
	totals := expenseTotals(transactions)

	insights := domain.Insights{
		TopAmount:     decimal.Zero,
		OverBudget:    []domain.BudgetStatus{},
		UpcomingBills: UpcomingBills(now),
	}

	for _, c := range domain.Categories {
		amount, ok := totals[c]
		if !ok {
			continue
		}
		if amount.GreaterThan(insights.TopAmount) {
			insights.TopCategory = c
			insights.TopAmount = amount
		}
	}

	for _, status := range BudgetUtilization(transactions, budgets).Statuses {
		if status.OverBudget {
			insights.OverBudget = append(insights.OverBudget, status)
		}
	}

	return insights
}

// UpcomingBills returns the bill reminders shown on the dashboard. There is no
// real reminder scheduler; this is the same static sample the product ships
// with, dated relative to now.
func UpcomingBills(now time.Time) []domain.UpcomingBill {
	today := domain.DateOnly(now)
	return []domain.UpcomingBill{
		{Name: "Rent", Amount: decimal.NewFromInt(1200), DueDate: today.AddDate(0, 0, 5)},
		{Name: "Electricity", Amount: decimal.NewFromInt(85), DueDate: today.AddDate(0, 0, 8)},
		{Name: "Internet", Amount: decimal.NewFromInt(60), DueDate: today.AddDate(0, 0, 12)},
	}
}
