package reporting

import (
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryBreakdown sums expense amounts grouped by category. Income
// transactions never contribute. Categories with no spending are omitted;
// the result is ordered by the fixed category display order, so callers that
// want a largest-first presentation sort it themselves.
func CategoryBreakdown(transactions []domain.Transaction) []domain.CategoryTotal {
	totals := expenseTotals(transactions)

	breakdown := make([]domain.CategoryTotal, 0, len(totals))
	for _, c := range domain.Categories {
		amount, ok := totals[c]
		if !ok {
			continue
		}
		breakdown = append(breakdown, domain.CategoryTotal{Category: c, Amount: amount})
	}
	return breakdown
}

// expenseTotals is the shared group-by used by the breakdown, budget and
// insight computations.
func expenseTotals(transactions []domain.Transaction) map[domain.Category]decimal.Decimal {
	totals := make(map[domain.Category]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != domain.Expense {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}
	return totals
}
