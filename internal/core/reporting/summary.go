package reporting

import (
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Summarize computes the headline totals for a transaction list.
// TotalBalance is always TotalIncome - TotalExpenses.
func Summarize(transactions []domain.Transaction) domain.Summary {
	summary := domain.Summary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Count:         len(transactions),
	}
	for _, t := range transactions {
		switch t.Type {
		case domain.Income:
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		case domain.Expense:
			summary.TotalExpenses = summary.TotalExpenses.Add(t.Amount)
		}
	}
	summary.TotalBalance = summary.TotalIncome.Sub(summary.TotalExpenses)
	return summary
}

// CompareMonths computes income and expense totals for now's calendar month and
// the immediately preceding one (handling the December rollback into the prior
// year), plus the percentage change between them.
func CompareMonths(transactions []domain.Transaction, now time.Time) domain.MonthComparison {
	now = now.UTC()
	thisYear, thisMonth := now.Year(), now.Month()

	lastYear, lastMonth := thisYear, thisMonth-1
	if thisMonth == time.January {
		lastYear, lastMonth = thisYear-1, time.December
	}

	cmp := domain.MonthComparison{
		ThisMonthIncome:   decimal.Zero,
		ThisMonthExpenses: decimal.Zero,
		LastMonthIncome:   decimal.Zero,
		LastMonthExpenses: decimal.Zero,
	}

	for _, t := range transactions {
		y, m := t.Date.Year(), t.Date.Month()
		switch {
		case y == thisYear && m == thisMonth:
			if t.Type == domain.Income {
				cmp.ThisMonthIncome = cmp.ThisMonthIncome.Add(t.Amount)
			} else {
				cmp.ThisMonthExpenses = cmp.ThisMonthExpenses.Add(t.Amount)
			}
		case y == lastYear && m == lastMonth:
			if t.Type == domain.Income {
				cmp.LastMonthIncome = cmp.LastMonthIncome.Add(t.Amount)
			} else {
				cmp.LastMonthExpenses = cmp.LastMonthExpenses.Add(t.Amount)
			}
		}
	}

	cmp.IncomeChange = percentChange(cmp.ThisMonthIncome, cmp.LastMonthIncome)
	cmp.ExpensesChange = percentChange(cmp.ThisMonthExpenses, cmp.LastMonthExpenses)
	return cmp
}

// percentChange returns (this-last)/last*100. A zero baseline would divide by
// zero, so it is defined as 100 when there is new activity and 0 otherwise.
func percentChange(this, last decimal.Decimal) decimal.Decimal {
	if last.IsZero() {
		if this.IsPositive() {
			return hundred
		}
		return decimal.Zero
	}
	return this.Sub(last).Div(last).Mul(hundred)
}
