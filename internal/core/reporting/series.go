// Package reporting contains the pure aggregation functions that turn a
// snapshot of transactions (plus the budget table) into the derived views the
// dashboard needs. Nothing in this package mutates or retains its inputs.
package reporting

import (
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// seriesMonths is the size of the trailing window shown on the monthly chart.
const seriesMonths = 6

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthlySeries buckets transactions into the trailing six calendar months
// ending at now's month, summing income and expense amounts per bucket. All six
// buckets are always present, oldest first, with zero sums when nothing matched.
//
// Only transactions dated in now's calendar year are counted. Current-year
// transactions whose month falls outside the window are excluded rather than
// wrapped into a longer series; see DESIGN.md for the rationale.
func MonthlySeries(transactions []domain.Transaction, now time.Time) []domain.MonthlyPoint {
	now = now.UTC()

	points := make([]domain.MonthlyPoint, seriesMonths)
	index := make(map[string]int, seriesMonths)
	for i := 0; i < seriesMonths; i++ {
		// 0-based month index, walking back from the current month.
		m := (int(now.Month()) - 1 - (seriesMonths - 1 - i) + 12) % 12
		points[i] = domain.MonthlyPoint{
			Month:   monthNames[m],
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
		index[monthNames[m]] = i
	}

	year := now.Year()
	for _, t := range transactions {
		if t.Date.Year() != year {
			continue
		}
		i, ok := index[monthNames[int(t.Date.Month())-1]]
		if !ok {
			continue
		}
		switch t.Type {
		case domain.Income:
			points[i].Income = points[i].Income.Add(t.Amount)
		case domain.Expense:
			points[i].Expense = points[i].Expense.Add(t.Amount)
		}
	}

	return points
}
