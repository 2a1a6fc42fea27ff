package query

import (
	"sort"
	"strings"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
)

// SortField selects the transaction attribute to order by.
type SortField string

const (
	SortByDate        SortField = "date"
	SortByAmount      SortField = "amount"
	SortByDescription SortField = "description"
	SortByCategory    SortField = "category"
)

// IsValid reports whether f is a known sort field.
func (f SortField) IsValid() bool {
	switch f {
	case SortByDate, SortByAmount, SortByDescription, SortByCategory:
		return true
	}
	return false
}

// SortDirection is the order applied to the active sort field.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// Sort is the single active ordering over a transaction list.
type Sort struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSort is the ordering used when the caller has not picked one:
// newest first, matching the transaction list view.
func DefaultSort() Sort {
	return Sort{Field: SortByDate, Direction: Descending}
}

// Toggle returns the sort that results from the user selecting field:
// re-selecting the active field flips the direction, while a new field
// starts descending.
func (s Sort) Toggle(field SortField) Sort {
	if field == s.Field {
		if s.Direction == Ascending {
			return Sort{Field: field, Direction: Descending}
		}
		return Sort{Field: field, Direction: Ascending}
	}
	return Sort{Field: field, Direction: Descending}
}

// Apply returns a sorted copy of the transactions. The sort is stable, so
// records with equal keys keep their relative input order.
func (s Sort) Apply(transactions []domain.Transaction) []domain.Transaction {
	sorted := append([]domain.Transaction(nil), transactions...)
	if !s.Field.IsValid() {
		return sorted
	}

	less := s.lessFunc()
	sort.SliceStable(sorted, func(i, j int) bool {
		if s.Direction == Ascending {
			return less(sorted[i], sorted[j])
		}
		return less(sorted[j], sorted[i])
	})
	return sorted
}

func (s Sort) lessFunc() func(a, b domain.Transaction) bool {
	switch s.Field {
	case SortByAmount:
		return func(a, b domain.Transaction) bool { return a.Amount.LessThan(b.Amount) }
	case SortByDescription:
		return func(a, b domain.Transaction) bool { return compareFold(a.Description, b.Description) < 0 }
	case SortByCategory:
		return func(a, b domain.Transaction) bool {
			return compareFold(string(a.Category), string(b.Category)) < 0
		}
	default: // SortByDate
		return func(a, b domain.Transaction) bool { return a.Date.Before(b.Date) }
	}
}

// compareFold orders strings case-insensitively, falling back to a byte
// comparison so that equal-fold strings still order deterministically.
func compareFold(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
