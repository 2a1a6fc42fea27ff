// Package query narrows and orders transaction snapshots according to the
// caller's current selection. Filters and sorts always return fresh slices and
// never mutate their input.
package query

import (
	"strings"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
)

// Filter describes the optional predicates applied to a transaction list.
// Zero-valued fields are pass-through. All set predicates must match
// (logical AND), including free-text search combined with a date range.
type Filter struct {
	Category domain.Category
	Type     domain.TransactionType
	Search   string
	From     time.Time
	To       time.Time
}

// IsZero reports whether the filter would pass every transaction through.
func (f Filter) IsZero() bool {
	return f.Category == "" && f.Type == "" && f.Search == "" && f.From.IsZero() && f.To.IsZero()
}

// Matches evaluates every set predicate against a single transaction.
func (f Filter) Matches(t domain.Transaction) bool {
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Search != "" && !matchesSearch(t, f.Search) {
		return false
	}
	if !f.From.IsZero() && t.Date.Before(domain.DateOnly(f.From)) {
		return false
	}
	if !f.To.IsZero() && t.Date.After(domain.DateOnly(f.To)) {
		return false
	}
	return true
}

// Apply returns the transactions that match the filter, in input order.
func (f Filter) Apply(transactions []domain.Transaction) []domain.Transaction {
	if f.IsZero() {
		return append([]domain.Transaction(nil), transactions...)
	}
	matched := make([]domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if f.Matches(t) {
			matched = append(matched, t)
		}
	}
	return matched
}

// matchesSearch does a case-insensitive substring match against the
// description, the category label and the stringified amount.
func matchesSearch(t domain.Transaction, search string) bool {
	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(t.Description), q) ||
		strings.Contains(strings.ToLower(string(t.Category)), q) ||
		strings.Contains(t.Amount.String(), q)
}
