package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction adds to or subtracts from the balance.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction represents a single financial event. The sign of the event is
// carried by Type; Amount is always a non-negative magnitude.
type Transaction struct {
	TransactionID string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Type          TransactionType `json:"type"`
	Description   string          `json:"description"`
	Category      Category        `json:"category"`
	Date          time.Time       `json:"date"` // day granularity, normalized to UTC midnight
	AuditFields
}

// Validate checks the transaction invariants. It wraps apperrors.ErrValidation so
// callers can map failures to a 400-equivalent with errors.Is.
func (t Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return fmt.Errorf("amount must be non-negative: %w", apperrors.ErrValidation)
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("type must be %q or %q: %w", Income, Expense, apperrors.ErrValidation)
	}
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("description is required: %w", apperrors.ErrValidation)
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("unknown category %q: %w", t.Category, apperrors.ErrValidation)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("date is required: %w", apperrors.ErrValidation)
	}
	return nil
}

// DateOnly truncates a timestamp to calendar-date precision in UTC. Dates cross
// the persistence boundary as full timestamps and must be re-derived after any
// round trip.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
