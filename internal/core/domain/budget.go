package domain

import (
	"fmt"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Budget is a spending ceiling for one category. Category is the natural key;
// at most one budget exists per category.
type Budget struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	AuditFields
}

// Validate checks the budget invariants.
func (b Budget) Validate() error {
	if !b.Category.IsValid() {
		return fmt.Errorf("unknown category %q: %w", b.Category, apperrors.ErrValidation)
	}
	if b.Amount.IsNegative() {
		return fmt.Errorf("budget amount must be non-negative: %w", apperrors.ErrValidation)
	}
	return nil
}
