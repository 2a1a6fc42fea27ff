package dto

import (
	"fmt"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
)

// DateRangeParams defines the optional inclusive date range accepted by the
// dashboard endpoints. Empty fields leave the range unbounded.
type DateRangeParams struct {
	From string `form:"from"` // YYYY-MM-DD
	To   string `form:"to"`   // YYYY-MM-DD
}

// Bounds parses the range. Zero times mean unbounded on that side.
func (p DateRangeParams) Bounds() (from, to time.Time, err error) {
	if p.From != "" {
		from, err = time.Parse(dateLayout, p.From)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date %q: %w", p.From, apperrors.ErrValidation)
		}
	}
	if p.To != "" {
		to, err = time.Parse(dateLayout, p.To)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date %q: %w", p.To, apperrors.ErrValidation)
		}
	}
	return from, to, nil
}
