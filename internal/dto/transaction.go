package dto

import (
	"fmt"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	"github.com/fintrackr/finance_tracker_app/internal/core/query"
	"github.com/shopspring/decimal"
)

// dateLayout is the calendar-date form used on the API surface. Persistence
// exchanges full timestamps; responses re-derive this form.
const dateLayout = "2006-01-02"

// CreateTransactionRequest defines the data needed to record a new transaction.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Description string                 `json:"description" binding:"required"`
	Category    domain.Category        `json:"category" binding:"required"`
	Date        string                 `json:"date" binding:"required"` // YYYY-MM-DD
}

// UpdateTransactionRequest replaces every mutable field of a transaction.
// There are no partial-field patches; updates are full-record.
type UpdateTransactionRequest = CreateTransactionRequest

// Fields converts the request into an unvalidated domain transaction without
// ID or audit fields; the service fills those in.
func (r CreateTransactionRequest) Fields() (domain.Transaction, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", r.Date, apperrors.ErrValidation)
	}
	return domain.Transaction{
		Amount:      r.Amount,
		Type:        r.Type,
		Description: r.Description,
		Category:    r.Category,
		Date:        domain.DateOnly(date),
	}, nil
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID          string                 `json:"id"`
	Amount      decimal.Decimal        `json:"amount"`
	Type        domain.TransactionType `json:"type"`
	Description string                 `json:"description"`
	Category    domain.Category        `json:"category"`
	Date        string                 `json:"date"` // YYYY-MM-DD
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
	// Durability is only set on mutation responses, so callers can detect a
	// write that was applied in memory while the database was unreachable.
	Durability domain.Durability `json:"durability,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.TransactionID,
		Amount:      t.Amount,
		Type:        t.Type,
		Description: t.Description,
		Category:    t.Category,
		Date:        t.Date.Format(dateLayout),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToMutatedTransactionResponse is ToTransactionResponse plus the durability
// outcome of the mutation that produced the record.
func ToMutatedTransactionResponse(t *domain.Transaction, durability domain.Durability) TransactionResponse {
	resp := ToTransactionResponse(t)
	resp.Durability = durability
	return resp
}

// ListTransactionsParams defines the filter and sort query parameters of the
// transaction list and export endpoints.
type ListTransactionsParams struct {
	Category string `form:"category"`
	Type     string `form:"type" binding:"omitempty,oneof=income expense"`
	Search   string `form:"search"`
	From     string `form:"from"` // YYYY-MM-DD, inclusive
	To       string `form:"to"`   // YYYY-MM-DD, inclusive
	SortBy   string `form:"sortBy,default=date" binding:"omitempty,oneof=date amount description category"`
	SortDir  string `form:"sortDir,default=desc" binding:"omitempty,oneof=asc desc"`
}

// Filter maps the parameters onto the core filter. An unknown category is a
// validation error rather than an empty result, to catch client typos early.
func (p ListTransactionsParams) Filter() (query.Filter, error) {
	f := query.Filter{
		Type:   domain.TransactionType(p.Type),
		Search: p.Search,
	}
	if p.Category != "" {
		c := domain.Category(p.Category)
		if !c.IsValid() {
			return query.Filter{}, fmt.Errorf("unknown category %q: %w", p.Category, apperrors.ErrValidation)
		}
		f.Category = c
	}
	if p.From != "" {
		from, err := time.Parse(dateLayout, p.From)
		if err != nil {
			return query.Filter{}, fmt.Errorf("invalid from date %q: %w", p.From, apperrors.ErrValidation)
		}
		f.From = from
	}
	if p.To != "" {
		to, err := time.Parse(dateLayout, p.To)
		if err != nil {
			return query.Filter{}, fmt.Errorf("invalid to date %q: %w", p.To, apperrors.ErrValidation)
		}
		f.To = to
	}
	return f, nil
}

// Sort maps the parameters onto the core sort, defaulting to date descending.
func (p ListTransactionsParams) Sort() query.Sort {
	s := query.DefaultSort()
	if p.SortBy != "" {
		s.Field = query.SortField(p.SortBy)
	}
	if p.SortDir != "" {
		s.Direction = query.SortDirection(p.SortDir)
	}
	return s
}

// ListTransactionsResponse wraps the filtered list with its summary totals and
// the snapshot source.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Summary      domain.Summary        `json:"summary"`
	Source       domain.Source         `json:"source"`
}

// ToListTransactionsResponse converts a filtered snapshot into the list response.
func ToListTransactionsResponse(transactions []domain.Transaction, summary domain.Summary, source domain.Source) ListTransactionsResponse {
	resp := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, len(transactions)),
		Summary:      summary,
		Source:       source,
	}
	for i := range transactions {
		resp.Transactions[i] = ToTransactionResponse(&transactions[i])
	}
	return resp
}
