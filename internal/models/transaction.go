package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the persistence shape of a transaction row.
// Note: Amount should use a precise decimal type like github.com/shopspring/decimal
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Amount        decimal.Decimal `json:"amount"`        // Non-negative; precise decimal type
	Type          string          `json:"type"`          // income or expense (Not Null)
	Description   string          `json:"description"`   // Not Null
	Category      string          `json:"category"`      // Not Null
	Date          time.Time       `json:"date"`          // Calendar date of the transaction
	AuditFields
}
