package models

import "github.com/shopspring/decimal"

// Budget is the persistence shape of a category budget row.
type Budget struct {
	Category string          `json:"category"` // Primary Key
	Amount   decimal.Decimal `json:"amount"`   // Non-negative; precise decimal type
	AuditFields
}
