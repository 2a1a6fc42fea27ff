package models

import "time"

// AuditFields are the persistence-side record timestamps shared by all tables.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
