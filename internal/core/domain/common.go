package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Durability describes the outcome of a store mutation. Persistence failures are
// deliberately not surfaced as hard errors; the mutation is applied in memory and
// the caller receives DurabilityMemoryOnly so it can distinguish the degraded case.
type Durability string

const (
	// DurabilityPersisted means the mutation reached the backing store.
	DurabilityPersisted Durability = "persisted"
	// DurabilityMemoryOnly means the backing store was unavailable and the
	// mutation was applied to the in-memory snapshot only.
	DurabilityMemoryOnly Durability = "memory_only"
)

// Source describes where a read was served from.
type Source string

const (
	// SourceDatabase means the data was freshly loaded from the backing store.
	SourceDatabase Source = "database"
	// SourceMemory means the backing store was unavailable and the last known
	// in-memory snapshot was returned instead.
	SourceMemory Source = "memory"
)
