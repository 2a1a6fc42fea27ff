package cache

import "context"

// SnapshotCache is a best-effort cache for derived dashboard views. Lookups
// and stores never fail loudly; a cache that is down simply behaves as empty.
type SnapshotCache interface {
	// Get unmarshals the cached value for key into dest, reporting whether a
	// usable entry was found.
	Get(ctx context.Context, key string, dest any) bool
	// Set stores value under key with the cache's default TTL.
	Set(ctx context.Context, key string, value any)
	// Invalidate drops all dashboard entries. Called after any mutation.
	Invalidate(ctx context.Context)
}
