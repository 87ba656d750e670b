package storage

import "context"

// Fixed key layout shared by the client packages. Tokens and user info live
// beside cache entries in the same store, mirroring the browser session
// storage of the original console.
const (
	// TokenKey holds the bearer token.
	TokenKey = "admin_token"
	// UserKey holds the authenticated user info as a JSON document.
	UserKey = "admin_user"
	// CachePrefix namespaces session-cache entries.
	CachePrefix = "cache:"
)

// Store is the port for session-scoped key/value storage.
//
// Readers must tolerate missing values: concurrent writers (token renewal,
// login, logout, cache invalidation) may race with any read. Implementations
// that can fail on read (e.g. a remote backend) report the failure as absence
// rather than an error, logging it internally.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string)

	// Keys returns a snapshot of all stored keys.
	Keys(ctx context.Context) []string
}
