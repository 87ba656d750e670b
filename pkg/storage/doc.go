// Package storage defines the session storage port used by the client
// packages for tokens, user info, and cache entries, together with an
// in-memory implementation and a Redis adapter.
package storage
