package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/monojitgoswami69/portfolio-admin-client/pkg/logger"
	"github.com/monojitgoswami69/portfolio-admin-client/pkg/storage"
)

// Cache is a best-effort session cache layered over a storage.Store.
// Values are JSON-serialized under the fixed storage.CachePrefix namespace.
// Storage and serialization failures are logged and swallowed so caching
// never breaks the operation it wraps. There is no TTL: entries live until
// explicitly cleared or the backing session ends.
type Cache struct {
	store  storage.Store
	logger *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for swallowed failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a session cache over the given store.
func New(store storage.Store, opts ...Option) *Cache {
	c := &Cache{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("cache"))
	return c
}

// Get reads the cached value for key into dest and reports whether a usable
// value was present. A missing key or an undecodable entry both count as
// absent; decode failures are logged, and the stale entry is dropped.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	raw, ok := c.store.Get(ctx, storage.CachePrefix+key)
	if !ok {
		return false
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "dropping undecodable cache entry",
			logger.CacheKey(key),
			logger.Error(err),
		)
		c.store.Remove(ctx, storage.CachePrefix+key)
		return false
	}
	return true
}

// Set stores value under key, best effort. Serialization or storage
// failures are logged and swallowed.
func (c *Cache) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "failed to serialize cache value",
			logger.CacheKey(key),
			logger.Error(err),
		)
		return
	}

	if err := c.store.Set(ctx, storage.CachePrefix+key, string(raw)); err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "failed to write cache entry",
			logger.CacheKey(key),
			logger.Error(err),
		)
	}
}

// Clear removes the entry for key. Clearing an absent key is a no-op.
func (c *Cache) Clear(ctx context.Context, key string) {
	c.store.Remove(ctx, storage.CachePrefix+key)
}

// ClearAll removes every cache entry without disturbing unrelated keys in
// the underlying store (tokens, user info).
func (c *Cache) ClearAll(ctx context.Context) {
	for _, key := range c.store.Keys(ctx) {
		if strings.HasPrefix(key, storage.CachePrefix) {
			c.store.Remove(ctx, key)
		}
	}
}

// ReadThrough returns the cached value for key unless forceRefresh is set or
// the cache misses, in which case it invokes producer, caches the result and
// returns it. Producer errors propagate to the caller untouched; cache
// failures never mask a successful produce.
func ReadThrough[T any](ctx context.Context, c *Cache, key string, forceRefresh bool, producer func(context.Context) (T, error)) (T, error) {
	if !forceRefresh {
		var cached T
		if c.Get(ctx, key, &cached) {
			return cached, nil
		}
	}

	value, err := producer(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	c.Set(ctx, key, value)
	return value, nil
}
