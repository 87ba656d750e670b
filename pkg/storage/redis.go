package storage

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/monojitgoswami69/portfolio-admin-client/pkg/logger"
)

// RedisStore implements Store on top of Redis for server-side deployments
// where console session state outlives a single process. Read failures are
// reported as absence so callers degrade the same way they would on a
// missing browser-storage value.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	logger *slog.Logger
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithRedisLogger sets the logger used for swallowed read failures.
func WithRedisLogger(l *slog.Logger) RedisStoreOption {
	return func(s *RedisStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewRedisStore creates a Redis-backed store. prefix namespaces every key so
// multiple console sessions can share one Redis database.
func NewRedisStore(client redis.UniversalClient, prefix string, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: prefix,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("storage"))
	return s
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "redis read failed, treating key as absent",
				slog.String("key", key),
				logger.Error(err),
			)
		}
		return "", false
	}
	return value, true
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	// No TTL: eviction is explicit invalidation only, same as the in-memory store.
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *RedisStore) Remove(ctx context.Context, key string) {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "redis delete failed",
			slog.String("key", key),
			logger.Error(err),
		)
	}
}

func (s *RedisStore) Keys(ctx context.Context) []string {
	var keys []string
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "redis scan failed",
			logger.Error(err),
		)
	}
	return keys
}
