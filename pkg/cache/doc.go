// Package cache implements the session-scoped read-through cache used by
// read endpoints that opt in to avoid redundant backend fetches.
//
// The cache guarantees staleness is never served past an explicit write:
// mutation paths call Clear before the next ReadThrough on the same key.
//
//	instructions, err := cache.ReadThrough(ctx, c, "system_instructions", false,
//		func(ctx context.Context) (map[string]any, error) {
//			return client.SystemInstructions(ctx)
//		})
package cache
