// Package cache provides the tag-aware cache used by the read-through
// handlers. Entries carry a TTL plus zero or more tags; invalidating a tag
// drops every entry that carries it without knowing the exact keys.
package cache

import (
	"context"
	"time"
)

// TagCache is the minimal tag-aware surface the handlers need. A failed
// invalidation must never block a response; callers log and move on.
type TagCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) error
	Delete(ctx context.Context, key string) error
	InvalidateTags(ctx context.Context, tags ...string) error
}
