package cache

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// redisCache stores entries as plain string values and keeps one set per
// tag holding the member keys. Tag sets outlive their members; they are
// cleaned up on invalidation.
type redisCache struct {
	client *goredis.Client
}

// NewRedis wraps an initialized go-redis client.
func NewRedis(client *goredis.Client) TagCache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) error {
	pipe := c.client.TxPipeline()
	pipe.Set(ctx, key, value, ttl)
	for _, tag := range tags {
		pipe.SAdd(ctx, tag, key)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *redisCache) InvalidateTags(ctx context.Context, tags ...string) error {
	for _, tag := range tags {
		keys, err := c.client.SMembers(ctx, tag).Result()
		if err != nil {
			return err
		}
		pipe := c.client.TxPipeline()
		if len(keys) > 0 {
			pipe.Del(ctx, keys...)
		}
		pipe.Del(ctx, tag)
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
