package cache_test

import (
	"context"
	"testing"
	"time"

	"go-resume-backend/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return stored values before their TTL", func(t *testing.T) {
		c := cache.NewMemory()
		require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

		got, hit, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, hit)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("Should miss after expiry", func(t *testing.T) {
		c := cache.NewMemory()
		require.NoError(t, c.Set(ctx, "k", []byte("v"), -time.Second))

		_, hit, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("Should miss after delete", func(t *testing.T) {
		c := cache.NewMemory()
		require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
		require.NoError(t, c.Delete(ctx, "k"))

		_, hit, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("Should drop every entry carrying an invalidated tag", func(t *testing.T) {
		c := cache.NewMemory()
		require.NoError(t, c.Set(ctx, "list", []byte("a"), time.Minute, "tag1"))
		require.NoError(t, c.Set(ctx, "item", []byte("b"), time.Minute, "tag1", "tag2"))
		require.NoError(t, c.Set(ctx, "other", []byte("c"), time.Minute, "tag3"))

		require.NoError(t, c.InvalidateTags(ctx, "tag1"))

		_, hit, _ := c.Get(ctx, "list")
		assert.False(t, hit)
		_, hit, _ = c.Get(ctx, "item")
		assert.False(t, hit)
		_, hit, _ = c.Get(ctx, "other")
		assert.True(t, hit)
	})

	t.Run("Should tolerate invalidating an unknown tag", func(t *testing.T) {
		c := cache.NewMemory()
		assert.NoError(t, c.InvalidateTags(ctx, "never-set"))
	})

	t.Run("Should forget tag membership once a key is overwritten", func(t *testing.T) {
		c := cache.NewMemory()
		require.NoError(t, c.Set(ctx, "k", []byte("v1"), time.Minute, "old"))
		require.NoError(t, c.Set(ctx, "k", []byte("v2"), time.Minute, "new"))

		require.NoError(t, c.InvalidateTags(ctx, "new"))
		_, hit, _ := c.Get(ctx, "k")
		assert.False(t, hit)
	})
}
