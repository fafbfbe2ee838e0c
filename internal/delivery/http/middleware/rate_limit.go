package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/pkg/logger"
	"go-resume-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for per-client rate limiting.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
	// Key prefix for the counter namespace.
	KeyPrefix string
}

// DefaultRateLimitConfig is the global per-IP API limit.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:     100,
		Window:    time.Minute,
		KeyPrefix: "rl:ip:",
	}
}

type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

// Atomic increment with TTL on first hit; returns [count, ttl].
const rateLimitScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// RateLimitMiddleware enforces a fixed window counter per client IP. Counters
// live in Redis when it is configured, otherwise in process memory, so a
// Redis outage degrades to per-instance limiting instead of blocking traffic.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	var local sync.Map

	return func(c *gin.Context) {
		key := config.KeyPrefix + c.ClientIP()
		now := time.Now()

		count, resetAt, err := checkRedis(c, key, config)
		if err != nil {
			count, resetAt = checkLocal(&local, key, config, now)
		}

		if count > config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Warn("rate limit exceeded", "ip", c.ClientIP(), "path", c.FullPath())
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		remaining := config.Limit - count
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Next()
	}
}

func checkRedis(c *gin.Context, key string, config RateLimitConfig) (int, time.Time, error) {
	client := redis.Client()
	if client == nil {
		return 0, time.Time{}, fmt.Errorf("redis not configured")
	}

	result, err := client.Eval(c.Request.Context(), rateLimitScript, []string{key}, int(config.Window.Seconds())).Result()
	if err != nil {
		return 0, time.Time{}, err
	}
	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)
	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

func checkLocal(local *sync.Map, key string, config RateLimitConfig, now time.Time) (int, time.Time) {
	entryI, _ := local.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(config.Window)})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(config.Window)
	}
	entry.count++
	return entry.count, entry.resetAt
}
