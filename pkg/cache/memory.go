package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
	tags      []string
}

// memoryCache is a mutex-guarded in-process TagCache. Used by tests and as
// a dependency-free stand-in for the redis backend.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	tags    map[string]map[string]struct{}
}

// NewMemory returns an empty in-memory tag cache.
func NewMemory() TagCache {
	return &memoryCache{
		entries: make(map[string]memoryEntry),
		tags:    make(map[string]map[string]struct{}),
	}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		c.evict(key)
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration, tags ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
		tags:      tags,
	}
	for _, tag := range tags {
		if c.tags[tag] == nil {
			c.tags[tag] = make(map[string]struct{})
		}
		c.tags[tag][key] = struct{}{}
	}
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evict(key)
	return nil
}

func (c *memoryCache) InvalidateTags(_ context.Context, tags ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, tag := range tags {
		for key := range c.tags[tag] {
			c.evict(key)
		}
		delete(c.tags, tag)
	}
	return nil
}

// evict removes an entry and its tag memberships. Caller holds the lock.
func (c *memoryCache) evict(key string) {
	if entry, ok := c.entries[key]; ok {
		for _, tag := range entry.tags {
			delete(c.tags[tag], key)
		}
	}
	delete(c.entries, key)
}
