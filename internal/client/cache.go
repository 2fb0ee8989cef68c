package client

import (
	"strings"
	"sync"
	"time"
)

type cacheEntry struct {
	value     interface{}
	fetchedAt time.Time
}

// memoryCache is a keyed read cache. An entry is served only while it is
// younger than the staleness window the caller passes in; invalidation
// drops the entry so the next read refetches.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	now     func() time.Time
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *memoryCache) get(key string, staleTime time.Duration) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) >= staleTime {
		return nil, false
	}
	return entry.value, true
}

func (c *memoryCache) set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, fetchedAt: c.now()}
}

// invalidate removes the keys and any detail entries nested under them.
func (c *memoryCache) invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, string(key))
		prefix := string(key) + "/"
		for stored := range c.entries {
			if strings.HasPrefix(stored, prefix) {
				delete(c.entries, stored)
			}
		}
	}
}
