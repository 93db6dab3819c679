package cache

import (
	"sync"
	"time"
)

// SimpleCache is a in-memory cache with per-item TTL, used to keep fully
// normalized recap responses around for a few minutes.
type SimpleCache struct {
	memoryCache map[string]simpleCacheItem
	mu          sync.RWMutex
}

// Simple cache item.
type simpleCacheItem struct {
	value any
	ttl   time.Time
}

// NewSimpleCache creates a empty cache.
func NewSimpleCache() *SimpleCache {
	return &SimpleCache{
		memoryCache: make(map[string]simpleCacheItem),
	}
}

// Get returns a key value of the cache, nil when absent or expired.
func (sc *SimpleCache) Get(key string) any {
	sc.mu.RLock()
	item, exists := sc.memoryCache[key]
	sc.mu.RUnlock()

	if !exists {
		return nil
	}

	// If the reset time was reached, remove the entry.
	if time.Now().After(item.ttl) {
		sc.mu.Lock()
		delete(sc.memoryCache, key)
		sc.mu.Unlock()
		return nil
	}

	return item.value
}

// Set a given key on the cache.
func (sc *SimpleCache) Set(key string, value any, ttl time.Duration) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	sc.memoryCache[key] = simpleCacheItem{
		value: value,
		ttl:   time.Now().Add(ttl),
	}
}
