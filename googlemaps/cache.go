package googlemaps

import (
	"fmt"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
)

// responseCache is a thread-safe TTL cache for raw provider response bodies.
// Keys are xxhash digests of the request URL (without the API key). Expired
// entries are evicted lazily on lookup.
type responseCache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]cacheItem
}

type cacheItem struct {
	body   []byte
	expiry time.Time
}

// newResponseCache creates a cache with the given TTL. A zero or negative
// TTL disables caching entirely.
func newResponseCache(ttl time.Duration) *responseCache {
	if ttl <= 0 {
		return nil
	}
	return &responseCache{
		ttl:   ttl,
		items: make(map[string]cacheItem),
	}
}

// cacheKey digests a request URL into a fixed-size key.
func cacheKey(u string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(u))
}

func (c *responseCache) get(key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(item.expiry) {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return nil, false
	}
	return item.body, true
}

func (c *responseCache) set(key string, body []byte) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheItem{body: body, expiry: time.Now().Add(c.ttl)}
}
