package api

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/yt-trends/internal/models"
)

// DefaultCacheTTL is how long a fetch result stays fresh.
const DefaultCacheTTL = 300 * time.Second

type cacheEntry struct {
	result   models.FetchResult
	storedAt time.Time
}

// Cache memoizes fetch results by their full request tuple. Entries expire
// after the TTL and are evicted lazily on lookup; nothing sweeps in the
// background.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache creates a cache whose entries stay fresh for ttl.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// CacheKey builds the lookup key for one fetch: region, result limit, the
// whitespace-trimmed query, and the caller's invalidation token. A new token
// yields a new key, which is what makes the manual-refresh bypass work.
func CacheKey(region string, maxResults int64, query, token string) string {
	return strings.Join([]string{
		region,
		strconv.FormatInt(maxResults, 10),
		strings.TrimSpace(query),
		token,
	}, "|")
}

// Get returns the cached result for key while it is still fresh. A stale
// entry is deleted on the spot and reported as a miss.
func (c *Cache) Get(key string) (models.FetchResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		return models.FetchResult{}, false
	}
	if time.Since(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		c.misses.Add(1)
		return models.FetchResult{}, false
	}

	c.hits.Add(1)
	return entry.result, true
}

// Set stores a fresh result under key with the current time.
func (c *Cache) Set(key string, result models.FetchResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{result: result, storedAt: time.Now()}
}

// Stats reports lifetime hit and miss counts.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Len reports the number of stored entries, stale ones included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
