package travel

import (
	"sync"
	"time"

	"github.com/ideadate/journey-engine/pkg/ideadate/model"
)

// DefaultTTL is the travel-edge cache entry lifetime (§4.2).
const DefaultTTL = 24 * time.Hour

type cacheKey struct {
	fromKey string
	toKey   string
	mode    model.TravelMode
}

type cacheEntry struct {
	edge      model.TravelEdge
	expiresAt time.Time
}

// Cache is a process-local, concurrency-safe travel-edge cache keyed by
// (fromKey, toKey, mode). It sweeps expired entries opportunistically on
// access rather than running a background goroutine, so its behavior is
// fully determined by call order — no engine output may differ between a
// cold cache and a warm one.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[cacheKey]cacheEntry
}

// NewCache constructs an empty cache with the given TTL. A zero ttl uses
// DefaultTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{ttl: ttl, entries: make(map[cacheKey]cacheEntry)}
}

// Get returns the resolved edge between from and to under mode, computing
// and caching it on a miss or expiry. A miss or expiry also sweeps every
// other expired entry.
func (c *Cache) Get(from, to model.Stop, mode model.TravelMode, now time.Time) model.TravelEdge {
	key := cacheKey{fromKey: NodeKey(from), toKey: NodeKey(to), mode: mode}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && now.Before(entry.expiresAt) {
		return entry.edge
	}

	edge := EstimateEdge(from, to, mode)

	c.mu.Lock()
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = cacheEntry{edge: edge, expiresAt: now.Add(c.ttl)}
	c.mu.Unlock()

	return edge
}

// Sweep removes all entries expired as of now. Safe to call concurrently
// with Get; purely an optimization, never required for correctness.
func (c *Cache) Sweep(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// Clear empties the cache. Idempotent: calling Clear on an empty cache is a
// no-op.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]cacheEntry)
}

// Len reports the current entry count, including not-yet-swept expired
// entries. Exposed for tests.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
