package cache

import (
	"sync"
	"time"
)

// DefaultTTL is the expiry applied to entries when no TTL is
// configured at construction.
const DefaultTTL = 5 * time.Minute

// Option configures a Cache at construction time.
type Option func(*config)

type config struct {
	ttl time.Duration
	now func() time.Time
}

// WithTTL sets the initial time-to-live for cache entries.
func WithTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.ttl = ttl
	}
}

// WithClock overrides the time source. Used by tests to simulate the
// passage of time without sleeping.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache is a TTL-bounded in-memory store. An entry is valid while
// now - storedAt < ttl; expired entries are evicted lazily when read.
// All methods are safe for concurrent use.
type Cache[V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry[V]
	enabled bool
	now     func() time.Time
}

// New creates an enabled cache with the default TTL unless overridden.
func New[V any](opts ...Option) *Cache[V] {
	cfg := config{
		ttl: DefaultTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Cache[V]{
		ttl:     cfg.ttl,
		entries: make(map[string]entry[V]),
		enabled: true,
		now:     cfg.now,
	}
}

// Get returns the value stored under key if it exists and has not
// expired. An expired entry is evicted on the spot.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return zero, false
	}
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the current timestamp, overwriting
// any prior entry. A disabled cache ignores writes.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return
	}
	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
}

// Delete removes the entry stored under key, if any.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// DeletePrefix removes every entry whose key starts with prefix and
// reports how many were removed.
func (c *Cache[V]) DeletePrefix(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Clear empties the store.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[V])
}

// Len reports the number of unexpired entries. Expired entries found
// during the count are evicted.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.entries {
		if now.Sub(e.storedAt) >= c.ttl {
			delete(c.entries, key)
		}
	}
	return len(c.entries)
}

// TTL returns the current time-to-live.
func (c *Cache[V]) TTL() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ttl
}

// SetTTL changes the time-to-live for all entries, existing ones
// included, taking effect on the next read.
func (c *Cache[V]) SetTTL(ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = ttl
}

// Enabled reports whether the cache accepts reads and writes.
func (c *Cache[V]) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// SetEnabled toggles the cache. Disabling clears all entries
// immediately, so no stale read is possible after a disable.
func (c *Cache[V]) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.enabled = enabled
	if !enabled {
		c.entries = make(map[string]entry[V])
	}
}
