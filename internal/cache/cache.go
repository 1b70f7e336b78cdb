// Package cache provides a small concurrency-safe TTL cache used for derived
// read-mostly data such as the public profile.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value   any
	expires time.Time
}

// TTL caches loader results per key for a caller-chosen duration. The clock
// is injected so tests can control expiry. Instances are passed by injection;
// there is no package-level cache.
type TTL struct {
	now     func() time.Time
	mu      sync.Mutex
	entries map[string]entry
}

// New creates a TTL cache. A nil clock defaults to time.Now.
func New(now func() time.Time) *TTL {
	if now == nil {
		now = time.Now
	}
	return &TTL{now: now, entries: make(map[string]entry)}
}

// Get returns the cached value for key, invoking loader when the entry is
// absent or expired. Loader errors are not cached.
func (c *TTL) Get(key string, ttl time.Duration, loader func() (any, error)) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Before(e.expires) {
		c.mu.Unlock()
		return e.value, nil
	}
	c.mu.Unlock()

	v, err := loader()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = entry{value: v, expires: c.now().Add(ttl)}
	c.mu.Unlock()
	return v, nil
}

// Invalidate drops the cached entry for key, if any.
func (c *TTL) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
