// Package cache provides a small TTL cache and a write debouncer with
// injectable clocks so both are testable without real time.
package cache

import (
	"time"

	"github.com/solunahq/soluna/internal/dates"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache maps string keys to values that expire after a fixed TTL.
type Cache[V any] struct {
	ttl     time.Duration
	clock   dates.Clock
	entries map[string]entry[V]
}

func New[V any](ttl time.Duration, clock dates.Clock) *Cache[V] {
	return &Cache[V]{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]entry[V]),
	}
}

// Get returns the cached value for key if it has not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if c.clock.Now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, key)
		return zero, false
	}
	return e.value, true
}

func (c *Cache[V]) Set(key string, value V) {
	c.entries[key] = entry[V]{value: value, storedAt: c.clock.Now()}
}

func (c *Cache[V]) Invalidate(key string) {
	delete(c.entries, key)
}

// EvictExpired removes all expired entries and returns how many were evicted.
func (c *Cache[V]) EvictExpired() int {
	now := c.clock.Now()
	evicted := 0
	for key, e := range c.entries {
		if now.Sub(e.storedAt) > c.ttl {
			delete(c.entries, key)
			evicted++
		}
	}
	return evicted
}

func (c *Cache[V]) Len() int {
	return len(c.entries)
}
