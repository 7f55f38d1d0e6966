// Package cache provides the bounded, concurrency-safe result cache keyed by
// image content hash.
//
// Two guarantees matter here. Capacity is bounded with LRU eviction, so a
// long-running server cannot grow without limit. And computation is
// single-flight per key: when several requests race on the same unseen hash,
// exactly one runs the analysis and the rest block and share its result.
package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// Cache is a bounded LRU with single-flight computation per key. The zero
// value is not usable; construct with New.
type Cache[V any] struct {
	entries *lru.Cache[string, V]
	group   singleflight.Group
}

// New creates a cache holding at most capacity entries.
func New[V any](capacity int) (*Cache[V], error) {
	entries, err := lru.New[string, V](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}
	return &Cache[V]{entries: entries}, nil
}

// Get returns the cached value for key, computing and storing it on a miss.
// Concurrent callers for the same missing key join one in-flight computation
// and receive its value (or its error, which is never stored). hit reports
// whether this caller got the value without running compute itself, either
// from the cache or by joining another caller's flight.
func (c *Cache[V]) Get(key string, compute func() (V, error)) (value V, hit bool, err error) {
	if v, ok := c.entries.Get(key); ok {
		return v, true, nil
	}

	res, err, shared := c.group.Do(key, func() (interface{}, error) {
		// Re-check: another flight may have finished between the lookup
		// above and entering the group.
		if v, ok := c.entries.Get(key); ok {
			return v, nil
		}
		v, err := compute()
		if err != nil {
			return v, err
		}
		c.entries.Add(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}
	return res.(V), shared, nil
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	return c.entries.Len()
}

// Purge drops every entry.
func (c *Cache[V]) Purge() {
	c.entries.Purge()
}
