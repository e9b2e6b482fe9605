package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache holds the result of an expensive build for a limited time.
type Cache[T any] struct {
	mu    sync.RWMutex
	value T
	built time.Time
	valid bool
	ttl   time.Duration
	sf    singleflight.Group
}

// NewCache creates a cache whose entries expire after ttl.
// A zero ttl disables caching: every Get rebuilds.
func NewCache[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{ttl: ttl}
}

// IsExpired returns true if the cached value is missing or older than the TTL.
func (c *Cache[T]) IsExpired() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.expiredLocked()
}

func (c *Cache[T]) expiredLocked() bool {
	if !c.valid || c.ttl == 0 {
		return true
	}
	return time.Since(c.built) > c.ttl
}

// Get returns the cached value, or calls build when it is missing or expired.
// Concurrent callers share a single build.
func (c *Cache[T]) Get(ctx context.Context, build func(context.Context) (T, error)) (T, error) {
	c.mu.RLock()
	if !c.expiredLocked() {
		v := c.value
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do("build", func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		c.mu.RLock()
		if !c.expiredLocked() {
			v := c.value
			c.mu.RUnlock()
			return v, nil
		}
		c.mu.RUnlock()

		v, err := build(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.value = v
		c.built = time.Now()
		c.valid = true
		c.mu.Unlock()

		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result.(T), nil
}

// Invalidate drops the cached value.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	var zero T
	c.value = zero
	c.valid = false
	c.mu.Unlock()
}
