// Package cache provides the shared query cache admin dashboards read
// through, so two pages showing overlapping data issue one fetch instead of
// two uncoordinated ones.
package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// DefaultTTL is how long a fetched page stays fresh
const DefaultTTL = 30 * time.Second

type entry struct {
	done    chan struct{}
	val     any
	err     error
	expires time.Time
}

// Cache is a TTL query cache keyed by resource plus canonicalized filter
// set. Concurrent readers of the same key share a single in-flight fetch.
// Mutations invalidate a resource's whole keyspace; the last successful
// value per key is kept aside so a failing refetch can still show
// honestly-stale data instead of fabricated records.
type Cache struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	entries  map[string]*entry
	lastGood map[string]any
}

// New creates a cache with the given TTL (DefaultTTL if zero)
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:      ttl,
		now:      time.Now,
		entries:  make(map[string]*entry),
		lastGood: make(map[string]any),
	}
}

// Key canonicalizes a resource and its encoded filter set into a cache key
func Key(resource, params string) string {
	return resource + "|" + params
}

func resourceOf(key string) string {
	res, _, _ := strings.Cut(key, "|")
	return res
}

// GetOrFetch returns the cached value for the key, waits on an in-flight
// fetch for it, or runs fetch itself. Failed fetches are not cached.
func (c *Cache) GetOrFetch(ctx context.Context, key string, fetch func(context.Context) (any, error)) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		select {
		case <-e.done:
			if e.err == nil && c.now().Before(e.expires) {
				v := e.val
				c.mu.Unlock()
				return v, nil
			}
			// Stale; fall through and refetch.
		default:
			// Someone else is fetching this key right now.
			c.mu.Unlock()
			select {
			case <-e.done:
				return e.val, e.err
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	e := &entry{done: make(chan struct{})}
	c.entries[key] = e
	c.mu.Unlock()

	val, err := fetch(ctx)

	c.mu.Lock()
	e.val, e.err = val, err
	e.expires = c.now().Add(c.ttl)
	if err != nil {
		// Only the waiters that piggybacked on this fetch see the error;
		// the next caller retries.
		if c.entries[key] == e {
			delete(c.entries, key)
		}
	} else {
		c.lastGood[key] = val
	}
	close(e.done)
	c.mu.Unlock()

	return val, err
}

// Peek returns the last successfully fetched value for the key, however
// stale, for degraded-mode display.
func (c *Cache) Peek(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.lastGood[key]
	return v, ok
}

// Invalidate drops every fresh entry for the resource after a mutation.
// Last-good snapshots survive: they are genuine data, just stale, and are
// only shown when a refetch fails.
func (c *Cache) Invalidate(resource string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if resourceOf(key) != resource {
			continue
		}
		select {
		case <-e.done:
			delete(c.entries, key)
		default:
			// In-flight fetch; its result may already be stale but it will
			// expire on its own TTL.
		}
	}
}
