// Package cache provides the in-memory request cache backing the data-access
// layer. Entries are fresh for a fixed window after a successful fetch, are
// served stale with a background refresh until the retention window lapses,
// and are evicted once unused for the retention window. The cache lives and
// dies with the process; a restart starts cold.
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"postboard/internal/observability"
)

const (
	// DefaultFreshness is how long a successful fetch is served without
	// going upstream.
	DefaultFreshness = 5 * time.Minute
	// DefaultRetention is how long an unused entry stays in memory.
	DefaultRetention = 5 * time.Minute

	sweepEvery     = time.Minute
	refreshTimeout = 30 * time.Second
)

// FetchFunc loads a value from upstream on a miss or background refresh.
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	value      any
	fetchedAt  time.Time
	lastAccess time.Time
	refreshing bool
}

// Cache is a process-wide request cache. One instance is constructed at
// startup, injected into the data-access layer, and closed at shutdown.
type Cache struct {
	mu        sync.Mutex
	entries   map[string]*entry
	gens      map[string]uint64
	freshness time.Duration
	retention time.Duration
	group     singleflight.Group
	done      chan struct{}
	closeOnce sync.Once
	now       func() time.Time
}

// New creates a Cache with the given freshness and retention windows and
// starts the retention sweeper. Non-positive windows fall back to defaults.
func New(freshness, retention time.Duration) *Cache {
	if freshness <= 0 {
		freshness = DefaultFreshness
	}
	if retention <= 0 {
		retention = DefaultRetention
	}
	c := &Cache{
		entries:   make(map[string]*entry),
		gens:      make(map[string]uint64),
		freshness: freshness,
		retention: retention,
		done:      make(chan struct{}),
		now:       time.Now,
	}
	go c.sweep()
	return c
}

// Close stops the retention sweeper. The cache must not be used afterwards.
func (c *Cache) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// GetOrFetch returns the cached value for key, fetching from upstream when
// the key is absent. A fresh entry is returned without any upstream call.
// A stale-but-retained entry is returned immediately while a single
// background refresh runs. Concurrent cold reads of the same key share one
// upstream call.
func (c *Cache) GetOrFetch(ctx context.Context, key string, fetch FetchFunc) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		now := c.now()
		e.lastAccess = now
		if now.Sub(e.fetchedAt) >= c.freshness && !e.refreshing {
			e.refreshing = true
			go c.refresh(key, fetch)
		}
		v := e.value
		c.mu.Unlock()
		observability.CacheHits.WithLabelValues(key).Inc()
		return v, nil
	}
	gen := c.gens[key]
	c.mu.Unlock()

	observability.CacheMisses.WithLabelValues(key).Inc()
	v, err, _ := c.group.Do(key, func() (any, error) {
		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, gen, value)
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Invalidate drops the entry for key so the next read goes upstream. An
// in-flight fetch started before the invalidation will not repopulate the
// entry. Invalidate returns only once the entry is gone, so a caller that
// navigates afterwards observes the invalidated state.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	c.gens[key]++
	delete(c.entries, key)
	c.mu.Unlock()
	observability.CacheInvalidations.WithLabelValues(key).Inc()
}

// Peek returns the cached value without touching freshness bookkeeping.
// Test and diagnostics helper.
func (c *Cache) Peek(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// refresh re-fetches a stale entry in the background. The stale value keeps
// being served; on failure the entry is left as-is and the next stale read
// retries.
func (c *Cache) refresh(key string, fetch FetchFunc) {
	c.mu.Lock()
	gen := c.gens[key]
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	value, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		e.refreshing = false
	}
	if err != nil || c.gens[key] != gen {
		return
	}
	now := c.now()
	c.entries[key] = &entry{value: value, fetchedAt: now, lastAccess: now}
}

// store records a fetched value unless the key was invalidated mid-flight.
func (c *Cache) store(key string, gen uint64, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[key] != gen {
		return
	}
	now := c.now()
	c.entries[key] = &entry{value: value, fetchedAt: now, lastAccess: now}
}

func (c *Cache) sweep() {
	ticker := time.NewTicker(sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.evictExpired()
		}
	}
}

// evictExpired drops entries that have gone unused for the retention window.
func (c *Cache) evictExpired() {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if now.Sub(e.lastAccess) >= c.retention {
			delete(c.entries, key)
			delete(c.gens, key)
			observability.CacheEvictions.Inc()
		}
	}
}
