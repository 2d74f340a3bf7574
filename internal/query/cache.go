// Package query is a keyed cache of fetched entities with request
// de-duplication and mutation driven invalidation.
package query

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/uptask/internal/events"
	"golang.org/x/sync/singleflight"
)

// Status is the fetch state of an entry
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
)

// Loader fetches the value for a key, typically a resource client call
type Loader func(ctx context.Context) (any, error)

// Entry is a snapshot of one cache entry
type Entry struct {
	Value         any
	HasValue      bool
	Err           error
	Status        Status
	Stale         bool
	LastFetchedAt time.Time
}

type entry struct {
	value         any
	hasValue      bool
	err           error
	status        Status
	stale         bool
	lastFetchedAt time.Time
	// generation changes on every invalidation; a load remembers the
	// generation it started under
	generation uint64
}

func (e *entry) fresh() bool {
	return e.hasValue && !e.stale && e.status == StatusIdle
}

// Cache maps keys to their last known result
type Cache struct {
	mu      sync.Mutex
	entries map[Key]*entry
	gen     uint64

	group     singleflight.Group
	publisher events.Publisher
	metrics   *Metrics
	logger    *slog.Logger
	now       func() time.Time
}

// Option configures a Cache
type Option func(*Cache)

// WithPublisher announces cache changes on p
func WithPublisher(p events.Publisher) Option {
	return func(c *Cache) {
		c.publisher = p
	}
}

// WithLogger sets the logger for the cache
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// WithClock overrides time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates an empty cache
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[Key]*entry),
		metrics: NewMetrics(),
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch returns the cached value for key if it is fresh. Otherwise it calls
// loader, sharing a single call among all concurrent callers for the same
// key. A caller whose ctx is done stops waiting; the load itself always
// runs to completion and its result is stored.
func (c *Cache) Fetch(ctx context.Context, key Key, loader Loader) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && e.fresh() {
		c.mu.Unlock()
		c.metrics.Hits.Add(1)
		return e.value, nil
	}
	if !ok {
		e = &entry{generation: c.nextGen()}
		c.entries[key] = e
	}
	c.metrics.Misses.Add(1)
	e.status = StatusLoading
	gen := e.generation
	c.mu.Unlock()

	// the generation is part of the flight key, so a fetch issued after an
	// invalidation never joins a load that started before it
	flightKey := fmt.Sprintf("%s#%d", key, gen)
	loadCtx := context.WithoutCancel(ctx)

	ch := c.group.DoChan(flightKey, func() (any, error) {
		return c.load(loadCtx, key, e, gen, loader)
	})

	select {
	case res := <-ch:
		if res.Shared {
			c.metrics.Shared.Add(1)
		}
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Cache) load(ctx context.Context, key Key, e *entry, gen uint64, loader Loader) (any, error) {
	c.metrics.Loads.Add(1)
	start := c.now()
	value, err := loader(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries[key] != e {
		// removed while in flight; nobody observes this key any more
		c.logger.Debug("discarding result for removed cache entry", "key", key.String())
		return value, err
	}

	if err != nil {
		c.metrics.Errors.Add(1)
		e.err = err
		e.status = StatusError
		c.logger.Debug("cache load failed", "key", key.String(), "error", err)
		c.publish(events.EventFailed, key.String())
		return nil, err
	}

	e.value = value
	e.hasValue = true
	e.err = nil
	e.status = StatusIdle
	e.lastFetchedAt = c.now()
	// an invalidation that landed mid-flight keeps the entry stale so the
	// next fetch sees the newer data
	e.stale = e.generation != gen

	c.logger.Debug("cache load complete",
		"key", key.String(),
		"duration", c.now().Sub(start),
		"stale", e.stale)
	c.publish(events.EventUpdated, key.String())
	return value, nil
}

// Invalidate marks entries stale. Current values stay readable through Peek
// until the next successful fetch replaces them.
func (c *Cache) Invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		e, ok := c.entries[key]
		if !ok {
			continue
		}
		e.stale = true
		e.generation = c.nextGen()
		c.metrics.Invalidations.Add(1)
		c.publish(events.EventInvalidated, key.String())
	}
}

// Remove drops entries entirely. In-flight loads for them are discarded.
func (c *Cache) Remove(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		if _, ok := c.entries[key]; !ok {
			continue
		}
		delete(c.entries, key)
		c.publish(events.EventRemoved, key.String())
	}
}

// Clear drops every entry, used when the session identity changes
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[Key]*entry)
	c.publish(events.EventCleared, "")
}

// Peek returns a snapshot of key without fetching
func (c *Cache) Peek(key Key) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return Entry{}, false
	}
	return Entry{
		Value:         e.value,
		HasValue:      e.hasValue,
		Err:           e.err,
		Status:        e.status,
		Stale:         e.stale,
		LastFetchedAt: e.lastFetchedAt,
	}, true
}

// Metrics returns the cache counters
func (c *Cache) Metrics() MetricsSnapshot {
	return c.metrics.Snapshot()
}

// nextGen must be called with c.mu held
func (c *Cache) nextGen() uint64 {
	c.gen++
	return c.gen
}

// publish must be called with c.mu held
func (c *Cache) publish(t events.EventType, key string) {
	if c.publisher == nil {
		return
	}
	c.publisher.Publish(events.Event{Type: t, Key: key})
}

// Fetch is the typed form of Cache.Fetch
func Fetch[T any](ctx context.Context, c *Cache, key Key, loader func(context.Context) (T, error)) (T, error) {
	var zero T

	v, err := c.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return loader(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s holds %T", ErrTypeMismatch, key, v)
	}
	return typed, nil
}
