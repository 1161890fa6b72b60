// Package query implements the client-side read-through cache and the
// mutation runner that keeps it consistent. Queries are cached under keys
// built from the resource name and its parameters; mutations declare which
// key prefixes become stale on completion, and the next read under a stale
// key refetches.
package query

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Key identifies a cached query: the resource name followed by its
// normalized parameters, e.g. "items/full=false/status=SUBMITTED".
type Key string

// NewKey joins the resource name and its parameters into a Key.
func NewKey(parts ...string) Key {
	return Key(strings.Join(parts, "/"))
}

// matches reports whether k equals prefix or lies under it.
func (k Key) matches(prefix Key) bool {
	return k == prefix || strings.HasPrefix(string(k), string(prefix)+"/")
}

type entry struct {
	value any
	stale bool
}

// Cache is the shared query cache. It is read by many components and
// written only through fetch completions and Invalidate; there is no
// optimistic write path.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]*entry
}

func NewCache() *Cache {
	return &Cache{entries: make(map[Key]*entry)}
}

// lookup returns the cached value when present and fresh.
func (c *Cache) lookup(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || e.stale {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) store(key Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &entry{value: value}
}

// Invalidate marks every entry at or under each prefix stale, so the next
// Fetch under those keys goes back to the backend.
func (c *Cache) Invalidate(prefixes ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		for _, prefix := range prefixes {
			if key.matches(prefix) {
				e.stale = true
				break
			}
		}
	}
}

// Clear drops everything. Used on logout so no cached admin data survives
// the session.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]*entry)
}

// Fetch returns the cached value for key, or runs fetch and caches its
// result. A failed fetch caches nothing. Two concurrent fetches for the same
// key may both hit the backend; the later store wins, which is acceptable
// because fetches for one key are idempotent reads.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	if v, ok := c.lookup(key); ok {
		typed, ok := v.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("cache entry %q holds %T", key, v)
		}
		return typed, nil
	}

	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.store(key, v)
	return v, nil
}
