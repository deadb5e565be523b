package photo

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ComputeFunc produces the metadata record for a path. It must be total;
// see Extractor.Extract.
type ComputeFunc func(ctx context.Context, path string) Record

// Cache memoizes metadata records by image path for the lifetime of a
// session. Entries are written once and never evicted; a session touches at
// most the number of discovered files.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Record
	group   singleflight.Group
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]Record),
	}
}

// Get returns the cached record for path, if any.
func (c *Cache) Get(path string) (Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.entries[path]
	return rec, ok
}

// Put stores the record for path. The first write wins.
func (c *Cache) Put(path string, rec Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[path]; ok {
		return
	}
	c.entries[path] = rec
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// GetOrCompute returns the cached record for path, computing and storing it
// on first use. Concurrent callers for the same uncached path share a single
// computation; callers for unrelated paths proceed in parallel.
func (c *Cache) GetOrCompute(ctx context.Context, path string, compute ComputeFunc) Record {
	if rec, ok := c.Get(path); ok {
		return rec
	}

	v, _, _ := c.group.Do(path, func() (interface{}, error) {
		if rec, ok := c.Get(path); ok {
			return rec, nil
		}
		rec := compute(ctx, path)
		c.Put(path, rec)
		return rec, nil
	})
	return v.(Record)
}
