package templet

import (
	"sync"
	"time"
)

// TemplateCache stores compiled templates keyed by filename. It is a
// capability interface injected into the Engine so callers choose the
// backing policy; there is no package-global cache.
//
// Entries are never invalidated when the underlying file changes. A
// cached template can therefore go stale; this is deliberate, documented
// behavior, not a defect. Concurrent recompiles of the same key may
// overwrite each other with equivalent results, which is acceptable.
type TemplateCache interface {
	// Get returns the cached template for key, if present.
	Get(key string) (*Template, bool)

	// Set stores a compiled template under key.
	Set(key string, tmpl *Template)

	// Clear drops every entry.
	Clear()
}

// MemoryTemplateCache is an unbounded in-memory TemplateCache. It is the
// engine default.
type MemoryTemplateCache struct {
	mu      sync.RWMutex
	entries map[string]*Template
}

// NewMemoryTemplateCache creates an empty unbounded cache
func NewMemoryTemplateCache() *MemoryTemplateCache {
	return &MemoryTemplateCache{
		entries: make(map[string]*Template),
	}
}

// Get returns the cached template for key, if present.
func (c *MemoryTemplateCache) Get(key string) (*Template, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tmpl, ok := c.entries[key]
	return tmpl, ok
}

// Set stores a compiled template under key.
func (c *MemoryTemplateCache) Set(key string, tmpl *Template) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = tmpl
}

// Clear drops every entry.
func (c *MemoryTemplateCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*Template)
}

// Len returns the number of cached templates.
func (c *MemoryTemplateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// lruEntry tracks a cached template with its last access time
type lruEntry struct {
	tmpl       *Template
	accessedAt time.Time
}

// LRUTemplateCache is a bounded TemplateCache. When the entry count
// exceeds MaxEntries, the least recently accessed entries are evicted.
type LRUTemplateCache struct {
	mu         sync.Mutex
	maxEntries int
	entries    map[string]*lruEntry
}

// DefaultLRUMaxEntries is the eviction threshold used for a zero MaxEntries
const DefaultLRUMaxEntries = 1000

// NewLRUTemplateCache creates a bounded cache evicting least recently
// accessed entries beyond maxEntries (0 means DefaultLRUMaxEntries).
func NewLRUTemplateCache(maxEntries int) *LRUTemplateCache {
	if maxEntries <= 0 {
		maxEntries = DefaultLRUMaxEntries
	}
	return &LRUTemplateCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*lruEntry),
	}
}

// Get returns the cached template for key, if present, refreshing its
// access time.
func (c *LRUTemplateCache) Get(key string) (*Template, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	entry.accessedAt = time.Now()
	return entry.tmpl, true
}

// Set stores a compiled template under key, evicting the least recently
// accessed entry when the cache is full.
func (c *LRUTemplateCache) Set(key string, tmpl *Template) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictOldest()
	}
	c.entries[key] = &lruEntry{tmpl: tmpl, accessedAt: time.Now()}
}

// Clear drops every entry.
func (c *LRUTemplateCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*lruEntry)
}

// Len returns the number of cached templates.
func (c *LRUTemplateCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest removes the least recently accessed entry. Caller holds the lock.
func (c *LRUTemplateCache) evictOldest() {
	var oldestKey string
	var oldestTime time.Time
	first := true
	for key, entry := range c.entries {
		if first || entry.accessedAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.accessedAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
