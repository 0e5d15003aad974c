package texture

import (
	"fmt"
	"sync"
)

// Resolver resolves a texture name to a decoded texture.
type Resolver interface {
	Resolve(texName string) (*Decoded, error)
}

// Cache is a concurrency-safe texture cache. Decode failures are cached too
// so a bad file is only read once per run.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
	load  func(path string) (*Decoded, error)
}

type cacheEntry struct {
	tex *Decoded
	err error
}

// NewCache creates a new texture cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
		load:  LoadTexture,
	}
}

// Resolve loads and caches a texture by name.
func (c *Cache) Resolve(texName string) (*Decoded, error) {
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		return nil, fmt.Errorf("texture: %q not found in index", texName)
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.tex, entry.err
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	tex, err := c.load(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry.tex, entry.err
	}
	c.items[path] = &cacheEntry{tex: tex, err: err}
	return tex, err
}
