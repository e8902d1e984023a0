package scrape

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultCacheMaxAge is how long a cached search result stays valid.
const DefaultCacheMaxAge = 7 * 24 * time.Hour

type cacheEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Results   []string  `json:"results"`
}

// SearchCache persists search results keyed by the literal query
// string. The backing file is read on open and rewritten wholesale
// (temp file + rename) on every put; a corrupt or missing file behaves
// as an empty cache, never as an error.
type SearchCache struct {
	path   string
	maxAge time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
}

func NewSearchCache(path string, maxAge time.Duration) *SearchCache {
	if maxAge <= 0 {
		maxAge = DefaultCacheMaxAge
	}
	c := &SearchCache{
		path:    path,
		maxAge:  maxAge,
		entries: map[string]cacheEntry{},
	}
	c.load()
	return c
}

func (c *SearchCache) load() {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, &c.entries); err != nil {
		log.Printf("search cache %s unreadable, starting empty: %v", c.path, err)
		c.entries = map[string]cacheEntry{}
	}
}

// Get returns the cached results for query, or ok=false when the query
// is unknown or the entry is older than the max age.
func (c *SearchCache) Get(query string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, found := c.entries[query]
	if !found {
		return nil, false
	}
	if time.Since(entry.Timestamp) >= c.maxAge {
		return nil, false
	}
	return entry.Results, true
}

// Put stores results for query and flushes the whole cache to disk.
// Write failures are logged, not returned: losing the cache only costs
// a repeated search.
func (c *SearchCache) Put(query string, results []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[query] = cacheEntry{Timestamp: time.Now(), Results: results}
	if err := c.flush(); err != nil {
		log.Printf("failed to persist search cache: %v", err)
	}
}

func (c *SearchCache) flush() error {
	if c.path == "" {
		return nil
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cache dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cache: %w", err)
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return os.Rename(tmp, c.path)
}
