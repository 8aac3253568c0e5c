package api

import (
	"os"
	"strconv"
	"sync"

	"github.com/kickoff/kickoff/pkg/league"
)

// LeagueCache is a thread-safe LRU cache for loaded league graphs,
// keyed by the dataset's league snapshot ID.
type LeagueCache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*cacheEntry
	order   []string // oldest first
}

type cacheEntry struct {
	l *league.League
}

// NewLeagueCache creates a cache with the given maximum number of entries.
// If maxSize <= 0, it defaults to 10.
func NewLeagueCache(maxSize int) *LeagueCache {
	if maxSize <= 0 {
		maxSize = 10
	}
	return &LeagueCache{
		maxSize: maxSize,
		entries: make(map[string]*cacheEntry),
	}
}

// NewLeagueCacheFromEnv creates a cache with size from LEAGUE_CACHE_SIZE env var.
func NewLeagueCacheFromEnv() *LeagueCache {
	size := 10
	if v := os.Getenv("LEAGUE_CACHE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			size = parsed
		}
	}
	return NewLeagueCache(size)
}

// Get retrieves a league from the cache, or nil if not found.
func (c *LeagueCache) Get(id string) *league.League {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[id]
	if !ok {
		return nil
	}

	// Move to end (most recently used)
	c.moveToEnd(id)
	return entry.l
}

// Put adds a league to the cache, evicting the oldest if full.
func (c *LeagueCache) Put(id string, l *league.League) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[id]; ok {
		c.entries[id] = &cacheEntry{l: l}
		c.moveToEnd(id)
		return
	}

	// Evict oldest if at capacity
	for len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[id] = &cacheEntry{l: l}
	c.order = append(c.order, id)
}

func (c *LeagueCache) moveToEnd(id string) {
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, id)
			return
		}
	}
}
