package navigation

import (
	"time"

	"github.com/lixenwraith/pellet-run/core"
)

// pathKey identifies a cached query by its endpoints
type pathKey struct {
	start, end core.Point
}

// pathEntry memoizes one result, including negative ("no path") outcomes
type pathEntry struct {
	path       []core.Point
	reachable  bool
	insertedAt time.Time
}

// PathCache is a bounded (start, end) → path memo with TTL expiry.
// Capacity eviction drops the oldest-inserted entry; expiry is checked on
// lookup independently of eviction. Not safe for concurrent use; the
// simulation is single-threaded.
type PathCache struct {
	capacity int
	ttl      time.Duration
	entries  map[pathKey]pathEntry
	order    []pathKey // Insertion order for eviction

	hits   uint64
	misses uint64
}

// NewPathCache creates a cache holding up to capacity entries for ttl each
func NewPathCache(capacity int, ttl time.Duration) *PathCache {
	return &PathCache{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[pathKey]pathEntry, capacity),
		order:    make([]pathKey, 0, capacity),
	}
}

// Lookup returns the memoized result for (start, end) when present and
// inside the TTL window. found=false counts as a miss.
func (c *PathCache) Lookup(start, end core.Point, now time.Time) (path []core.Point, reachable, found bool) {
	key := pathKey{start: start, end: end}
	e, ok := c.entries[key]
	if !ok || now.Sub(e.insertedAt) > c.ttl {
		c.misses++
		return nil, false, false
	}
	c.hits++
	return e.path, e.reachable, true
}

// Insert memoizes a result, evicting the oldest-inserted entry when the
// cache is at capacity and the key is new
func (c *PathCache) Insert(start, end core.Point, path []core.Point, reachable bool, now time.Time) {
	key := pathKey{start: start, end: end}

	if _, exists := c.entries[key]; !exists {
		if len(c.entries) >= c.capacity && len(c.order) > 0 {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}

	c.entries[key] = pathEntry{path: path, reachable: reachable, insertedAt: now}
}

// Clear drops every entry; the hit and miss counters survive a clear
func (c *PathCache) Clear() {
	c.entries = make(map[pathKey]pathEntry, c.capacity)
	c.order = c.order[:0]
}

// Len returns the current entry count
func (c *PathCache) Len() int {
	return len(c.entries)
}

// Hits returns cumulative lookup hits
func (c *PathCache) Hits() uint64 {
	return c.hits
}

// Misses returns cumulative lookup misses
func (c *PathCache) Misses() uint64 {
	return c.misses
}
