package dyckpath

import "sync"

// CacheStats is a snapshot of BoxCache activity.
type CacheStats struct {
	Hits   uint64 // lookups answered from the memo
	Misses uint64 // lookups that computed BoxesUnderPath
	Size   int    // distinct paths stored
}

// BoxCache memoizes BoxesUnderPath by the exact path value.
// Entries are never evicted. A BoxCache is safe for concurrent use: reads
// share muBoxes, inserts take it exclusively.
//
// The zero value is not usable; construct with NewBoxCache.
type BoxCache struct {
	muBoxes sync.RWMutex      // guards boxes and the counters
	boxes   map[string]BoxSet // Path.Key → boxes under that path
	hits    uint64
	misses  uint64
}

// NewBoxCache returns an empty cache.
func NewBoxCache() *BoxCache {
	return &BoxCache{boxes: make(map[string]BoxSet)}
}

// Boxes returns BoxesUnderPath(path), storing it once per distinct path.
// Concurrent first lookups of the same path may both compute; the first
// stored value wins. The returned BoxSet is immutable and may be shared.
//
// Steps:
//  1. Look up Path.Key under the read lock.
//  2. On a miss compute outside any lock.
//  3. Store under the write lock unless a racing writer got there first.
//
// Complexity: O(n) for the key plus O(|boxes|·log|boxes|) on a miss.
func (c *BoxCache) Boxes(path []int) BoxSet {
	key := Path(path).Key()

	// 1) fast path
	c.muBoxes.RLock()
	set, ok := c.boxes[key]
	c.muBoxes.RUnlock()
	if ok {
		c.muBoxes.Lock()
		c.hits++
		c.muBoxes.Unlock()
		return set
	}

	// 2) compute without holding the lock
	computed := BoxesUnderPath(path)

	// 3) publish
	c.muBoxes.Lock()
	defer c.muBoxes.Unlock()
	if existing, ok := c.boxes[key]; ok {
		c.hits++
		return existing
	}
	c.boxes[key] = computed
	c.misses++

	return computed
}

// Stats returns a snapshot of hit/miss counters and the number of entries.
func (c *BoxCache) Stats() CacheStats {
	c.muBoxes.RLock()
	defer c.muBoxes.RUnlock()

	return CacheStats{Hits: c.hits, Misses: c.misses, Size: len(c.boxes)}
}

// Len returns the number of distinct paths stored.
func (c *BoxCache) Len() int {
	c.muBoxes.RLock()
	defer c.muBoxes.RUnlock()

	return len(c.boxes)
}
