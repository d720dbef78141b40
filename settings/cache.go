package settings

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"morse_translator/codec"
)

type CacheKey struct {
	Config    codec.Config
	Direction codec.Direction
	Input     string
}

type CacheEntry struct {
	Output    string
	Direction codec.Direction
	StoredAt  time.Time
}

// Cache keeps translation results for a fixed time. It holds at most
// maxEntries results, the oldest is evicted first, and inputs longer than
// maxInput bytes are never stored. A zero ttl or maxEntries disables it.
type Cache struct {
	ttl        time.Duration
	maxEntries int
	maxInput   int
	now        func() time.Time

	mu      sync.Mutex
	entries map[CacheKey]*CacheEntry
}

func NewCache(ttl time.Duration, maxEntries, maxInput int) *Cache {
	return &Cache{
		ttl:        ttl,
		maxEntries: maxEntries,
		maxInput:   maxInput,
		now:        time.Now,
		entries:    make(map[CacheKey]*CacheEntry),
	}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.ttl > 0 && c.maxEntries > 0
}

func (c *Cache) Probe(key CacheKey) (*CacheEntry, bool) {
	if !c.Enabled() {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.StoredAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	logrus.WithFields(logrus.Fields{
		"action":    "probe_cache",
		"direction": entry.Direction.String(),
		"length":    len(key.Input),
	}).Debug("Returned from cache")
	return entry, true
}

// Save stores a result and reports whether it was kept.
func (c *Cache) Save(key CacheKey, output string, d codec.Direction) bool {
	if !c.Enabled() || len(key.Input) > c.maxInput {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxEntries {
		c.evictOldest()
	}
	c.entries[key] = &CacheEntry{
		Output:    output,
		Direction: d,
		StoredAt:  c.now(),
	}
	return true
}

// evictOldest drops the entry stored first. c.mu must be held.
func (c *Cache) evictOldest() {
	var oldestKey CacheKey
	var oldest *CacheEntry
	for key, entry := range c.entries {
		if oldest == nil || entry.StoredAt.Before(oldest.StoredAt) {
			oldestKey, oldest = key, entry
		}
	}
	if oldest != nil {
		delete(c.entries, oldestKey)
		logrus.WithField("action", "evict_cache").WithField("length", len(oldestKey.Input)).Debug("Evicted from cache")
	}
}

// Sweep drops expired entries and returns how many were removed.
func (c *Cache) Sweep() int {
	if !c.Enabled() {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if c.now().Sub(entry.StoredAt) > c.ttl {
			delete(c.entries, key)
			removed++
		}
	}
	if removed > 0 {
		logrus.WithField("action", "sweep_cache").WithField("removed", removed).Debug("Swept cache")
	}
	return removed
}

func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
