package repository

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type cacheEntry struct {
	value   string
	expires time.Time
}

// MemoryCache is a process-local CacheRepository. It holds at most size
// entries and evicts anything older than maxTTL in the background.
type MemoryCache struct {
	lru *expirable.LRU[string, cacheEntry]
	now func() time.Time
}

// NewMemoryCache creates a cache of size entries; a size of 0 is unbounded.
func NewMemoryCache(size int, maxTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		lru: expirable.NewLRU[string, cacheEntry](size, nil, maxTTL),
		now: time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	e, ok := m.lru.Get(key)
	if !ok {
		return "", false
	}
	if !e.expires.IsZero() && !m.now().Before(e.expires) {
		m.lru.Remove(key)
		return "", false
	}
	return e.value, true
}

// Set stores value for ttl, capped at the cache's maxTTL. A zero ttl uses
// maxTTL alone.
func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	e := cacheEntry{value: value}
	if ttl > 0 {
		e.expires = m.now().Add(ttl)
	}
	m.lru.Add(key, e)
	return nil
}

// Len reports the number of entries not yet evicted.
func (m *MemoryCache) Len() int {
	return m.lru.Len()
}
