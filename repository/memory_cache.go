package repository

import (
	"context"
	"sync"
	"time"
)

// DefaultMemoryCacheEntries caps the in-process cache when no limit is configured.
const DefaultMemoryCacheEntries = 10_000

var _ CacheRepository = (*MemoryCache)(nil)

type memoryEntry struct {
	value     string
	storedAt  time.Time
	expiresAt time.Time // zero never expires
}

// MemoryCache is the in-process cache used when no Redis address is configured.
// Entries expire after ttl (zero keeps them) and the oldest entry is evicted
// once maxEntries is reached.
type MemoryCache struct {
	mu         sync.RWMutex
	data       map[string]memoryEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	return newMemoryCache(ttl, maxEntries, time.Now)
}

func newMemoryCache(ttl time.Duration, maxEntries int, now func() time.Time) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMemoryCacheEntries
	}
	return &MemoryCache{
		data:       make(map[string]memoryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        now,
	}
}

func (m *MemoryCache) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return "", false, nil
	}
	if m.expired(entry, m.now()) {
		m.mu.Lock()
		if cur, ok := m.data[key]; ok && m.expired(cur, m.now()) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", false, nil
	}
	return entry.value, true, nil
}

func (m *MemoryCache) Set(ctx context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if _, exists := m.data[key]; !exists && len(m.data) >= m.maxEntries {
		m.evictLocked(now)
	}

	entry := memoryEntry{value: value, storedAt: now}
	if m.ttl > 0 {
		entry.expiresAt = now.Add(m.ttl)
	}
	m.data[key] = entry
	return nil
}

// evictLocked drops expired entries, then the oldest one if still full.
func (m *MemoryCache) evictLocked(now time.Time) {
	for k, e := range m.data {
		if m.expired(e, now) {
			delete(m.data, k)
		}
	}
	if len(m.data) < m.maxEntries {
		return
	}

	var oldestKey string
	var oldest time.Time
	first := true
	for k, e := range m.data {
		if first || e.storedAt.Before(oldest) {
			oldestKey, oldest, first = k, e.storedAt, false
		}
	}
	delete(m.data, oldestKey)
}

func (m *MemoryCache) expired(e memoryEntry, now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
