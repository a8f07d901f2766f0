package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestMemoryCache_GetSet(t *testing.T) {
	cache := NewMemoryCache(0, 0)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v"))

	val, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

func TestMemoryCache_EntriesExpireAfterTTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)}
	cache := newMemoryCache(time.Hour, 10, clock.Now)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v"))

	clock.Advance(59 * time.Minute)
	_, ok, _ := cache.Get(ctx, "k")
	assert.True(t, ok)

	clock.Advance(time.Minute)
	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, cache.Len(), "expired entry is dropped on read")
}

func TestMemoryCache_ZeroTTLNeverExpires(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)}
	cache := newMemoryCache(0, 10, clock.Now)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v"))
	clock.Advance(24 * 365 * time.Hour)

	_, ok, _ := cache.Get(ctx, "k")
	assert.True(t, ok)
}

func TestMemoryCache_CapEvictsOldest(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)}
	cache := newMemoryCache(0, 3, clock.Now)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		require.NoError(t, cache.Set(ctx, fmt.Sprintf("k%d", i), "v"))
		clock.Advance(time.Second)
	}

	assert.Equal(t, 3, cache.Len())
	for _, k := range []string{"k47", "k48", "k49"} {
		_, ok, _ := cache.Get(ctx, k)
		assert.True(t, ok, k)
	}
	_, ok, _ := cache.Get(ctx, "k0")
	assert.False(t, ok)
}

func TestMemoryCache_CapPrefersExpiredEntries(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)}
	cache := newMemoryCache(time.Minute, 2, clock.Now)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "old", "v"))
	clock.Advance(2 * time.Minute)
	require.NoError(t, cache.Set(ctx, "fresh", "v"))
	require.NoError(t, cache.Set(ctx, "newest", "v"))

	assert.Equal(t, 2, cache.Len())
	_, ok, _ := cache.Get(ctx, "fresh")
	assert.True(t, ok)
}

func TestMemoryCache_OverwriteAtCapKeepsOthers(t *testing.T) {
	cache := NewMemoryCache(0, 2)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", "1"))
	require.NoError(t, cache.Set(ctx, "b", "1"))
	require.NoError(t, cache.Set(ctx, "a", "2"))

	assert.Equal(t, 2, cache.Len())
	val, ok, _ := cache.Get(ctx, "a")
	assert.True(t, ok)
	assert.Equal(t, "2", val)
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := NewMemoryCache(time.Minute, 100)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i))
			_ = cache.Set(ctx, key, key)
			_, _, _ = cache.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, cache.Len())
}

func TestRedisCache_UnreachableServerIsAnError(t *testing.T) {
	cache := NewRedisCache("127.0.0.1:1", 0)
	defer cache.Close()

	_, ok, err := cache.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.False(t, ok)
}
