package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yt-trends/internal/models"
)

func TestCacheKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		k1 := CacheKey("KR", 10, "lofi", "t1")
		k2 := CacheKey("KR", 10, "lofi", "t1")
		assert.Equal(t, k1, k2)
	})

	t.Run("every tuple part matters", func(t *testing.T) {
		base := CacheKey("KR", 10, "lofi", "t1")
		assert.NotEqual(t, base, CacheKey("US", 10, "lofi", "t1"))
		assert.NotEqual(t, base, CacheKey("KR", 20, "lofi", "t1"))
		assert.NotEqual(t, base, CacheKey("KR", 10, "jazz", "t1"))
		assert.NotEqual(t, base, CacheKey("KR", 10, "lofi", "t2"))
	})

	t.Run("query is trimmed", func(t *testing.T) {
		assert.Equal(t, CacheKey("KR", 10, "lofi", "t1"), CacheKey("KR", 10, "  lofi ", "t1"))
	})
}

func TestCacheMissThenHit(t *testing.T) {
	cache := NewCache(DefaultCacheTTL)
	key := CacheKey("KR", 10, "", "")

	_, ok := cache.Get(key)
	require.False(t, ok)

	stored := models.FetchResult{
		Videos: []models.Video{{ID: "v1", Views: 7}},
		Stats:  &models.RegionStats{TotalViews: 7, VideoCount: 1, AvgViews: 7},
	}
	cache.Set(key, stored)

	got, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, stored, got)

	hits, misses := cache.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
}

func TestCacheExpiry(t *testing.T) {
	cache := NewCache(10 * time.Millisecond)
	key := CacheKey("KR", 10, "", "")

	cache.Set(key, models.FetchResult{Videos: []models.Video{{ID: "v1"}}})
	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Get(key)
	assert.False(t, ok, "stale entries must miss")
	assert.Equal(t, 0, cache.Len(), "stale entries are deleted at lookup")
}

func TestCacheFreshWithinTTL(t *testing.T) {
	cache := NewCache(time.Minute)
	key := CacheKey("US", 5, "cats", "tok")

	cache.Set(key, models.FetchResult{Videos: []models.Video{{ID: "v1"}}})

	_, ok := cache.Get(key)
	assert.True(t, ok)
	assert.Equal(t, 1, cache.Len())
}
