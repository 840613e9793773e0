package api

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/yt-trends/internal/logger"
	"github.com/yt-trends/internal/models"
)

// Fetcher retrieves one region's videos. *YouTubeClient is the production
// implementation.
type Fetcher interface {
	FetchVideos(ctx context.Context, region string, maxResults int64, query string) (models.FetchResult, error)
}

// Aggregator serves fetch results through the TTL cache and merges
// multi-region fetches into one comparison result.
type Aggregator struct {
	fetcher Fetcher
	cache   *Cache
	group   singleflight.Group
}

// NewAggregator creates an aggregator around fetcher, reusing results from
// cache.
func NewAggregator(fetcher Fetcher, cache *Cache) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		cache:   cache,
	}
}

// FetchCached returns the cached result for the request tuple while it is
// fresh, fetching and storing a new one otherwise. Changing token forces a
// fresh fetch regardless of TTL. A failed fetch is never stored, so the next
// call retries the upstream.
func (a *Aggregator) FetchCached(ctx context.Context, region string, maxResults int64, query, token string) (models.FetchResult, error) {
	key := CacheKey(region, maxResults, query, token)

	if result, ok := a.cache.Get(key); ok {
		logger.GetLogger().WithField("key", key).Debug("cache hit")
		return result, nil
	}

	// Concurrent misses for the same key collapse into one upstream call.
	v, err, _ := a.group.Do(key, func() (any, error) {
		if result, ok := a.cache.Get(key); ok {
			return result, nil
		}

		logger.GetLogger().
			WithField("region", region).
			WithField("query", query).
			Info("fetching fresh videos")

		result, err := a.fetcher.FetchVideos(ctx, region, maxResults, query)
		if err != nil {
			return models.FetchResult{}, err
		}
		a.cache.Set(key, result)
		return result, nil
	})
	if err != nil {
		return models.FetchResult{}, err
	}
	return v.(models.FetchResult), nil
}

// FetchRegions runs one cached fetch per requested region concurrently, tags
// each video with its source region, and merges everything into a single
// sorted comparison result. Regions fail independently: one region's error
// is recorded in Failures without disturbing the others. Videos are
// concatenated in request order before sorting, so the output never depends
// on which region's fetch finished first.
func (a *Aggregator) FetchRegions(ctx context.Context, regions []string, maxResults int64, query, token string, sortBy models.VideoSortOption) models.MultiRegionResult {
	results := make([]models.FetchResult, len(regions))
	errs := make([]error, len(regions))

	var wg sync.WaitGroup
	for i, region := range regions {
		wg.Add(1)
		go func(i int, region string) {
			defer wg.Done()
			results[i], errs[i] = a.FetchCached(ctx, region, maxResults, query, token)
		}(i, region)
	}
	wg.Wait()

	merged := models.MultiRegionResult{
		StatsByRegion: make(map[string]models.RegionStats),
		Failures:      make(map[string]error),
	}

	for i, region := range regions {
		if errs[i] != nil {
			logger.GetLogger().
				WithField("region", region).
				WithField("error", errs[i]).
				Warn("region fetch failed")
			merged.Failures[region] = errs[i]
			continue
		}
		// Stamp the region onto copies; the cached records stay untouched.
		for _, video := range results[i].Videos {
			video.Region = region
			merged.Videos = append(merged.Videos, video)
		}
		if results[i].Stats != nil {
			merged.StatsByRegion[region] = *results[i].Stats
		}
	}

	models.SortVideos(merged.Videos, sortBy)
	return merged
}
