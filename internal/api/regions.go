package api

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/yt-trends/internal/logger"
	"github.com/yt-trends/internal/models"
)

// RegionDirectory lists the regions offered for trending selection, backed
// by the YouTube i18nRegions endpoint.
type RegionDirectory struct {
	service *youtube.Service

	mu     sync.Mutex
	cached []models.Region
}

// NewRegionDirectory creates a directory using the official API client.
func NewRegionDirectory(apiKey string) (*RegionDirectory, error) {
	ctx := context.Background()
	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &RegionDirectory{service: service}, nil
}

// ListRegions returns the regions YouTube serves trending charts for. The
// upstream listing is fetched once and kept for the process lifetime; while
// it is unavailable the built-in set is served and the next call retries.
func (d *RegionDirectory) ListRegions(ctx context.Context) []models.Region {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cached != nil {
		return d.cached
	}

	response, err := d.service.I18nRegions.List([]string{"snippet"}).Hl("en").Context(ctx).Do()
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("region listing unavailable, serving built-in set")
		return models.DefaultRegions
	}

	var regions []models.Region
	for _, item := range response.Items {
		if item.Snippet == nil {
			continue
		}
		regions = append(regions, models.Region{
			Code: item.Snippet.Gl,
			Name: item.Snippet.Name,
		})
	}
	if len(regions) == 0 {
		return models.DefaultRegions
	}

	d.cached = regions
	return regions
}
