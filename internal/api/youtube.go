package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yt-trends/internal/logger"
	"github.com/yt-trends/internal/models"
)

const (
	youtubeAPIBaseURL = "https://www.googleapis.com/youtube/v3"

	// requestTimeout bounds every upstream HTTP call.
	requestTimeout = 15 * time.Second

	noTitle       = "(no title)"
	noChannelInfo = "(no channel info)"
)

// UpstreamError reports a failed YouTube API call: a non-2xx response or a
// network-level failure such as a timeout. StatusCode is 0 when no response
// arrived. Body holds the API's error payload, parsed JSON when possible and
// raw text otherwise.
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("YouTube API request failed: %v", e.Err)
	}
	return fmt.Sprintf("YouTube API error: HTTP %d - %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// YouTubeClient handles direct HTTP requests to the YouTube Data API
type YouTubeClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewYouTubeClient creates a new YouTube client
func NewYouTubeClient(apiKey string) *YouTubeClient {
	return &YouTubeClient{
		apiKey:  apiKey,
		baseURL: youtubeAPIBaseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// FetchVideos returns one region's videos together with their aggregate
// stats. A non-empty query searches for matching videos and hydrates their
// details in a second call; an empty query fetches the region's mostPopular
// chart directly. A search with zero matches is a valid empty result, not an
// error, and skips the details call entirely.
func (c *YouTubeClient) FetchVideos(ctx context.Context, region string, maxResults int64, query string) (models.FetchResult, error) {
	query = strings.TrimSpace(query)

	logger.GetLogger().
		WithField("region", region).
		WithField("query", query).
		Debug("fetching videos from YouTube")

	var listing models.VideoListResponse
	if query != "" {
		ids, err := c.searchVideoIDs(ctx, region, maxResults, query)
		if err != nil {
			return models.FetchResult{}, err
		}
		if len(ids) == 0 {
			return models.FetchResult{}, nil
		}
		if err := c.getJSON(ctx, "/videos", url.Values{
			"part": {"snippet,statistics"},
			"id":   {strings.Join(ids, ",")},
		}, &listing); err != nil {
			return models.FetchResult{}, err
		}
	} else {
		if err := c.getJSON(ctx, "/videos", url.Values{
			"part":       {"snippet,statistics"},
			"chart":      {"mostPopular"},
			"maxResults": {strconv.FormatInt(maxResults, 10)},
			"regionCode": {region},
		}, &listing); err != nil {
			return models.FetchResult{}, err
		}
	}

	return buildResult(listing), nil
}

// searchVideoIDs runs the region-scoped search call and collects the matched
// video IDs, one page only.
func (c *YouTubeClient) searchVideoIDs(ctx context.Context, region string, maxResults int64, query string) ([]string, error) {
	var response models.SearchListResponse
	if err := c.getJSON(ctx, "/search", url.Values{
		"part":       {"snippet"},
		"q":          {query},
		"type":       {"video"},
		"maxResults": {strconv.FormatInt(maxResults, 10)},
		"regionCode": {region},
	}, &response); err != nil {
		return nil, err
	}

	var ids []string
	for _, item := range response.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	return ids, nil
}

// getJSON issues one API request and decodes the response body into out.
func (c *YouTubeClient) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UpstreamError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &UpstreamError{StatusCode: resp.StatusCode, Body: errorBody(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorBody compacts a JSON error payload, falling back to the raw response
// text when the body is not valid JSON.
func errorBody(body []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err == nil {
		return buf.String()
	}
	return strings.TrimSpace(string(body))
}

// buildResult normalizes the listing into video records, accumulating the
// totals in the same pass. Averages are computed only when at least one video
// came back; an empty listing yields a result with no stats object.
func buildResult(listing models.VideoListResponse) models.FetchResult {
	var videos []models.Video
	var totalViews, totalLikes, totalComments int64

	for _, item := range listing.Items {
		video := models.Video{
			ID:          item.ID,
			Title:       item.Snippet.Title,
			Channel:     item.Snippet.ChannelTitle,
			Views:       parseCount(item.Statistics.ViewCount),
			Likes:       parseCount(item.Statistics.LikeCount),
			Comments:    parseCount(item.Statistics.CommentCount),
			Thumbnail:   pickThumbnail(item.Snippet.Thumbnails),
			PublishedAt: item.Snippet.PublishedAt,
		}
		if video.Title == "" {
			video.Title = noTitle
		}
		if video.Channel == "" {
			video.Channel = noChannelInfo
		}

		totalViews += video.Views
		totalLikes += video.Likes
		totalComments += video.Comments
		videos = append(videos, video)
	}

	if len(videos) == 0 {
		return models.FetchResult{}
	}

	count := len(videos)
	return models.FetchResult{
		Videos: videos,
		Stats: &models.RegionStats{
			TotalViews:    totalViews,
			TotalLikes:    totalLikes,
			TotalComments: totalComments,
			VideoCount:    count,
			AvgViews:      float64(totalViews) / float64(count),
			AvgLikes:      float64(totalLikes) / float64(count),
			AvgComments:   float64(totalComments) / float64(count),
		},
	}
}

// parseCount reads one of the API's string-encoded counters. Missing or
// malformed values count as zero rather than failing the whole batch.
func parseCount(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// pickThumbnail selects the display URL by preference: high, then medium,
// then default, then empty.
func pickThumbnail(t models.ThumbnailSet) string {
	switch {
	case t.High.URL != "":
		return t.High.URL
	case t.Medium.URL != "":
		return t.Medium.URL
	default:
		return t.Default.URL
	}
}
