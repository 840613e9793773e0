package models

import "sort"

// Video is one normalized record from a trending or search fetch. Region is
// stamped on by the caller that requested it, not by the fetch itself.
type Video struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	Views       int64  `json:"views"`
	Likes       int64  `json:"likes"`
	Comments    int64  `json:"comments"`
	Thumbnail   string `json:"thumbnailUrl"`
	PublishedAt string `json:"publishedAt"`
	Region      string `json:"region"`
}

// Thumbnail is a single rendition inside the API's thumbnails object.
type Thumbnail struct {
	URL string `json:"url"`
}

// ThumbnailSet holds the renditions the API returns per video.
type ThumbnailSet struct {
	Default Thumbnail `json:"default"`
	Medium  Thumbnail `json:"medium"`
	High    Thumbnail `json:"high"`
}

// VideoListResponse represents the response from the YouTube videos endpoint
type VideoListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title        string       `json:"title"`
			ChannelTitle string       `json:"channelTitle"`
			PublishedAt  string       `json:"publishedAt"`
			Thumbnails   ThumbnailSet `json:"thumbnails"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// SearchListResponse represents the response from the YouTube search endpoint
type SearchListResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

// VideoSortOption represents the available sorting options
type VideoSortOption string

const (
	SortByViews    VideoSortOption = "views"
	SortByLikes    VideoSortOption = "likes"
	SortByComments VideoSortOption = "comments"
	SortByNewest   VideoSortOption = "newest"
	SortByOldest   VideoSortOption = "oldest"
)

// ParseSortOption maps a request parameter onto a sort option, defaulting to
// views for anything unrecognized.
func ParseSortOption(s string) VideoSortOption {
	switch option := VideoSortOption(s); option {
	case SortByViews, SortByLikes, SortByComments, SortByNewest, SortByOldest:
		return option
	default:
		return SortByViews
	}
}

// SortVideos orders videos in place by the chosen key. Every key sorts
// descending except SortByOldest. The sort is stable, so tied entries keep
// their original relative order. Publication keys compare the raw RFC3339
// strings, which order chronologically; records without a timestamp sort
// after dated ones under SortByNewest and before them under SortByOldest.
func SortVideos(videos []Video, sortBy VideoSortOption) {
	switch sortBy {
	case SortByLikes:
		sort.SliceStable(videos, func(i, j int) bool {
			return videos[i].Likes > videos[j].Likes
		})
	case SortByComments:
		sort.SliceStable(videos, func(i, j int) bool {
			return videos[i].Comments > videos[j].Comments
		})
	case SortByNewest:
		sort.SliceStable(videos, func(i, j int) bool {
			return videos[i].PublishedAt > videos[j].PublishedAt
		})
	case SortByOldest:
		sort.SliceStable(videos, func(i, j int) bool {
			return videos[i].PublishedAt < videos[j].PublishedAt
		})
	default:
		sort.SliceStable(videos, func(i, j int) bool {
			return videos[i].Views > videos[j].Views
		})
	}
}
