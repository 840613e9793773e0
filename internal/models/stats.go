package models

// RegionStats aggregates the videos of one (region, query) fetch.
type RegionStats struct {
	TotalViews    int64   `json:"totalViews"`
	TotalLikes    int64   `json:"totalLikes"`
	TotalComments int64   `json:"totalComments"`
	VideoCount    int     `json:"videoCount"`
	AvgViews      float64 `json:"avgViews"`
	AvgLikes      float64 `json:"avgLikes"`
	AvgComments   float64 `json:"avgComments"`
}

// FetchResult pairs one fetch call's videos with their aggregate stats.
// Stats is nil exactly when Videos is empty: a fetch with no matches carries
// no stats object at all rather than a zero-filled one.
type FetchResult struct {
	Videos []Video      `json:"videos"`
	Stats  *RegionStats `json:"stats,omitempty"`
}

// MultiRegionResult merges several regions' fetches for comparison. Videos
// holds every region's records tagged with their source region, concatenated
// in request order and then sorted by the caller's key. StatsByRegion has an
// entry only for regions that returned at least one video. Failures records
// each region whose fetch errored; a failed region never blocks the others.
type MultiRegionResult struct {
	Videos        []Video                `json:"videos"`
	StatsByRegion map[string]RegionStats `json:"statsByRegion"`
	Failures      map[string]error       `json:"-"`
}
