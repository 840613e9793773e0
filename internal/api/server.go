package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yt-trends/internal/config"
	"github.com/yt-trends/internal/logger"
	"github.com/yt-trends/internal/models"
)

// Server represents the API server
type Server struct {
	router        *gin.Engine
	aggregator    *Aggregator
	regions       *RegionDirectory
	cache         *Cache
	defaultRegion string
}

// NewServer creates a new API server wired to the YouTube client, the fetch
// cache, and the region directory.
func NewServer(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	router := gin.Default()

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	cache := NewCache(DefaultCacheTTL)

	directory, err := NewRegionDirectory(cfg.YouTubeAPIKey)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("region directory unavailable, serving built-in set")
		directory = nil
	}

	server := &Server{
		router:        router,
		aggregator:    NewAggregator(NewYouTubeClient(cfg.YouTubeAPIKey), cache),
		regions:       directory,
		cache:         cache,
		defaultRegion: cfg.DefaultRegion,
	}

	// Setup routes
	server.setupRoutes()

	return server, nil
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.health)

	// Region directory
	s.router.GET("/api/regions", s.listRegions)

	// Trending endpoints
	s.router.GET("/api/videos/trending", s.getTrending)
	s.router.GET("/api/videos/trending/:region", s.getRegionTrending)
}

// health reports liveness plus the cache counters.
func (s *Server) health(c *gin.Context) {
	hits, misses := s.cache.Stats()
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"cacheHits":   hits,
		"cacheMisses": misses,
	})
}

// listRegions handles requests for the selectable region directory
func (s *Server) listRegions(c *gin.Context) {
	if s.regions == nil {
		c.JSON(http.StatusOK, models.DefaultRegions)
		return
	}
	c.JSON(http.StatusOK, s.regions.ListRegions(c.Request.Context()))
}

// getTrending handles the multi-region comparison fetch. Regions that fail
// are reported per-region; the response succeeds as long as any region does.
func (s *Server) getTrending(c *gin.Context) {
	regions := parseRegions(c.Query("regions"), s.defaultRegion)
	maxResults := parseMaxResults(c.Query("maxResults"))
	query := c.Query("q")
	token := c.Query("refresh")
	sortBy := models.ParseSortOption(c.Query("sortBy"))

	result := s.aggregator.FetchRegions(c.Request.Context(), regions, maxResults, query, token, sortBy)

	failures := make(map[string]string)
	for region, err := range result.Failures {
		failures[region] = err.Error()
	}

	if len(result.Failures) == len(regions) {
		c.JSON(http.StatusBadGateway, gin.H{"failures": failures})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"videos":        result.Videos,
		"statsByRegion": result.StatsByRegion,
		"failures":      failures,
	})
}

// getRegionTrending handles a single region's fetch
func (s *Server) getRegionTrending(c *gin.Context) {
	region := strings.ToUpper(c.Param("region"))
	maxResults := parseMaxResults(c.Query("maxResults"))
	query := c.Query("q")
	token := c.Query("refresh")

	result, err := s.aggregator.FetchCached(c.Request.Context(), region, maxResults, query, token)
	if err != nil {
		logger.GetLogger().
			WithField("region", region).
			WithField("error", err).
			Error("fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	// Tag copies so the cached records stay untouched.
	videos := make([]models.Video, len(result.Videos))
	for i, video := range result.Videos {
		video.Region = region
		videos[i] = video
	}
	result.Videos = videos

	c.JSON(http.StatusOK, result)
}

// parseRegions splits the comma-separated region list, uppercased and
// deduplicated in order, falling back to the configured default region.
func parseRegions(raw, fallback string) []string {
	var regions []string
	seen := make(map[string]bool)
	for _, code := range strings.Split(raw, ",") {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		regions = append(regions, code)
	}
	if len(regions) == 0 {
		regions = []string{fallback}
	}
	return regions
}

// parseMaxResults reads the per-region result limit, defaulting to 10 and
// clamping to the API's single-page bounds.
func parseMaxResults(raw string) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 10
	}
	if n > 50 {
		return 50
	}
	return n
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}
