package main

import (
	"github.com/joho/godotenv"

	"github.com/yt-trends/internal/api"
	"github.com/yt-trends/internal/config"
	"github.com/yt-trends/internal/logger"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.GetLogger().Warn(".env file not found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("failed to load configuration")
	}

	server, err := api.NewServer(cfg)
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("failed to initialize server")
	}

	logger.GetLogger().WithField("port", cfg.Port).Info("server starting")
	if err := server.Start(cfg.Port); err != nil {
		logger.GetLogger().WithField("error", err).Fatal("failed to start server")
	}
}
