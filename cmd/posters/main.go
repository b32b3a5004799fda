package main

import (
	"os"

	"github.com/hbomb79/mediaconf/internal/config"
	"github.com/hbomb79/mediaconf/internal/http/tmdb"
	"github.com/hbomb79/mediaconf/internal/populate"
	"github.com/hbomb79/mediaconf/pkg/logger"
)

var log = logger.Get("Main")

// main downloads a poster for every folder in the configured
// root which does not already have one.
func main() {
	cfg := config.PopulatorConfig{}
	if err := cfg.Load(os.Getenv(config.ConfigPathEnv)); err != nil {
		log.Emit(logger.FATAL, "Failed to load configuration: %v\nSet TMDB_API_KEY to your TMDB API key, or point %s at a YAML config file\n", err, config.ConfigPathEnv)
		os.Exit(1)
	}

	service, err := populate.New(cfg.Populate, tmdb.NewSearcher(cfg.Tmdb))
	if err != nil {
		log.Emit(logger.FATAL, "Failed to initialise poster downloader: %v\n", err)
		os.Exit(1)
	}

	if _, err := service.DownloadPosters(); err != nil {
		log.Emit(logger.FATAL, "Poster download failed: %v\n", err)
		os.Exit(1)
	}
}
