package main

import (
	"os"

	"github.com/hbomb79/mediaconf/internal/config"
	"github.com/hbomb79/mediaconf/internal/http/tmdb"
	"github.com/hbomb79/mediaconf/internal/populate"
	"github.com/hbomb79/mediaconf/pkg/logger"
)

var log = logger.Get("Main")

// main is the entry point of the populator. Configuration is read from
// the environment (and optionally a YAML file), after which every folder
// in the configured root is populated with a config file and poster.
func main() {
	cfg := config.PopulatorConfig{}
	if err := cfg.Load(os.Getenv(config.ConfigPathEnv)); err != nil {
		log.Emit(logger.FATAL, "Failed to load configuration: %v\nSet TMDB_API_KEY to your TMDB API key, or point %s at a YAML config file\n", err, config.ConfigPathEnv)
		os.Exit(1)
	}

	service, err := populate.New(cfg.Populate, tmdb.NewSearcher(cfg.Tmdb))
	if err != nil {
		log.Emit(logger.FATAL, "Failed to initialise populator: %v\n", err)
		os.Exit(1)
	}

	if _, err := service.Run(); err != nil {
		log.Emit(logger.FATAL, "Populator failed: %v\n", err)
		os.Exit(1)
	}
}
