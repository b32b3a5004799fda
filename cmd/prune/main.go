package main

import (
	"os"

	"github.com/hbomb79/mediaconf/internal/config"
	"github.com/hbomb79/mediaconf/internal/prune"
	"github.com/hbomb79/mediaconf/pkg/logger"
)

var log = logger.Get("Main")

func main() {
	cfg := config.PrunerConfig{}
	if err := cfg.Load(os.Getenv(config.ConfigPathEnv)); err != nil {
		log.Emit(logger.FATAL, "Failed to load configuration: %v\nSet MEDIACONF_PRUNE_ROOT to the directory to prune\n", err)
		os.Exit(1)
	}

	pruner, err := prune.New(cfg.Prune)
	if err != nil {
		log.Emit(logger.FATAL, "Failed to initialise pruner: %v\n", err)
		os.Exit(1)
	}

	if _, err := pruner.Run(); err != nil {
		log.Emit(logger.FATAL, "Prune failed: %v\n", err)
		os.Exit(1)
	}
}
