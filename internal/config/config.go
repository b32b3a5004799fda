package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hbomb79/mediaconf/internal/http/tmdb"
	"github.com/hbomb79/mediaconf/internal/populate"
	"github.com/hbomb79/mediaconf/internal/prune"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/mitchellh/go-homedir"
)

// ConfigPathEnv names the environment variable which may point to a YAML
// configuration file. When unset, configuration is read from the environment only.
const ConfigPathEnv = "MEDIACONF_CONFIG"

// PopulatorConfig is the configuration used by both the
// populator and the poster downloader.
type PopulatorConfig struct {
	Populate populate.Config `yaml:"populate"`
	Tmdb     tmdb.Config     `yaml:"tmdb"`
}

// PrunerConfig is the configuration used by the config pruner.
type PrunerConfig struct {
	Prune prune.Config `yaml:"prune"`
}

// Load populates the config from the YAML file at the path provided (if any)
// and the environment, with environment variables taking precedence.
func (config *PopulatorConfig) Load(configPath string) error {
	if err := load(configPath, config); err != nil {
		return err
	}

	root, err := homedir.Expand(config.Populate.RootPath)
	if err != nil {
		return fmt.Errorf("failed to expand root path '%s': %w", config.Populate.RootPath, err)
	}

	config.Populate.RootPath = root
	return validate(config)
}

// Load populates the config from the YAML file at the path provided (if any)
// and the environment, with environment variables taking precedence.
func (config *PrunerConfig) Load(configPath string) error {
	if err := load(configPath, config); err != nil {
		return err
	}

	root, err := homedir.Expand(config.Prune.RootPath)
	if err != nil {
		return fmt.Errorf("failed to expand prune root '%s': %w", config.Prune.RootPath, err)
	}

	config.Prune.RootPath = root
	return validate(config)
}

func load(configPath string, target interface{}) error {
	if configPath == "" {
		if err := cleanenv.ReadEnv(target); err != nil {
			return fmt.Errorf("failed to load configuration from environment - %w", err)
		}

		return nil
	}

	if err := cleanenv.ReadConfig(configPath, target); err != nil {
		return fmt.Errorf("failed to load configuration from '%s' - %w", configPath, err)
	}

	return nil
}

func validate(target interface{}) error {
	if err := validator.New().Struct(target); err != nil {
		return fmt.Errorf("configuration is invalid - %w", err)
	}

	return nil
}
