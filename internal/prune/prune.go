package prune

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hbomb79/mediaconf/internal/media"
	"github.com/hbomb79/mediaconf/pkg/logger"
)

var log = logger.Get("Prune")

type (
	// Config contains the configuration for the pruner. The root
	// path has no default and must be provided.
	Config struct {
		RootPath string `yaml:"root" env:"MEDIACONF_PRUNE_ROOT" env-required:"true" validate:"required"`
	}

	Result struct {
		Removed int
		Failed  int
	}

	// Pruner recursively deletes every config file beneath a root
	// directory. Deletion is immediate and irreversible.
	Pruner struct {
		config Config
	}
)

// New creates a Pruner for the configured root, which must be
// an existing directory.
func New(config Config) (*Pruner, error) {
	info, err := os.Stat(config.RootPath)
	if err != nil {
		return nil, fmt.Errorf("prune root '%s' could not be accessed: %w", config.RootPath, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("prune root '%s' is not a directory", config.RootPath)
	}

	return &Pruner{config: config}, nil
}

// Run walks the file system, starting at the configured root, and removes every
// regular file named exactly media.ConfigFileName. Failure to remove a file, or
// to read a nested directory, is logged and the walk continues. An error is
// only returned if the root itself cannot be walked.
func (pruner *Pruner) Run() (Result, error) {
	result := Result{}
	root := pruner.config.RootPath
	err := filepath.WalkDir(root, func(path string, dir fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}

			log.Emit(logger.WARNING, "Unable to read %s: %v\n", path, err)
			return nil
		}

		if !dir.Type().IsRegular() || dir.Name() != media.ConfigFileName {
			return nil
		}

		if err := os.Remove(path); err != nil {
			log.Emit(logger.ERROR, "Failed to remove %s: %v\n", path, err)
			result.Failed++
			return nil
		}

		log.Emit(logger.REMOVE, "Removed: %s\n", path)
		result.Removed++
		return nil
	})

	if err != nil {
		return result, fmt.Errorf("failed to walk file system: %w", err)
	}

	log.Emit(logger.SUCCESS, "Finished. %d %s file(s) removed, %d failed\n", result.Removed, media.ConfigFileName, result.Failed)
	return result, nil
}
