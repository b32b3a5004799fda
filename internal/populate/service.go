package populate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbomb79/mediaconf/internal/http/tmdb"
	"github.com/hbomb79/mediaconf/internal/media"
	"github.com/hbomb79/mediaconf/pkg/logger"
)

var log = logger.Get("Populate")

type (
	searcher interface {
		SearchForMovie(query string) (*tmdb.SearchResultItem, error)
		GetPoster(posterPath string) ([]byte, error)
	}

	// Outcome describes what happened to a single folder.
	Outcome int

	// Summary counts the outcomes of a scan over every folder in the root.
	Summary struct {
		Scanned   int
		Created   int
		Skipped   int
		Unmatched int
		Failed    int
		Posters   int
	}

	// Service populates the immediate sub-directories of a root directory
	// with a config file (and poster, where available) describing the media
	// inside. The name of each directory is used to search TMDB, and the
	// first result is accepted without any disambiguation.
	//
	// Folders are processed one at a time, to completion, in lexical order.
	Service struct {
		config   Config
		searcher searcher
	}
)

const (
	SKIPPED Outcome = iota
	UNMATCHED
	FAILED
	CREATED
	CREATED_WITH_POSTER
	DOWNLOADED
)

func (o Outcome) String() string {
	return []string{"SKIPPED", "UNMATCHED", "FAILED", "CREATED", "CREATED_WITH_POSTER", "DOWNLOADED"}[o]
}

// New creates a new populator Service. The configs root path must
// be an existing directory.
func New(config Config, searcher searcher) (*Service, error) {
	info, err := os.Stat(config.RootPath)
	if err != nil {
		return nil, fmt.Errorf("root path '%s' could not be accessed: %w", config.RootPath, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("root path '%s' is not a directory", config.RootPath)
	}

	return &Service{config: config, searcher: searcher}, nil
}

// Run populates every immediate sub-directory of the configured root.
// A failure for one folder is logged and does not stop the scan; an error
// is only returned if the root directory itself cannot be listed.
func (service *Service) Run() (Summary, error) {
	log.Emit(logger.INFO, "Scanning all folders in '%s' for config creation...\n", service.config.RootPath)

	summary := Summary{}
	err := service.forEachFolder(func(name string, path string) {
		outcome, err := service.PopulateFolder(path)
		if err != nil {
			log.Emit(logger.ERROR, "Failed to populate '%s': %v\n", name, err)
		}

		summary.record(outcome)
	})
	if err != nil {
		return summary, err
	}

	log.Emit(logger.SUCCESS, "All done! %d config file(s) created, %d poster(s) downloaded, %d skipped, %d unmatched, %d failed\n",
		summary.Created, summary.Posters, summary.Skipped, summary.Unmatched, summary.Failed)
	return summary, nil
}

// PopulateFolder searches for the folder provided using its base name, and
// writes a config file for the first result. If the result references a poster
// then it is downloaded to the folder as well, however a failure to do so
// does not undo the config file.
//
// Folders which already contain a config file or poster are skipped, and left
// completely untouched. An error is returned alongside the FAILED outcome
// only.
func (service *Service) PopulateFolder(dir string) (Outcome, error) {
	name := filepath.Base(dir)
	if populated, err := media.IsPopulated(dir); err != nil {
		return FAILED, err
	} else if populated {
		log.Emit(logger.STOP, "Skipping '%s' (config or image already exists)\n", name)
		return SKIPPED, nil
	}

	log.Emit(logger.INFO, "Processing '%s'...\n", name)
	result, err := service.searcher.SearchForMovie(name)
	if err != nil {
		var noResult *tmdb.NoResultError
		if errors.As(err, &noResult) {
			log.Emit(logger.WARNING, "No data found for '%s'\n", name)
			return UNMATCHED, nil
		}

		return FAILED, fmt.Errorf("search for '%s' failed: %w", name, err)
	}

	record := media.NewRecord(result.Title, result.Plot, result.ReleaseDate, result.PosterPath)
	if err := media.WriteRecord(dir, record); err != nil {
		return FAILED, err
	}

	outcome := CREATED
	if record.PosterPath != "" {
		if err := service.downloadPoster(dir, record.PosterPath); err != nil {
			log.Emit(logger.WARNING, "Failed to download poster for '%s': %v\n", record.Title, err)
		} else {
			log.Emit(logger.NEW, "%s downloaded for '%s'\n", media.PosterFileName, record.Title)
			outcome = CREATED_WITH_POSTER
		}
	}

	log.Emit(logger.SUCCESS, "%s created for '%s'\n", media.ConfigFileName, record.Title)
	return outcome, nil
}

func (service *Service) downloadPoster(dir string, posterPath string) error {
	data, err := service.searcher.GetPoster(posterPath)
	if err != nil {
		return err
	}

	return media.WritePoster(dir, data)
}

// forEachFolder calls the function provided for every immediate sub-directory
// of the configured root, in lexical order. Files and symlinks are ignored.
func (service *Service) forEachFolder(fn func(name string, path string)) error {
	entries, err := os.ReadDir(service.config.RootPath)
	if err != nil {
		return fmt.Errorf("failed to list root path '%s': %w", service.config.RootPath, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		fn(entry.Name(), filepath.Join(service.config.RootPath, entry.Name()))
	}

	return nil
}

func (summary *Summary) record(outcome Outcome) {
	summary.Scanned++
	switch outcome {
	case SKIPPED:
		summary.Skipped++
	case UNMATCHED:
		summary.Unmatched++
	case FAILED:
		summary.Failed++
	case CREATED:
		summary.Created++
	case CREATED_WITH_POSTER:
		summary.Created++
		summary.Posters++
	case DOWNLOADED:
		summary.Posters++
	}
}
