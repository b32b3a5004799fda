package populate

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hbomb79/mediaconf/internal/http/tmdb"
	"github.com/hbomb79/mediaconf/internal/media"
	"github.com/hbomb79/mediaconf/pkg/logger"
)

// DownloadPosters downloads a poster for every immediate sub-directory of the
// configured root which does not already have one. Config files are neither
// read nor written, which allows posters to be fetched for folders whose
// config was written by hand.
func (service *Service) DownloadPosters() (Summary, error) {
	log.Emit(logger.INFO, "Scanning all folders in '%s' for poster download...\n", service.config.RootPath)

	summary := Summary{}
	err := service.forEachFolder(func(name string, path string) {
		outcome, err := service.DownloadFolderPoster(path)
		if err != nil {
			log.Emit(logger.ERROR, "Failed to download poster for '%s': %v\n", name, err)
		}

		summary.record(outcome)
	})
	if err != nil {
		return summary, err
	}

	log.Emit(logger.SUCCESS, "All done! %d poster(s) downloaded, %d skipped, %d unmatched, %d failed\n",
		summary.Posters, summary.Skipped, summary.Unmatched, summary.Failed)
	return summary, nil
}

// DownloadFolderPoster searches for the folder provided using its base name,
// and downloads the poster of the first result. Folders which already contain
// a poster image are skipped.
func (service *Service) DownloadFolderPoster(dir string) (Outcome, error) {
	name := filepath.Base(dir)
	if hasPoster, err := media.HasPoster(dir); err != nil {
		return FAILED, err
	} else if hasPoster {
		log.Emit(logger.STOP, "Skipping '%s' (image already exists)\n", name)
		return SKIPPED, nil
	}

	log.Emit(logger.INFO, "Processing '%s'...\n", name)
	result, err := service.searcher.SearchForMovie(name)
	if err != nil {
		var noResult *tmdb.NoResultError
		if errors.As(err, &noResult) {
			log.Emit(logger.WARNING, "No poster found for '%s'\n", name)
			return UNMATCHED, nil
		}

		return FAILED, fmt.Errorf("search for '%s' failed: %w", name, err)
	} else if result.PosterPath == "" {
		log.Emit(logger.WARNING, "No poster found for '%s'\n", name)
		return UNMATCHED, nil
	}

	if err := service.downloadPoster(dir, result.PosterPath); err != nil {
		return FAILED, err
	}

	log.Emit(logger.NEW, "%s downloaded for '%s'\n", media.PosterFileName, name)
	return DOWNLOADED, nil
}
