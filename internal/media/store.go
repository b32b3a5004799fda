package media

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// posterMarkers are the lower-cased names of the images which the media
// server will use as a folders poster.
var posterMarkers = []string{"index.jpg", "index.jpeg", "index.png", "index.webp"}

// IsPopulated returns true if the directory provided already contains
// a config file or a poster image. Names are compared case-insensitively.
func IsPopulated(dir string) (bool, error) {
	return containsAny(dir, append([]string{ConfigFileName}, posterMarkers...))
}

// HasPoster returns true if the directory provided already contains a
// poster image. Names are compared case-insensitively.
func HasPoster(dir string) (bool, error) {
	return containsAny(dir, posterMarkers)
}

func containsAny(dir string, names []string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("failed to list '%s': %w", dir, err)
	}

	existing := make(map[string]bool, len(entries))
	for _, entry := range entries {
		existing[strings.ToLower(entry.Name())] = true
	}

	for _, name := range names {
		if existing[name] {
			return true, nil
		}
	}

	return false, nil
}

// LoadRecord reads and parses the config file inside the directory provided.
func LoadRecord(dir string) (*Record, error) {
	f, err := os.Open(filepath.Join(dir, ConfigFileName))
	if err != nil {
		return nil, err
	}

	defer f.Close()
	return ParseRecord(f)
}

// WriteRecord writes the record to the config file inside
// the directory provided.
func WriteRecord(dir string, record Record) error {
	return writeFileAtomic(filepath.Join(dir, ConfigFileName), []byte(record.Format()))
}

// WritePoster writes the image data provided to the poster
// file inside the directory provided.
func WritePoster(dir string, data []byte) error {
	return writeFileAtomic(filepath.Join(dir, PosterFileName), data)
}

// writeFileAtomic writes to a uniquely named temporary file alongside
// the target, and then renames it in to place. A partially written file
// would otherwise mark the folder as populated.
func writeFileAtomic(path string, data []byte) error {
	tmpPath := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move '%s' in to place: %w", path, err)
	}

	return nil
}
