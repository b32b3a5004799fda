package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TempDirWithFiles creates a temporary directory containing the files
// provided. Each file is given as a slash separated path relative to the
// directory, and any parent directories are created. The content of each
// file is its own relative path. The absolute paths of the files are
// returned in the order given.
func TempDirWithFiles(t *testing.T, files []string) (string, []string) {
	dirPath := t.TempDir()
	filePaths := make([]string, 0, len(files))
	for _, filename := range files {
		path := filepath.Join(dirPath, filepath.FromSlash(filename))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "failed to create parent directory in temporary dir")
		require.NoError(t, os.WriteFile(path, []byte(filename), 0o644), "failed to create temporary file in temporary dir")
		filePaths = append(filePaths, path)
	}

	require.Len(t, filePaths, len(files), "Expected file paths recorded to match length of requested files")
	return dirPath, filePaths
}

// TempDirWithFolders creates a temporary directory containing an
// empty sub-directory for each of the names provided.
func TempDirWithFolders(t *testing.T, folders []string) string {
	dirPath := t.TempDir()
	for _, folder := range folders {
		require.NoError(t, os.MkdirAll(filepath.Join(dirPath, filepath.FromSlash(folder)), 0o755), "failed to create folder in temporary dir")
	}

	return dirPath
}

// Snapshot returns the relative path and content of every
// file beneath the root provided.
func Snapshot(t *testing.T, root string) map[string]string {
	snapshot := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		snapshot[filepath.ToSlash(rel)] = string(content)
		return nil
	})
	require.NoError(t, err, "failed to snapshot temporary dir")

	return snapshot
}
