package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbomb79/mediaconf/internal/config"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYaml(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_PopulatorConfig_Defaults(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "abc")

	cfg := config.PopulatorConfig{}
	require.NoError(t, cfg.Load(""))

	assert.Equal(t, ".", cfg.Populate.RootPath)
	assert.Equal(t, "abc", cfg.Tmdb.ApiKey)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.Tmdb.BaseUrl)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500", cfg.Tmdb.ImageBaseUrl)
	assert.False(t, cfg.Tmdb.IncludeAdult)
}

func Test_PopulatorConfig_MissingApiKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	os.Unsetenv("TMDB_API_KEY")

	cfg := config.PopulatorConfig{}
	assert.Error(t, cfg.Load(""))
}

func Test_PopulatorConfig_FromFile(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	os.Unsetenv("TMDB_API_KEY")
	path := writeYaml(t, `
populate:
  root: /srv/media
tmdb:
  api_key: from-file
  include_adult: true
`)

	cfg := config.PopulatorConfig{}
	require.NoError(t, cfg.Load(path))
	assert.Equal(t, "/srv/media", cfg.Populate.RootPath)
	assert.Equal(t, "from-file", cfg.Tmdb.ApiKey)
	assert.True(t, cfg.Tmdb.IncludeAdult)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.Tmdb.BaseUrl)
}

func Test_PopulatorConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "from-env")
	t.Setenv("MEDIACONF_ROOT", "/mnt/films")
	path := writeYaml(t, "populate:\n  root: /srv/media\ntmdb:\n  api_key: from-file\n")

	cfg := config.PopulatorConfig{}
	require.NoError(t, cfg.Load(path))
	assert.Equal(t, "/mnt/films", cfg.Populate.RootPath)
	assert.Equal(t, "from-env", cfg.Tmdb.ApiKey)
}

func Test_PopulatorConfig_InvalidUrl(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "abc")
	t.Setenv("TMDB_BASE_URL", "not a url")

	cfg := config.PopulatorConfig{}
	assert.Error(t, cfg.Load(""))
}

func Test_PopulatorConfig_ExpandsHome(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "abc")
	t.Setenv("MEDIACONF_ROOT", "~/Movies")

	home, err := homedir.Dir()
	require.NoError(t, err)

	cfg := config.PopulatorConfig{}
	require.NoError(t, cfg.Load(""))
	assert.Equal(t, filepath.Join(home, "Movies"), cfg.Populate.RootPath)
}

func Test_PrunerConfig(t *testing.T) {
	t.Run("Root required", func(t *testing.T) {
		t.Setenv("MEDIACONF_PRUNE_ROOT", "")
		os.Unsetenv("MEDIACONF_PRUNE_ROOT")

		cfg := config.PrunerConfig{}
		assert.Error(t, cfg.Load(""))
	})

	t.Run("Root from environment", func(t *testing.T) {
		t.Setenv("MEDIACONF_PRUNE_ROOT", "/srv/media")

		cfg := config.PrunerConfig{}
		require.NoError(t, cfg.Load(""))
		assert.Equal(t, "/srv/media", cfg.Prune.RootPath)
	})

	t.Run("Missing file", func(t *testing.T) {
		cfg := config.PrunerConfig{}
		assert.Error(t, cfg.Load(filepath.Join(t.TempDir(), "missing.yaml")))
	})
}
