package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/figsearch/bitmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, bitmap.DefaultMaxCells, cfg.Parse.MaxCells)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "figsearch.yaml")
	data := []byte("logging:\n  level: debug\nsearch:\n  workers: 4\nconvert:\n  threshold: 90\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "untouched keys keep defaults")
	assert.Equal(t, 4, cfg.Search.Workers)
	assert.Equal(t, 90, cfg.Convert.Threshold)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search: [1, 2"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("level and workers", func(t *testing.T) {
		t.Setenv("FIGSEARCH_LOG_LEVEL", "error")
		t.Setenv("FIGSEARCH_WORKERS", "8")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, "error", cfg.Logging.Level)
		assert.Equal(t, 8, cfg.Search.Workers)
	})

	t.Run("bad workers", func(t *testing.T) {
		t.Setenv("FIGSEARCH_WORKERS", "many")

		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorContains(t, err, "FIGSEARCH_WORKERS")
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "figsearch.yaml")
	cfg := DefaultConfig()
	cfg.Search.Workers = 3
	cfg.Convert.Width, cfg.Convert.Height = 64, 48
	require.NoError(t, cfg.Save(path))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"level", func(c *Config) { c.Logging.Level = "loud" }},
		{"format", func(c *Config) { c.Logging.Format = "xml" }},
		{"max cells", func(c *Config) { c.Parse.MaxCells = 0 }},
		{"workers", func(c *Config) { c.Search.Workers = -2 }},
		{"threshold", func(c *Config) { c.Convert.Threshold = 300 }},
		{"half size", func(c *Config) { c.Convert.Width = 10 }},
		{"separator", func(c *Config) { c.Convert.Separator = "," }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
