package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Results", cfg.ResultsDir)
	assert.Equal(t, "all-sites.csv", cfg.OutputFile)
	assert.Equal(t, 3*time.Second, cfg.WaitTime)
	assert.Equal(t, []string{"utf-8", "utf-8-sig", "latin-1", "cp1252"}, cfg.Encodings)
	assert.Contains(t, cfg.GenericFonts, "system-ui")
	assert.Contains(t, cfg.SystemFonts, "Liberation Sans")
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides selected keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fontcheck.yaml")
		content := "resultsDir: out\nwaitTime: 500ms\nsystemFonts:\n  - Verdana\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "out", cfg.ResultsDir)
		assert.Equal(t, 500*time.Millisecond, cfg.WaitTime)
		assert.Equal(t, []string{"Verdana"}, cfg.SystemFonts)
		assert.Equal(t, "all-sites.csv", cfg.OutputFile)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("invalid: yaml: content: ["), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte("outputFile: \"\"\nencodings: []\n"), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "outputFile")
		assert.Contains(t, err.Error(), "encodings")
	})
}
