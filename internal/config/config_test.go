package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/geom/units"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "geomfmt.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(FileEnv, "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, &units.Basis{FontSize: 16, RootFontSize: 16}, cfg.Basis())
}

func TestLoadFile(t *testing.T) {
	t.Setenv(FileEnv, writeFile(t, `
log_level = "debug"
format = "yaml"
font_size = 12
container_size = 300
`))
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, 12.0, cfg.FontSize)
	assert.Equal(t, 16.0, cfg.RootFontSize)
	assert.Equal(t, 300.0, cfg.ContainerSize)
	assert.Equal(t, 4096, cfg.ChunkSize)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv(FileEnv, writeFile(t, "format = \"yaml\"\nchunk_size = 10\n"))
	t.Setenv("GEOMFMT_FORMAT", "text")
	t.Setenv("GEOMFMT_LOG_LEVEL", "error")
	t.Setenv("GEOMFMT_ROOT_FONT_SIZE", "20")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, slog.LevelError, cfg.LogLevel)
	assert.Equal(t, 20.0, cfg.RootFontSize)
	assert.Equal(t, 10, cfg.ChunkSize)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv(FileEnv, filepath.Join(t.TempDir(), "nope.toml"))
		_, err := Load()
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("unknown key", func(t *testing.T) {
		t.Setenv(FileEnv, writeFile(t, "colour = \"red\"\n"))
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("bad toml", func(t *testing.T) {
		t.Setenv(FileEnv, writeFile(t, "format = \n"))
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("bad env", func(t *testing.T) {
		t.Setenv(FileEnv, "")
		t.Setenv("GEOMFMT_CHUNK_SIZE", "lots")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("invalid", func(t *testing.T) {
		t.Setenv(FileEnv, "")
		t.Setenv("GEOMFMT_FORMAT", "json")
		_, err := Load()
		assert.EqualError(t, err, `unknown format "json"`)
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.ChunkSize = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.FontSize = -1
	assert.Error(t, cfg.Validate())
}
