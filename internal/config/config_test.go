package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config lookup at a fresh temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvThemeFile, "")
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "hito")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "a", defaults.AddTask)
	assert.Equal(t, "n", defaults.CreateProject)
	assert.Equal(t, "L", defaults.Logout)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, DefaultRequestTimeout, cfg.Timeout())
	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `api_url: "https://tracker.example.com/api/"
request_timeout: "5s"
key_mappings:
  quit: "x"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://tracker.example.com/api", cfg.APIURL, "trailing slash is trimmed")
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "a", cfg.KeyMappings.AddTask, "unset keys fall back to defaults")
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `api_url: "https://from-file.example.com/api"`)
	t.Setenv(EnvAPIURL, "http://from-env:9000/api")
	t.Setenv(EnvDataDir, filepath.Join(dir, "data"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:9000/api", cfg.APIURL)
	assert.Equal(t, filepath.Join(dir, "data"), cfg.DataDir)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "api_url: [unterminated")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.APIURL = "localhost:8000"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.RequestTimeout = "soon"
	assert.Error(t, cfg.Validate())
	assert.Equal(t, DefaultRequestTimeout, cfg.Timeout(), "malformed timeout falls back")
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.APIURL = "http://saved:8000/api"
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://saved:8000/api", loaded.APIURL)
}
