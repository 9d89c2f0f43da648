package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(writeConfig(t, ""), "kova.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8000", cfg.APIBaseURL)
	assert.Equal(t, GetPaths().Data, cfg.DataDir)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.NoColor)
}

func TestLoad_FromFile(t *testing.T) {
	dir := writeConfig(t, strings.Join([]string{
		"api:",
		"  base_url: https://shop.kova.example",
		"log_level: debug",
		"no_color: true",
	}, "\n"))

	cfg, err := Load(filepath.Join(dir, "kova.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://shop.kova.example", cfg.APIBaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.NoColor)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, "log_level: debug\n")
	t.Setenv("KOVA_LOG_LEVEL", "trace")
	t.Setenv("KOVA_API_BASE_URL", "http://10.0.0.5:8000")

	cfg, err := Load(filepath.Join(dir, "kova.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "trace", cfg.LogLevel)
	assert.Equal(t, "http://10.0.0.5:8000", cfg.APIBaseURL)
}

func TestLoad_ExplicitMissingFileIsAnError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedFileIsAnError(t *testing.T) {
	dir := writeConfig(t, "log_level: [unclosed\n")
	_, err := Load(filepath.Join(dir, "kova.yaml"))
	assert.Error(t, err)
}

func TestGetPaths(t *testing.T) {
	paths := GetPaths()
	require.NotNil(t, paths)
	assert.Equal(t, filepath.Join(paths.Home, "data"), paths.Data)
	assert.True(t, strings.HasSuffix(paths.Home, ".kova"))

	assert.Same(t, paths, GetPaths())
}

// writeConfig drops a kova.yaml with the given body into a temp dir and
// returns the dir.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kova.yaml"), []byte(body), 0o644))
	return dir
}
