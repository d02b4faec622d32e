package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("EVENTADMIN_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "http://localhost:8080", cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Contains(t, cfg.StateDir, ".eventadmin")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("EVENTADMIN_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("EVENTADMIN_API_URL", "https://api.example.com")
	t.Setenv("EVENTADMIN_STATE_DIR", "/tmp/state")
	t.Setenv("EVENTADMIN_HTTP_TIMEOUT", "10s")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", cfg.APIURL)
	assert.Equal(t, "/tmp/state", cfg.StateDir)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eventadmin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"api_url: https://file.example.com\nhttp_timeout: 45s\n",
	), 0o644))

	t.Setenv("GO_ENV", "test")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("EVENTADMIN_CONFIG_FILE", path)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://file.example.com", cfg.APIURL)
	assert.Equal(t, 45*time.Second, cfg.HTTPTimeout)
}

func TestLoad_EnvironmentBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eventadmin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://file.example.com\n"), 0o644))

	t.Setenv("GO_ENV", "test")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("EVENTADMIN_CONFIG_FILE", path)
	t.Setenv("EVENTADMIN_API_URL", "https://env.example.com")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.APIURL)
}

func TestLoad_BadTimeoutInFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eventadmin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_timeout: soon\n"), 0o644))

	t.Setenv("GO_ENV", "test")
	t.Setenv("HOME", t.TempDir())
	t.Setenv("EVENTADMIN_CONFIG_FILE", path)

	_, err := Load()
	require.Error(t, err)
}
