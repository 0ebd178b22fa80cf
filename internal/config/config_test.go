package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	env := "SERVER_ADDRESS=127.0.0.1:9090\nGEOLOCATION_TIMEOUT=5s\nHIDDEN_VENUES=dtw, newport\nFIXED_ORIGIN=true\nORIGIN_LATITUDE=42.0\nORIGIN_LONGITUDE=-83.0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(env), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.ServerAddress)
	assert.Equal(t, 5*time.Second, cfg.GeolocationTimeout)
	assert.Equal(t, []string{"dtw", "newport"}, cfg.HiddenVenues)
	assert.True(t, cfg.FixedOrigin)
	assert.Equal(t, 42.0, cfg.OriginLatitude)
	assert.Equal(t, -83.0, cfg.OriginLongitude)
	assert.Equal(t, time.Hour, cfg.GeoIPCacheTTL)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte("LOG_LEVEL=info\n"), 0o600))
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_GeolocationDeniedFromEnvironment(t *testing.T) {
	t.Setenv("GEOLOCATION_DENIED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.GeolocationDenied)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddress)
	assert.Equal(t, 10*time.Second, cfg.GeolocationTimeout)
	assert.Empty(t, cfg.HiddenVenues)
	assert.False(t, cfg.FixedOrigin)
	assert.False(t, cfg.GeolocationDenied)
}
