package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prideconnect/prideconnect/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.False(t, cfg.Secure)
}

func TestLoadParsesFile(t *testing.T) {
	path := writeConfig(t, `
api_base_url: https://api.example.org
secure: true
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.org", cfg.APIBaseURL)
	assert.True(t, cfg.Secure)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "api_base_url: [broken")

	_, err := Load(path)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeConfigInvalid, errors.Code(err))
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("PC_TEST_HOST", "env.example.org")
	path := writeConfig(t, "api_base_url: https://${PC_TEST_HOST}")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.org", cfg.APIBaseURL)
}

func TestBaseURLNormalizes(t *testing.T) {
	cfg := &Config{APIBaseURL: "https://api.example.org///"}

	url, err := cfg.BaseURL()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.org", url)
}

func TestBaseURLSecureUpgrade(t *testing.T) {
	cfg := &Config{APIBaseURL: "http://api.example.org", Secure: true}

	url, err := cfg.BaseURL()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.org", url)

	cfg.Secure = false
	url, err = cfg.BaseURL()
	require.NoError(t, err)
	assert.Equal(t, "http://api.example.org", url)
}

func TestBaseURLEnvOverride(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "http://override.example.org/")

	cfg := &Config{APIBaseURL: "https://file.example.org"}
	url, err := cfg.BaseURL()
	require.NoError(t, err)
	assert.Equal(t, "http://override.example.org", url)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &Config{APIBaseURL: "https://api.example.org", Secure: true}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.APIBaseURL, loaded.APIBaseURL)
	assert.True(t, loaded.Secure)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
