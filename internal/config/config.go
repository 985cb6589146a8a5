// Package config loads the client configuration file and resolves the
// backend base URL from it. Configuration is a single YAML file under the
// user configuration directory; the PRIDECONNECT_API_URL environment
// variable overrides the file for one-off runs.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/prideconnect/prideconnect/internal/api"
	"github.com/prideconnect/prideconnect/internal/errors"
)

// EnvAPIBaseURL overrides the configured backend URL when set.
const EnvAPIBaseURL = "PRIDECONNECT_API_URL"

// DefaultAPIBaseURL is used when neither the config file nor the
// environment names a backend.
const DefaultAPIBaseURL = "http://localhost:8000"

// Config is the on-disk configuration.
type Config struct {
	// APIBaseURL is the backend root, without the /api suffix.
	APIBaseURL string `yaml:"api_base_url,omitempty"`

	// Secure upgrades a configured http:// URL to https:// at resolution
	// time. Local development backends leave it off.
	Secure bool `yaml:"secure,omitempty"`

	Log LogConfig `yaml:"log,omitempty"`
}

// LogConfig selects logging behavior.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIBaseURL: DefaultAPIBaseURL,
	}
}

// DefaultPath returns the default configuration file location
// (~/.config/prideconnect/config.yaml on Linux).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeConfigInvalid, "locate user config dir", err)
	}
	return filepath.Join(dir, "prideconnect", "config.yaml"), nil
}

// Load reads the configuration at path. A missing file yields the defaults;
// a file that exists but does not parse is an error, so a typo never
// silently reverts to defaults. Environment variables inside values are
// expanded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrap(errors.ErrCodeConfigInvalid, "read config file", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigInvalid, "parse config file", err).
			WithSuggestion("Check the YAML syntax in " + path)
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}

	return cfg, nil
}

// BaseURL resolves the effective backend root: the environment override
// when set, otherwise the configured value, normalized for client use.
func (c *Config) BaseURL() (string, error) {
	raw := c.APIBaseURL
	if env := os.Getenv(EnvAPIBaseURL); env != "" {
		raw = env
	}
	return api.NormalizeBaseURL(raw, c.Secure)
}

// Save writes the configuration to path with owner-only permissions,
// creating parent directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "create config dir", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "encode config", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "write config file", err)
	}

	return nil
}
