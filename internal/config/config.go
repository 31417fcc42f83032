// Package config loads client configuration from MOODPET_* environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/julianstephens/moodpet/internal/constants"
)

// Config holds the client configuration
type Config struct {
	// BackendURL is the base URL of the hosted backend functions
	BackendURL string `envconfig:"BACKEND_URL" default:"http://localhost:8787"`
	// BackendKey is the backend's public (anon) key, sent as the apikey header when set
	BackendKey string `envconfig:"BACKEND_KEY" default:""`

	HTTPTimeout  time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`
	SaveDebounce time.Duration `envconfig:"SAVE_DEBOUNCE" default:"300ms"`

	ConfigDir string `envconfig:"CONFIG_DIR" default:"~/.config/moodpet"`
	Debug     bool   `envconfig:"DEBUG" default:"false"`
}

// Load reads configuration from the environment and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(constants.EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize expands paths and validates values. It is run again after flag overrides.
func (c *Config) Normalize() error {
	c.BackendURL = strings.TrimRight(strings.TrimSpace(c.BackendURL), "/")
	if c.BackendURL == "" {
		c.BackendURL = constants.DefaultBackendURL
	}
	u, err := url.Parse(c.BackendURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid backend URL %q: must be an absolute http(s) URL", c.BackendURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid backend URL %q: unsupported scheme %q", c.BackendURL, u.Scheme)
	}

	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = constants.DefaultHTTPTimeout
	}
	if c.SaveDebounce < 0 {
		return fmt.Errorf("save debounce must not be negative (got %s)", c.SaveDebounce)
	}

	if c.ConfigDir == "" {
		c.ConfigDir = constants.DefaultConfigDir
	}
	dir, err := ExpandHome(c.ConfigDir)
	if err != nil {
		return err
	}
	c.ConfigDir = dir
	return nil
}

// ExpandHome replaces a leading "~" with the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
