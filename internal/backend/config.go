package backend

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/julianstephens/moodpet/internal/backend/store"
	"github.com/julianstephens/moodpet/internal/config"
	"github.com/julianstephens/moodpet/internal/constants"
)

// Config configures the dev backend. Values come from MOODPET_DEV_* variables.
type Config struct {
	Addr   string `envconfig:"DEV_ADDR" default:":8787"`
	DB     string `envconfig:"DEV_DB" default:"~/.config/moodpet/backend.db"`
	APIKey string `envconfig:"DEV_API_KEY"`
}

// LoadConfig reads the dev backend configuration from the environment
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(constants.EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load backend config: %w", err)
	}
	return &cfg, nil
}

// Normalize expands a home-relative SQLite path
func (c *Config) Normalize() error {
	if c.Addr == "" {
		c.Addr = constants.DefaultDevAddr
	}
	if c.DB == "" {
		c.DB = constants.DefaultDevDBPath
	}
	if store.IsPostgres(c.DB) {
		return nil
	}
	path, err := config.ExpandHome(c.DB)
	if err != nil {
		return err
	}
	c.DB = path
	return nil
}
