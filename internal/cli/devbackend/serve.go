package devbackend

import (
	"context"

	"github.com/julianstephens/moodpet/internal/backend"
	"github.com/julianstephens/moodpet/internal/cli"
)

type ServeCmd struct {
	Addr   string `help:"Listen address (default from MOODPET_DEV_ADDR, else :8787)."`
	DB     string `help:"SQLite path or PostgreSQL connection string (default from MOODPET_DEV_DB)." name:"db"`
	APIKey string `help:"Require this value in the apikey header." name:"api-key"`
}

func (c *ServeCmd) Run(ctx *cli.Context) error {
	cfg, err := loadConfig(c.Addr, c.DB, c.APIKey)
	if err != nil {
		return err
	}
	return backend.Run(context.Background(), cfg)
}

// loadConfig reads the environment and applies non-empty flag overrides
func loadConfig(addr, db, apiKey string) (*backend.Config, error) {
	cfg, err := backend.LoadConfig()
	if err != nil {
		return nil, err
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if db != "" {
		cfg.DB = db
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}
