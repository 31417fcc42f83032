package devbackend

import (
	"context"
	"fmt"

	"github.com/julianstephens/moodpet/internal/backend/store"
	"github.com/julianstephens/moodpet/internal/cli"
)

type AddUserCmd struct {
	Email string `arg:"" help:"Email to register."`
	DB    string `help:"SQLite path or PostgreSQL connection string (default from MOODPET_DEV_DB)." name:"db"`
}

func (c *AddUserCmd) Run(ctx *cli.Context) error {
	cfg, err := loadConfig("", c.DB, "")
	if err != nil {
		return err
	}

	st, err := store.Open(context.Background(), cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open backend store: %w", err)
	}
	defer st.Close()

	u, err := st.AddUser(context.Background(), c.Email)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Registered %s\n", u.Email)
	fmt.Printf("  Token: %s\n", u.Token)
	fmt.Printf("  Log in with: moodpet login --email %s --token %s\n", u.Email, u.Token)
	return nil
}
