package devbackend

import (
	"context"
	"fmt"

	"github.com/julianstephens/moodpet/internal/backend/store"
	"github.com/julianstephens/moodpet/internal/cli"
)

// MigrateCmd brings the backend schema up to date and reports its version.
// Opening the store applies pending migrations.
type MigrateCmd struct {
	DB string `help:"SQLite path or PostgreSQL connection string (default from MOODPET_DEV_DB)." name:"db"`
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	cfg, err := loadConfig("", c.DB, "")
	if err != nil {
		return err
	}

	st, err := store.Open(context.Background(), cfg.DB)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	defer st.Close()

	status, err := st.SchemaStatus()
	if err != nil {
		return err
	}
	if status.Pending() > 0 {
		return fmt.Errorf("schema version %d is behind latest %d after migrating", status.Current, status.Latest)
	}
	fmt.Printf("✓ Schema version %d of %d. Database is up to date.\n", status.Current, status.Latest)
	return nil
}
