// Package store persists dev backend users and their snapshots in SQLite or
// PostgreSQL. Snapshots are stored whole, as the JSON the client sent.
package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/julianstephens/moodpet/internal/models"
)

var (
	// ErrNotFound is returned when a token or snapshot does not exist
	ErrNotFound = errors.New("not found")
	// ErrUserExists is returned when an email is already registered
	ErrUserExists = errors.New("user already exists")
)

// User is a registered dev backend account
type User struct {
	Token     string
	Email     string
	CreatedAt time.Time
}

// Store is the persistence the dev backend needs
type Store interface {
	AddUser(ctx context.Context, email string) (User, error)
	UserByToken(ctx context.Context, token string) (User, error)
	GetSnapshot(ctx context.Context, token string) (models.Snapshot, error)
	SaveSnapshot(ctx context.Context, token string, snap models.Snapshot) error
	Ping(ctx context.Context) error
	Close() error
}

// IsPostgres reports whether dsn names a PostgreSQL database rather than a
// SQLite file path
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// Open opens and migrates the database named by dsn
func Open(ctx context.Context, dsn string) (*DB, error) {
	if IsPostgres(dsn) {
		return OpenPostgres(ctx, dsn)
	}
	return OpenSQLite(ctx, dsn)
}
