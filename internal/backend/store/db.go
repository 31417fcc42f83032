package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/moodpet/internal/logger"
	"github.com/julianstephens/moodpet/internal/migration"
	"github.com/julianstephens/moodpet/internal/models"
	"github.com/julianstephens/moodpet/migrations"
)

// queries holds the dialect-specific statements
type queries struct {
	insertUser     string
	userByToken    string
	userByEmail    string
	getSnapshot    string
	upsertSnapshot string
}

// DB is a Store backed by database/sql
type DB struct {
	db     *sql.DB
	driver migration.Driver
	q      queries
}

var _ Store = (*DB)(nil)

func newDB(db *sql.DB, driver migration.Driver, q queries) *DB {
	return &DB{db: db, driver: driver, q: q}
}

// runner returns a migration runner over this database's embedded migrations
func (s *DB) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, string(s.driver))
	if err != nil {
		return nil, fmt.Errorf("failed to access %s migrations: %w", s.driver, err)
	}
	return migration.NewRunner(s.db, subFS, s.driver)
}

// Migrate applies pending migrations, reporting progress through logFn
func (s *DB) Migrate(logFn func(string)) (int, error) {
	r, err := s.runner()
	if err != nil {
		return 0, err
	}
	return r.ApplyMigrations(logFn)
}

// SchemaStatus returns the applied and latest schema versions
func (s *DB) SchemaStatus() (migration.Status, error) {
	r, err := s.runner()
	if err != nil {
		return migration.Status{}, err
	}
	return r.Status()
}

func (s *DB) migrateQuietly() error {
	l := logger.Component("store")
	_, err := s.Migrate(func(msg string) { l.Debug(msg) })
	return err
}

// Ping checks the connection
func (s *DB) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *DB) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// timeArg converts t into the representation the column type expects
func (s *DB) timeArg(t time.Time) any {
	if s.driver == migration.DriverSQLite {
		return t.UTC().Format(time.RFC3339Nano)
	}
	return t.UTC()
}

// scanTime accepts the forms drivers return for timestamp columns
func scanTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		return time.Parse(time.RFC3339Nano, t)
	case []byte:
		return time.Parse(time.RFC3339Nano, string(t))
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", v)
	}
}

// AddUser registers email and issues a new bearer token for it
func (s *DB) AddUser(ctx context.Context, email string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return User{}, errors.New("email cannot be empty")
	}

	var existing string
	err := s.db.QueryRowContext(ctx, s.q.userByEmail, email).Scan(&existing)
	switch {
	case err == nil:
		return User{}, fmt.Errorf("%w: %s", ErrUserExists, email)
	case !errors.Is(err, sql.ErrNoRows):
		return User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	u := User{
		Token:     uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.db.ExecContext(ctx, s.q.insertUser, u.Token, u.Email, s.timeArg(u.CreatedAt)); err != nil {
		return User{}, fmt.Errorf("failed to add user: %w", err)
	}
	return u, nil
}

// UserByToken returns the user owning token
func (s *DB) UserByToken(ctx context.Context, token string) (User, error) {
	var (
		u       User
		created any
	)
	err := s.db.QueryRowContext(ctx, s.q.userByToken, token).Scan(&u.Token, &u.Email, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to look up token: %w", err)
	}
	if u.CreatedAt, err = scanTime(created); err != nil {
		return User{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return u, nil
}

// GetSnapshot returns the last saved snapshot for token
func (s *DB) GetSnapshot(ctx context.Context, token string) (models.Snapshot, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, s.q.getSnapshot, token).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Snapshot{}, ErrNotFound
		}
		return models.Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.History == nil {
		snap.History = []models.MoodRecord{}
	}
	return snap, nil
}

// SaveSnapshot overwrites the snapshot for token
func (s *DB) SaveSnapshot(ctx context.Context, token string, snap models.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, s.q.upsertSnapshot, token, string(raw), s.timeArg(time.Now())); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
