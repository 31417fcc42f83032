package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/moodpet/internal/migration"
)

var sqliteQueries = queries{
	insertUser:  `INSERT INTO users (token, email, created_at) VALUES (?, ?, ?)`,
	userByToken: `SELECT token, email, created_at FROM users WHERE token = ?`,
	userByEmail: `SELECT token FROM users WHERE email = ?`,
	getSnapshot: `SELECT snapshot FROM user_data WHERE token = ?`,
	upsertSnapshot: `INSERT INTO user_data (token, snapshot, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(token) DO UPDATE SET snapshot = excluded.snapshot, updated_at = excluded.updated_at`,
}

// OpenSQLite opens (creating if needed) and migrates the database file at path
func OpenSQLite(ctx context.Context, path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY under load
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := newDB(db, migration.DriverSQLite, sqliteQueries)
	if err := s.migrateQuietly(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}
