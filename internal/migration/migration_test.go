package migration

import (
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

// setupTestMigrations builds an in-memory migrations directory
func setupTestMigrations(t *testing.T, files map[string]string) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

func setupSQLiteTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewRunnerRejectsUnknownDriver(t *testing.T) {
	db := setupSQLiteTestDB(t)
	if _, err := NewRunner(db, fstest.MapFS{}, Driver("mysql")); err == nil {
		t.Error("NewRunner accepted an unknown driver")
	}
	if _, err := NewRunner(nil, fstest.MapFS{}, DriverSQLite); err == nil {
		t.Error("NewRunner accepted a nil database")
	}
}

func TestApplyMigrations(t *testing.T) {
	db := setupSQLiteTestDB(t)
	migrations := setupTestMigrations(t, map[string]string{
		"001_users.sql": "CREATE TABLE users (token TEXT PRIMARY KEY);",
		"002_email.sql": "ALTER TABLE users ADD COLUMN email TEXT;",
		"README.md":     "not a migration",
		"003_index.sql": "CREATE INDEX idx_users_email ON users(email);",
	})

	runner, err := NewRunner(db, migrations, DriverSQLite)
	if err != nil {
		t.Fatal(err)
	}

	var logs []string
	applied, err := runner.ApplyMigrations(func(s string) { logs = append(logs, s) })
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 3 {
		t.Errorf("applied = %d, want 3", applied)
	}
	if len(logs) == 0 {
		t.Error("no progress was logged")
	}

	st, err := runner.Status()
	if err != nil {
		t.Fatal(err)
	}
	if st.Current != 3 || st.Latest != 3 || st.Pending() != 0 {
		t.Errorf("Status() = %+v, want current=latest=3", st)
	}

	if _, err := db.Exec("INSERT INTO users (token, email) VALUES ('t', 'a@b.c')"); err != nil {
		t.Errorf("migrated table is unusable: %v", err)
	}

	// Second run is a no-op
	applied, err = runner.ApplyMigrations(nil)
	if err != nil || applied != 0 {
		t.Errorf("second ApplyMigrations = %d, %v; want 0, nil", applied, err)
	}
}

func TestApplyMigrationsRollsBackFailures(t *testing.T) {
	db := setupSQLiteTestDB(t)
	runner, err := NewRunner(db, setupTestMigrations(t, map[string]string{
		"001_ok.sql":     "CREATE TABLE ok (id INTEGER);",
		"002_broken.sql": "CREATE TABLE broken (id INTEGER; -- syntax error",
	}), DriverSQLite)
	if err != nil {
		t.Fatal(err)
	}

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("ApplyMigrations succeeded with a broken migration")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}
	if v, _ := runner.GetCurrentVersion(); v != 1 {
		t.Errorf("version = %d, want 1", v)
	}
}

func TestReadMigrationFilesErrors(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		want  string
	}{
		{"no underscore", map[string]string{"001.sql": ""}, "invalid migration filename"},
		{"bad version", map[string]string{"abc_init.sql": ""}, "invalid version number"},
		{"zero version", map[string]string{"000_init.sql": ""}, "at least 1"},
		{"duplicate", map[string]string{"001_a.sql": "", "1_b.sql": ""}, "duplicate migration version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, err := NewRunner(setupSQLiteTestDB(t), setupTestMigrations(t, tt.files), DriverSQLite)
			if err != nil {
				t.Fatal(err)
			}
			_, err = runner.ReadMigrationFiles()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ReadMigrationFiles() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestValidateVersionTooNew(t *testing.T) {
	db := setupSQLiteTestDB(t)
	runner, err := NewRunner(db, setupTestMigrations(t, map[string]string{
		"001_init.sql": "CREATE TABLE t (id INTEGER);",
	}), DriverSQLite)
	if err != nil {
		t.Fatal(err)
	}

	if err := runner.SetVersion(5); err != nil {
		t.Fatal(err)
	}
	if err := runner.ValidateVersion(); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("ValidateVersion() error = %v, want %v", err, ErrSchemaTooNew)
	}
	if _, err := runner.ApplyMigrations(nil); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("ApplyMigrations() error = %v, want %v", err, ErrSchemaTooNew)
	}
}
