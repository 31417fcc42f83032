// Package clitest runs commands against an in-process dev backend.
package clitest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/moodpet/internal/backend"
	"github.com/julianstephens/moodpet/internal/backend/store"
	"github.com/julianstephens/moodpet/internal/cli"
	"github.com/julianstephens/moodpet/internal/config"
	"github.com/julianstephens/moodpet/internal/keyring"
	"github.com/julianstephens/moodpet/internal/models"
)

// Sessions is an in-memory session provider
type Sessions struct {
	Session models.Session
}

func (s *Sessions) GetSession() (models.Session, error) {
	if !s.Session.Authenticated() {
		return models.Session{}, keyring.ErrNotFound
	}
	return s.Session, nil
}

func (s *Sessions) SetSession(session models.Session) error {
	s.Session = session
	return nil
}

func (s *Sessions) DeleteSession() error {
	if !s.Session.Authenticated() {
		return keyring.ErrNotFound
	}
	s.Session = models.Session{}
	return nil
}

// Env is a running backend with one registered user
type Env struct {
	Server   *httptest.Server
	Store    *store.DB
	User     store.User
	Sessions *Sessions
}

// Session returns the registered user's session
func (e *Env) Session() models.Session {
	return models.Session{Token: e.User.Token, Email: e.User.Email}
}

// Snapshot reads what the backend holds for the registered user
func (e *Env) Snapshot(t *testing.T) (models.Snapshot, error) {
	t.Helper()
	return e.Store.GetSnapshot(context.Background(), e.User.Token)
}

// New starts a backend and returns a command context pointed at it. When
// loggedIn is set the user's session is already stored.
func New(t *testing.T, loggedIn bool) (*cli.Context, *Env) {
	t.Helper()
	return NewWithHandler(t, loggedIn, nil)
}

// NewWithHandler is New with the backend handler passed through wrap first.
// Tests use it to make the backend misbehave.
func NewWithHandler(t *testing.T, loggedIn bool, wrap func(http.Handler) http.Handler) (*cli.Context, *Env) {
	t.Helper()

	st, err := store.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "backend.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	user, err := st.AddUser(context.Background(), "pat@example.com")
	if err != nil {
		t.Fatalf("AddUser failed: %v", err)
	}

	var handler http.Handler = backend.New(st, &backend.Config{}).Handler()
	if wrap != nil {
		handler = wrap(handler)
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	env := &Env{Server: srv, Store: st, User: user, Sessions: &Sessions{}}
	if loggedIn {
		env.Sessions.Session = env.Session()
	}

	cfg := &config.Config{
		BackendURL:  srv.URL,
		HTTPTimeout: 2 * time.Second,
		ConfigDir:   t.TempDir(),
	}
	return cli.NewContext(cfg, env.Sessions), env
}
