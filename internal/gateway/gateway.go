// Package gateway talks to the hosted backend: it reads the active session
// from the session provider and loads and saves a user's snapshot over HTTP.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"

	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/keyring"
	"github.com/julianstephens/moodpet/internal/logger"
	"github.com/julianstephens/moodpet/internal/models"
)

// SessionProvider stores the authenticated session between runs
type SessionProvider interface {
	GetSession() (models.Session, error)
	SetSession(models.Session) error
	DeleteSession() error
}

// Config configures a Gateway
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Gateway is the Session/Sync gateway
type Gateway struct {
	client   *resty.Client
	sessions SessionProvider
	log      *log.Logger
}

// New creates a Gateway for the backend at cfg.BaseURL
func New(cfg Config, sessions SessionProvider) *Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	l := logger.Component("gateway")
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetLogger(l).
		SetDisableWarn(true)
	if cfg.APIKey != "" {
		client.SetHeader("apikey", cfg.APIKey)
	}

	return &Gateway{client: client, sessions: sessions, log: l}
}

// GetActiveSession returns the stored session. Provider failures are logged
// and reported as "no session".
func (g *Gateway) GetActiveSession(ctx context.Context) (models.Session, bool) {
	if err := ctx.Err(); err != nil {
		return models.Session{}, false
	}
	session, err := g.sessions.GetSession()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			g.log.Debug("No stored session")
		} else {
			g.log.Warn("Failed to read session", "error", err)
		}
		return models.Session{}, false
	}
	return session, session.Authenticated()
}

// SetSession persists a session obtained from login
func (g *Gateway) SetSession(session models.Session) error {
	return g.sessions.SetSession(session)
}

// SignOut clears the stored session. Failures are logged only.
func (g *Gateway) SignOut(ctx context.Context) {
	if err := g.sessions.DeleteSession(); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		g.log.Warn("Failed to clear session", "error", err)
	}
}

// LoadUserData fetches the user's snapshot. Every failure is logged and
// returned as a *RequestError; there is no retry.
func (g *Gateway) LoadUserData(ctx context.Context, token string) (UserData, error) {
	if token == "" {
		return UserData{}, &RequestError{Op: opLoad, Kind: ErrUnauthorized, Err: ErrNoSession}
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get(constants.FetchUserDataPath)
	if err != nil {
		reqErr := &RequestError{Op: opLoad, Kind: ErrUnreachable, Err: err}
		g.log.Error("Failed to load user data", "error", reqErr)
		return UserData{}, reqErr
	}
	if !resp.IsSuccess() {
		reqErr := classifyStatus(opLoad, resp.StatusCode())
		g.log.Warn("Backend rejected load", "status", resp.StatusCode(), "body", truncate(resp.String(), 200))
		return UserData{}, reqErr
	}

	data, err := decodeUserData(resp.Body())
	if err != nil {
		reqErr := &RequestError{Op: opLoad, Kind: ErrMalformedResponse, StatusCode: resp.StatusCode(), Err: err}
		g.log.Error("Failed to decode user data", "error", reqErr)
		return UserData{}, reqErr
	}

	g.log.Debug("Loaded user data", "coins", data.Snapshot.Balance, "history", len(data.Snapshot.History))
	return data, nil
}

// SaveUserData writes the complete snapshot. The response body is ignored.
func (g *Gateway) SaveUserData(ctx context.Context, token string, snap models.Snapshot) error {
	if token == "" {
		return &RequestError{Op: opSave, Kind: ErrUnauthorized, Err: ErrNoSession}
	}

	body, err := json.Marshal(encodeSnapshot(snap))
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetBody(body).
		Post(constants.SaveUserDataPath)
	if err != nil {
		reqErr := &RequestError{Op: opSave, Kind: ErrUnreachable, Err: err}
		g.log.Error("Failed to save user data", "error", reqErr)
		return reqErr
	}
	if !resp.IsSuccess() {
		reqErr := classifyStatus(opSave, resp.StatusCode())
		g.log.Warn("Backend rejected save", "status", resp.StatusCode(), "body", truncate(resp.String(), 200))
		return reqErr
	}

	g.log.Debug("Saved user data", "coins", snap.Balance, "history", len(snap.History))
	return nil
}

// Ping checks that the backend answers HTTP at all. Any status counts as reachable.
func (g *Gateway) Ping(ctx context.Context) (int, error) {
	resp, err := g.client.R().SetContext(ctx).Get("/")
	if err != nil {
		return 0, &RequestError{Op: opPing, Kind: ErrUnreachable, Err: err}
	}
	return resp.StatusCode(), nil
}

// truncate shortens s to at most n bytes without splitting a UTF-8 sequence
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
