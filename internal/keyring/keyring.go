package keyring

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/moodpet/internal/constants"
	"github.com/julianstephens/moodpet/internal/models"
	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound is returned when no session is stored in the keyring
	ErrNotFound = errors.New("session not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
	// ErrCorruptSession is returned when the stored value can't be decoded
	ErrCorruptSession = errors.New("stored session is corrupt")
)

// GetSession retrieves the current session from the OS keyring.
// Returns ErrNotFound if no session is stored.
func GetSession() (models.Session, error) {
	raw, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return models.Session{}, ErrNotFound
		}
		// Wrap other keyring errors as unavailable
		return models.Session{}, fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	if !session.Authenticated() {
		return models.Session{}, ErrNotFound
	}
	return session, nil
}

// SetSession stores the session in the OS keyring, replacing any previous one.
func SetSession(session models.Session) error {
	if !session.Authenticated() {
		return errors.New("session token cannot be empty")
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, string(raw)); err != nil {
		return fmt.Errorf("failed to store session in keyring: %w", err)
	}
	return nil
}

// DeleteSession removes the session from the OS keyring.
func DeleteSession() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete session from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring answered, it just has nothing for us
	return err == nil || err == keyring.ErrNotFound
}

// Provider exposes the package functions as a session provider value
type Provider struct{}

func (Provider) GetSession() (models.Session, error)    { return GetSession() }
func (Provider) SetSession(session models.Session) error { return SetSession(session) }
func (Provider) DeleteSession() error                    { return DeleteSession() }
