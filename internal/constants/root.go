package constants

import (
	"time"
)

// SessionState represents the active view of the TUI application
type SessionState int

// AuthState represents where the controller sits on the authentication axis
type AuthState int

const (
	AppName            = "moodpet"
	EnvPrefix          = "MOODPET"
	DefaultKeyringUser = "session"
	DefaultConfigDir   = "~/.config/moodpet"
	Version            = "v0.3.0"

	// Backend function paths, relative to the configured backend URL
	FetchUserDataPath = "/functions/v1/fetch-user-data"
	SaveUserDataPath  = "/functions/v1/save-user-data"

	// HTTP defaults
	DefaultHTTPTimeout = 15 * time.Second
	DefaultBackendURL  = "http://localhost:8787"
	DefaultDevAddr     = ":8787"
	DefaultDevDBPath   = "~/.config/moodpet/backend.db"
)

const (
	// Session States (tab order matters: it is the render order of the tab bar)
	StateMood SessionState = iota
	StatePet
	StateShop
	StateHistory
	StateAccount
	StateLogin
	StateConfirmLogout
)

const (
	AuthBootstrapping AuthState = iota
	AuthAnonymous
	AuthAuthenticated
)

func (s AuthState) String() string {
	switch s {
	case AuthBootstrapping:
		return "bootstrapping"
	case AuthAnonymous:
		return "anonymous"
	case AuthAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}
