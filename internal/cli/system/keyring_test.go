package system

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/julianstephens/moodpet/internal/cli"
	"github.com/julianstephens/moodpet/internal/keyring"
	"github.com/julianstephens/moodpet/internal/models"
)

func TestKeyringStatusCmd(t *testing.T) {
	gokeyring.MockInit()
	defer func() { _ = keyring.DeleteSession() }()

	t.Run("no session", func(t *testing.T) {
		_ = keyring.DeleteSession()
		if err := (&KeyringStatusCmd{}).Run(&cli.Context{}); err != nil {
			t.Errorf("KeyringStatusCmd.Run() error = %v, want nil", err)
		}
	})

	t.Run("session stored", func(t *testing.T) {
		if err := keyring.SetSession(models.Session{Token: "tok-1234", Email: "pat@example.com"}); err != nil {
			t.Fatalf("SetSession failed: %v", err)
		}
		if err := (&KeyringStatusCmd{}).Run(&cli.Context{}); err != nil {
			t.Errorf("KeyringStatusCmd.Run() error = %v, want nil", err)
		}
	})
}

func TestMaskToken(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"", "****"},
		{"abcd", "****"},
		{"0195f3c2-7d1e-7abc-9def-0123456789ab", "****89ab"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := maskToken(tt.token); got != tt.want {
				t.Errorf("maskToken(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}
