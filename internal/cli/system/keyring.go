package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/moodpet/internal/cli"
	"github.com/julianstephens/moodpet/internal/keyring"
)

// KeyringStatusCmd checks the availability of the OS keyring
type KeyringStatusCmd struct{}

func (cmd *KeyringStatusCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		fmt.Println("❌ OS keyring is not available on this system")
		return keyring.ErrKeyringUnavailable
	}
	fmt.Println("✓ OS keyring is available")

	session, err := keyring.GetSession()
	switch {
	case err == nil:
		fmt.Printf("✓ Session stored for %s (token %s)\n", displayEmail(session.Email), maskToken(session.Token))
	case errors.Is(err, keyring.ErrNotFound):
		fmt.Println("ℹ No session stored in keyring")
	default:
		fmt.Printf("⚠ Stored session is unreadable: %v\n", err)
	}
	return nil
}

// maskToken keeps only the last four characters of a token for display
func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}

func displayEmail(email string) string {
	if email == "" {
		return "an unknown email"
	}
	return email
}
