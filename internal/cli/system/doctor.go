package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/julianstephens/moodpet/internal/cli"
	"github.com/julianstephens/moodpet/internal/keyring"
	"github.com/julianstephens/moodpet/internal/logger"
	"github.com/julianstephens/moodpet/internal/models"
)

const doctorTimeout = 5 * time.Second

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: Config directory writable
	if err := checkConfigDir(ctx); err != nil {
		fmt.Printf("❌ Config directory: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Config directory: OK (%s)\n", ctx.Config.ConfigDir)
	}

	// Check 2: Keyring available
	keyringOK := keyring.IsAvailable()
	if keyringOK {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("❌ OS keyring: FAIL\n")
		fmt.Printf("   Error: %v\n", keyring.ErrKeyringUnavailable)
		hasError = true
	}

	// Check 3: Stored session (warning only)
	var session models.Session
	if keyringOK {
		s, err := checkSession()
		if err != nil {
			fmt.Printf("⚠ Stored session: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Stored session: OK (%s)\n", displayEmail(s.Email))
			session = s
		}
	} else {
		fmt.Printf("⊘ Stored session: SKIPPED (keyring not available)\n")
	}

	// Check 4: Backend reachable
	backendOK := false
	if err := checkBackendReachable(ctx); err != nil {
		fmt.Printf("❌ Backend reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Backend reachable: OK (%s)\n", ctx.Config.BackendURL)
		backendOK = true
	}

	// Check 5: Token accepted (only with a session and a reachable backend)
	if session.Authenticated() && backendOK {
		if err := checkTokenAccepted(ctx, session); err != nil {
			fmt.Printf("❌ Token accepted: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Token accepted: OK\n")
		}
	} else {
		fmt.Printf("⊘ Token accepted: SKIPPED (no session or backend not reachable)\n")
	}

	// Check 6: Clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	fmt.Println()
	fmt.Printf("Logs: %s\n", logger.File(ctx.Config.ConfigDir))
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkConfigDir(ctx *cli.Context) error {
	if err := os.MkdirAll(ctx.Config.ConfigDir, 0700); err != nil {
		return fmt.Errorf("failed to create %s: %w", ctx.Config.ConfigDir, err)
	}
	f, err := os.CreateTemp(ctx.Config.ConfigDir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("config directory is not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

func checkSession() (models.Session, error) {
	s, err := keyring.GetSession()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return models.Session{}, errors.New("no session stored - log in with 'moodpet login'")
		}
		return models.Session{}, err
	}
	return s, nil
}

func checkBackendReachable(ctx *cli.Context) error {
	c, cancel := context.WithTimeout(context.Background(), doctorTimeout)
	defer cancel()

	if _, err := ctx.Gateway.Ping(c); err != nil {
		return err
	}
	return nil
}

func checkTokenAccepted(ctx *cli.Context, session models.Session) error {
	c, cancel := context.WithTimeout(context.Background(), doctorTimeout)
	defer cancel()

	_, err := ctx.Gateway.LoadUserData(c, session.Token)
	return err
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
