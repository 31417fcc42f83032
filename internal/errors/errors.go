// Package errors formats command errors for the terminal and exits.
package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/moodpet/internal/backend/store"
	"github.com/julianstephens/moodpet/internal/gateway"
	"github.com/julianstephens/moodpet/internal/keyring"
	"github.com/julianstephens/moodpet/internal/logger"
	"github.com/julianstephens/moodpet/internal/shop"
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if hint := Hint(err); hint != "" {
		msg += "\n  Hint: " + hint
	}
	return msg
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint suggests a next step for errors the user can act on
func Hint(err error) string {
	switch {
	case errors.Is(err, keyring.ErrKeyringUnavailable):
		return "the OS keyring is unavailable; run 'moodpet keyring status' for details"
	case errors.Is(err, keyring.ErrCorruptSession):
		return "run 'moodpet logout' and log in again"
	case errors.Is(err, gateway.ErrUnauthorized):
		return "the backend rejected your token; run 'moodpet login' again"
	case errors.Is(err, gateway.ErrUnreachable):
		return "check MOODPET_BACKEND_URL or --backend-url, or run 'moodpet doctor'"
	case errors.Is(err, gateway.ErrUnexpectedStatus):
		return "the backend could not handle the request; run 'moodpet doctor'"
	case errors.Is(err, gateway.ErrMalformedResponse):
		return "the backend answered with data moodpet does not understand"
	case errors.Is(err, shop.ErrUnknownItem):
		return "run 'moodpet shop' to list item ids"
	case errors.Is(err, store.ErrUserExists):
		return "each email can only be registered once"
	default:
		return ""
	}
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
