package gateway

import (
	"errors"
	"fmt"
)

// Failure variants for backend calls. Every request failure returned by LoadUserData
// and SaveUserData matches exactly one of these with errors.Is.
var (
	// ErrUnauthorized means the backend rejected the bearer token (401/403)
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnreachable means the request never produced an HTTP response
	ErrUnreachable = errors.New("backend unreachable")
	// ErrMalformedResponse means the response body did not match the expected schema
	ErrMalformedResponse = errors.New("malformed response")
	// ErrUnexpectedStatus covers every other non-success status
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrNoSession is returned when an operation needs a token and none was given
	ErrNoSession = errors.New("no active session")
)

const (
	opLoad = "load user data"
	opSave = "save user data"
	opPing = "ping backend"
)

// RequestError describes a failed backend call
type RequestError struct {
	Op         string
	Kind       error // one of the failure variants above
	StatusCode int   // 0 when no response was received
	Err        error // underlying cause, may be nil
}

func (e *RequestError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Kind)
	if e.StatusCode > 0 {
		msg += fmt.Sprintf(" (HTTP %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the failure variant and the cause to errors.Is/As
func (e *RequestError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func classifyStatus(op string, status int) *RequestError {
	kind := ErrUnexpectedStatus
	if status == 401 || status == 403 {
		kind = ErrUnauthorized
	}
	return &RequestError{Op: op, Kind: kind, StatusCode: status}
}
