package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUserNotReady signals that the per-user routing identifier has not
// resolved yet. The condition is retryable: fetch user details again and
// resubmit.
var ErrUserNotReady = errors.New("user details not loaded, retry after refreshing")

// AuthError indicates a missing, rejected, or expired credential. Callers
// should prompt for a new login.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AuthError) Unwrap() error { return e.Err }

// NetworkError indicates a transport or connectivity failure. The operation
// may be retried as-is.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ValidationError indicates a payload rejected either locally before any
// network call or by the server. Fields holds the wire-format names of the
// offending fields when known.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
	}
	return e.Message
}

// UploadError indicates the poster was rejected by the server or the
// transfer failed. The poster selection must be redone.
type UploadError struct {
	Message string
	Err     error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UploadError) Unwrap() error { return e.Err }
