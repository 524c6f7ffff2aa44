package services

import (
	"errors"
	"fmt"
	"strings"

	"shomadhan-be/models"
)

// ValidationError reports missing or malformed input. Fields names the
// offending request fields so the client can correct them.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = "invalid input"
	}
	if len(e.Fields) > 0 {
		return msg + ": " + strings.Join(e.Fields, ", ")
	}
	return msg
}

// NotFoundError means the tracking id resolves to no complaint
type NotFoundError struct {
	TrackingID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("complaint %s not found", e.TrackingID)
}

// AuthorizationError means the actor's role may not perform the transition
type AuthorizationError struct {
	Role models.Role
}

func (e *AuthorizationError) Error() string {
	if e.Role == "" {
		return "transition requires an authenticated operator"
	}
	return fmt.Sprintf("role %q may not update complaint status", e.Role)
}

// StorageError wraps a transient persistence failure. Callers may retry;
// the two-write invariants are never left half-applied.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ErrDuplicateTrackingID is returned by the store when a generated tracking
// id collides with an existing one. The lifecycle service regenerates and
// retries; it never reaches API callers.
var ErrDuplicateTrackingID = errors.New("tracking id already exists")
