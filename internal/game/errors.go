package game

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports an unknown record id.
	ErrNotFound = errors.New("record not found")
	// ErrNoOpUpdate reports an update call with an empty payload.
	ErrNoOpUpdate = errors.New("no fields to update")
	// ErrInvalidRole reports an unrecognized role tag.
	ErrInvalidRole = errors.New("invalid role")
	// ErrCollaboratorUnavailable reports that the external summarizer could
	// not be reached (or is not configured). It is always recovered locally
	// via the deterministic fallback and never surfaces to API callers.
	ErrCollaboratorUnavailable = errors.New("summarizer unavailable")
	// ErrStoreUnavailable reports a persistence-layer failure. Kept distinct
	// from ErrNotFound so an unreachable database is never reported as a
	// missing record.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError names the offending field of a rejected draft or update.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

func invalidField(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// storeErr wraps a driver error as ErrStoreUnavailable.
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
