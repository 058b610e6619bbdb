package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated is returned when the session could not be
	// resolved. The underlying cause is logged, not returned.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotOwner         = errors.New("only owners can list books")
	// ErrSessionChanged means a sign-in or logout happened while the
	// session was resolving, and the stale result was dropped.
	ErrSessionChanged = errors.New("session changed during resolution")
)

// AuthResolutionError is a failed identity lookup.
type AuthResolutionError struct {
	UserID string
	Err    error
}

func (e *AuthResolutionError) Error() string {
	return fmt.Sprintf("resolve identity %q: %v", e.UserID, e.Err)
}

func (e *AuthResolutionError) Unwrap() error { return e.Err }

// FetchError is a failed listing sync for one collection.
type FetchError struct {
	Collection string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s books: %v", e.Collection, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
