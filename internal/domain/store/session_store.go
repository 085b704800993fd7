// Package store defines the interface for the durable client-state store.
// It is the server-side counterpart of the browser's persisted key/value
// storage: sessions written here survive process restarts.
package store

import (
	"context"
	"errors"

	"marketfront/internal/domain/entity"
)

// ErrSessionNotFound is returned when no record exists for the session ID.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionCorrupted is returned when a stored record fails to parse.
// Callers treat this as an unauthenticated state and clear the session.
var ErrSessionCorrupted = errors.New("session record corrupted")

// SessionStore persists the token and user record of established sessions.
type SessionStore interface {
	// Save writes the session under its ID with a TTL matching the
	// session's remaining lifetime.
	Save(ctx context.Context, session *entity.Session) error

	// Load retrieves a session by ID. Returns ErrSessionNotFound when the
	// record is absent or expired, ErrSessionCorrupted when it exists but
	// fails to parse.
	Load(ctx context.Context, sessionID string) (*entity.Session, error)

	// Delete removes the session record. Deleting an absent record is not
	// an error.
	Delete(ctx context.Context, sessionID string) error
}
