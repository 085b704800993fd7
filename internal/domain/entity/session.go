package entity

import (
	"encoding/json"
	"time"
)

// SessionState tracks where a session is in its lifecycle.
type SessionState string

const (
	// SessionAnonymous means no authenticated user is attached.
	SessionAnonymous SessionState = "ANONYMOUS"
	// SessionAuthenticating means a login attempt is in flight.
	SessionAuthenticating SessionState = "AUTHENTICATING"
	// SessionAuthenticated means a token and user record are held.
	SessionAuthenticated SessionState = "AUTHENTICATED"
)

// Session is the combination of bearer token and user identity held after
// a successful login. It is duplicated into three places which must always
// change together: process memory, the durable store, and the user cookie.
type Session struct {
	ID        string    `json:"id"`        // Opaque session identifier, also the durable-store key.
	Token     string    `json:"token"`     // Bearer token issued by the backend. Treated as opaque.
	User      User      `json:"user"`      // The identity record returned by the backend.
	CreatedAt time.Time `json:"createdAt"` // When the session was established.
	ExpiresAt time.Time `json:"expiresAt"` // When the cookie mirror and durable record lapse.
}

// Expired reports whether the session's stored lifetime has passed.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// UserJSON returns the serialized user record exactly as it is mirrored
// into the route-guard cookie and the durable store.
func (s *Session) UserJSON() (string, error) {
	raw, err := json.Marshal(s.User)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}
