package service

import (
	"time"

	"marketfront/internal/domain/entity"
)

// TokenService mints and inspects the bearer tokens the fixture backend
// issues. Tokens from the real backend are opaque to this service except
// for expiry extraction, which the session manager uses to bound the
// cookie lifetime.
type TokenService interface {
	// Issue creates a signed token for the given user.
	Issue(user *entity.User) (string, error)

	// Inspect validates a token this service issued and returns the user
	// identity embedded in it.
	Inspect(tokenString string) (*entity.User, error)

	// ExpiryOf extracts the expiry claim from a token without verifying
	// the signature. Returns the zero time when no expiry can be read;
	// opaque backend tokens fall back to the configured cookie lifetime.
	ExpiryOf(tokenString string) time.Time
}
