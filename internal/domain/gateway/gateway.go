// Package gateway defines the interfaces for the remote backend resources.
// These interfaces act as a contract between the application layer and the
// transport layer: one implementation speaks HTTP to the real backend, the
// other serves in-memory fixtures. The implementation is chosen at
// composition time, never by branching inside a call.
package gateway

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the backend reports a missing resource.
var ErrNotFound = errors.New("resource not found")

// ErrUnauthorized is returned when the backend rejects the bearer token.
var ErrUnauthorized = errors.New("unauthorized")

// StatusMessage is the backend's generic mutation acknowledgement.
type StatusMessage struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type tokenKey struct{}

// WithToken returns a context carrying the bearer token for the request.
// The HTTP implementation attaches it as an Authorization header; the
// fixture implementation uses it to resolve the acting user.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext extracts the bearer token set by WithToken, or "".
func TokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(tokenKey{}).(string); ok {
		return token
	}

	return ""
}
