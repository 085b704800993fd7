package usecase

import (
	"context"

	"marketfront/internal/domain/entity"
)

// SessionUsecase maintains authenticated sessions across an in-process
// cache and the durable store. The delivery layer mirrors each session
// into cookies, completing the three places a login is recorded.
type SessionUsecase interface {
	// Establish creates and persists a session for a freshly issued token.
	Establish(ctx context.Context, token string, user *entity.User) (*entity.Session, error)

	// Resolve loads the session for a cookie-provided ID. A corrupted
	// record is cleared and reported as store.ErrSessionNotFound, so the
	// caller treats the visitor as logged out rather than failing.
	Resolve(ctx context.Context, sessionID string) (*entity.Session, error)

	// Clear removes the session from the cache and the durable store.
	Clear(ctx context.Context, sessionID string) error
}
