// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"marketfront/config"
	deliverycontext "marketfront/internal/delivery/context"
	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/service"
	"marketfront/internal/domain/store"
	"marketfront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface. It layers an
// in-process cache over the durable store so repeated lookups within an
// instance skip the store round trip.
type sessionService struct {
	store  store.SessionStore
	tokens service.TokenService
	maxAge time.Duration
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[string]*entity.Session
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Store        store.SessionStore
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		store:  params.Store,
		tokens: params.TokenService,
		maxAge: params.Config.Session.MaxAge,
		logger: params.Logger,
		cache:  make(map[string]*entity.Session),
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Establish creates the session record and writes it to the cache and the
// durable store in one step. The cookie mirror is the delivery layer's
// responsibility and must happen in the same request.
func (srv *sessionService) Establish(ctx context.Context, token string, user *entity.User) (*entity.Session, error) {
	now := time.Now()
	expiresAt := now.Add(srv.maxAge)

	// A token carrying its own expiry bounds the session lifetime.
	if tokenExpiry := srv.tokens.ExpiryOf(token); !tokenExpiry.IsZero() && tokenExpiry.Before(expiresAt) {
		expiresAt = tokenExpiry
	}

	session := &entity.Session{
		ID:        uuid.New().String(),
		Token:     token,
		User:      *user,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}

	if err := srv.store.Save(ctx, session); err != nil {
		srv.log(ctx).Error("Failed to persist session", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist session")
	}

	srv.mu.Lock()
	srv.cache[session.ID] = session
	srv.mu.Unlock()

	srv.log(ctx).Debug("Session established", slog.String("sessionID", session.ID), slog.Any("userID", user.ID))

	return session, nil
}

// Resolve answers from the cache when possible and falls back to the
// durable store. Expired and corrupted records are cleared on sight.
func (srv *sessionService) Resolve(ctx context.Context, sessionID string) (*entity.Session, error) {
	if sessionID == "" {
		return nil, errors.WithStack(store.ErrSessionNotFound)
	}

	srv.mu.RLock()
	cached, ok := srv.cache[sessionID]
	srv.mu.RUnlock()
	if ok {
		if cached.Expired(time.Now()) {
			_ = srv.Clear(ctx, sessionID)

			return nil, errors.WithStack(store.ErrSessionNotFound)
		}

		return cached, nil
	}

	session, err := srv.store.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionCorrupted) {
			// A record that fails to parse is dropped silently; the visitor
			// simply continues logged out.
			srv.log(ctx).Warn("Clearing corrupted session record", slog.String("sessionID", sessionID))
			_ = srv.Clear(ctx, sessionID)

			return nil, errors.WithStack(store.ErrSessionNotFound)
		}
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, errors.WithStack(store.ErrSessionNotFound)
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	if session.Expired(time.Now()) {
		_ = srv.Clear(ctx, sessionID)

		return nil, errors.WithStack(store.ErrSessionNotFound)
	}

	srv.mu.Lock()
	srv.cache[sessionID] = session
	srv.mu.Unlock()

	return session, nil
}

// Clear removes the session from the cache and the durable store.
func (srv *sessionService) Clear(ctx context.Context, sessionID string) error {
	srv.mu.Lock()
	delete(srv.cache, sessionID)
	srv.mu.Unlock()

	if err := srv.store.Delete(ctx, sessionID); err != nil {
		srv.log(ctx).Error("Failed to delete session record", slog.String("sessionID", sessionID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete session record")
	}

	return nil
}
