package middleware

import (
	"log/slog"

	deliverycontext "marketfront/internal/delivery/context"
	"marketfront/internal/delivery/http/session"
	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/domain/store"
	"marketfront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// keySession is the echo.Context key holding the resolved *entity.Session.
const keySession = "session"

// SessionMiddleware resolves the session cookie into an authenticated
// session and plants the bearer token on the request context, so every
// gateway call downstream acts as the signed-in user.
type SessionMiddleware struct {
	sessions usecase.SessionUsecase
	manager  *session.Manager
	logger   *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase, manager *session.Manager, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, manager: manager, logger: logger}
}

// Resolve loads the session named by the cookie, if any. A cookie pointing
// at a missing or corrupt record is cleared and the visitor continues
// anonymously; resolution never fails a request by itself.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := m.manager.SessionID(c)
		if sessionID == "" {
			return next(c)
		}

		ctx := c.Request().Context()
		sess, err := m.sessions.Resolve(ctx, sessionID)
		if err != nil {
			if !errors.Is(err, store.ErrSessionNotFound) {
				logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)
				logger.Warn("Session resolution failed", slog.Any("error", err))
			}
			m.manager.Clear(c)

			return next(c)
		}

		c.Set(keySession, sess)
		c.SetRequest(c.Request().WithContext(gateway.WithToken(ctx, sess.Token)))

		return next(c)
	}
}

// SessionFromContext returns the session resolved for this request, or
// nil for anonymous visitors.
func SessionFromContext(c echo.Context) *entity.Session {
	if sess, ok := c.Get(keySession).(*entity.Session); ok {
		return sess
	}

	return nil
}
