// Package session mirrors established sessions into cookies. Together with
// the usecase cache and the durable store these cookies form the session
// triple; every write and clear here must pair with the store-side call.
package session

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"marketfront/config"
	"marketfront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Manager writes and clears the session cookie pair.
type Manager struct {
	cfg *config.Config
}

// NewManager is the constructor for Manager, injected by Fx.
func NewManager(cfg *config.Config) *Manager {
	return &Manager{cfg: cfg}
}

// Write sets both cookies for an established session: the opaque session
// identifier and the URL-encoded user record the route guard reads.
func (m *Manager) Write(c echo.Context, sess *entity.Session) error {
	userJSON, err := sess.UserJSON()
	if err != nil {
		return errors.Wrap(err, "serialize user for cookie")
	}

	maxAge := m.cookieMaxAge(sess)

	c.SetCookie(&http.Cookie{
		Name:     m.cfg.Session.IDCookie,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	// Not HttpOnly: the browser-side app reads this one to render the
	// signed-in state without a round trip.
	c.SetCookie(&http.Cookie{
		Name:     m.cfg.Session.UserCookie,
		Value:    url.QueryEscape(userJSON),
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   m.cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Clear expires both cookies. Used on logout and whenever a stored session
// turns out to be missing or corrupt.
func (m *Manager) Clear(c echo.Context) {
	for _, name := range []string{m.cfg.Session.IDCookie, m.cfg.Session.UserCookie} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			Secure:   m.cfg.Session.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// SessionID reads the session identifier cookie, or "" when absent.
func (m *Manager) SessionID(c echo.Context) string {
	cookie, err := c.Cookie(m.cfg.Session.IDCookie)
	if err != nil || cookie == nil {
		return ""
	}

	return cookie.Value
}

// User decodes the mirrored user record from the guard cookie. A missing
// cookie returns (nil, nil); a present but unparseable one returns an
// error so the caller can clear the stale session artifacts.
func (m *Manager) User(c echo.Context) (*entity.User, error) {
	cookie, err := c.Cookie(m.cfg.Session.UserCookie)
	if err != nil || cookie == nil || cookie.Value == "" {
		return nil, nil
	}

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil, errors.Wrap(err, "unescape user cookie")
	}

	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, errors.Wrap(err, "parse user cookie")
	}

	return &user, nil
}

// cookieMaxAge bounds the cookie lifetime by the session's own expiry so
// the cookie never outlives the durable record.
func (m *Manager) cookieMaxAge(sess *entity.Session) int {
	maxAge := int(m.cfg.Session.MaxAge.Seconds())
	if !sess.ExpiresAt.IsZero() {
		if remaining := int(time.Until(sess.ExpiresAt).Seconds()); remaining > 0 && remaining < maxAge {
			maxAge = remaining
		}
	}

	return maxAge
}
