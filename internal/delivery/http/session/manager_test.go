package session

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"marketfront/config"
	"marketfront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.UserCookie = "user"
	cfg.Session.IDCookie = "session_id"
	cfg.Session.MaxAge = 24 * time.Hour

	return cfg
}

func newTestContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testSession() *entity.Session {
	return &entity.Session{
		ID:    "sess-1",
		Token: "token-1",
		User: entity.User{
			ID:       1,
			Username: "customer",
			Role:     entity.RoleCustomer,
		},
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
}

func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}

	return nil
}

func TestWriteSetsBothCookies(t *testing.T) {
	manager := NewManager(newTestConfig())
	c, rec := newTestContext(httptest.NewRequest(http.MethodPost, "/auth/login", nil))

	require.NoError(t, manager.Write(c, testSession()))

	idCookie := cookieByName(rec, "session_id")
	require.NotNil(t, idCookie)
	assert.Equal(t, "sess-1", idCookie.Value)
	assert.True(t, idCookie.HttpOnly)

	userCookie := cookieByName(rec, "user")
	require.NotNil(t, userCookie)
	assert.False(t, userCookie.HttpOnly)

	raw, err := url.QueryUnescape(userCookie.Value)
	require.NoError(t, err)
	assert.Contains(t, raw, `"username":"customer"`)
	assert.Contains(t, raw, `"role":"CUSTOMER"`)
}

func TestWriteBoundsCookieLifetimeToSessionExpiry(t *testing.T) {
	manager := NewManager(newTestConfig())
	c, rec := newTestContext(httptest.NewRequest(http.MethodPost, "/auth/login", nil))

	sess := testSession()
	sess.ExpiresAt = time.Now().Add(time.Minute)
	require.NoError(t, manager.Write(c, sess))

	idCookie := cookieByName(rec, "session_id")
	require.NotNil(t, idCookie)
	assert.LessOrEqual(t, idCookie.MaxAge, 60)
	assert.Positive(t, idCookie.MaxAge)
}

func TestClearExpiresBothCookies(t *testing.T) {
	manager := NewManager(newTestConfig())
	c, rec := newTestContext(httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	manager.Clear(c)

	for _, name := range []string{"session_id", "user"} {
		cookie := cookieByName(rec, name)
		require.NotNil(t, cookie, name)
		assert.Negative(t, cookie.MaxAge, name)
		assert.Empty(t, cookie.Value, name)
	}
}

func TestSessionIDReadsCookie(t *testing.T) {
	manager := NewManager(newTestConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-9"})
	c, _ := newTestContext(req)

	assert.Equal(t, "sess-9", manager.SessionID(c))
}

func TestSessionIDMissingCookie(t *testing.T) {
	manager := NewManager(newTestConfig())
	c, _ := newTestContext(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, manager.SessionID(c))
}

func TestUserRoundTrip(t *testing.T) {
	manager := NewManager(newTestConfig())

	writeCtx, rec := newTestContext(httptest.NewRequest(http.MethodPost, "/auth/login", nil))
	require.NoError(t, manager.Write(writeCtx, testSession()))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookieByName(rec, "user"))
	readCtx, _ := newTestContext(req)

	user, err := manager.User(readCtx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "customer", user.Username)
	assert.Equal(t, entity.RoleCustomer, user.Role)
}

func TestUserCorruptCookie(t *testing.T) {
	manager := NewManager(newTestConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "user", Value: url.QueryEscape("{broken")})
	c, _ := newTestContext(req)

	user, err := manager.User(c)
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestUserAbsentCookie(t *testing.T) {
	manager := NewManager(newTestConfig())
	c, _ := newTestContext(httptest.NewRequest(http.MethodGet, "/", nil))

	user, err := manager.User(c)
	assert.NoError(t, err)
	assert.Nil(t, user)
}
