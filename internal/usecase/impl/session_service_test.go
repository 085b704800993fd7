package impl

import (
	"context"
	"testing"
	"time"

	"marketfront/config"
	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/store"
	infrasession "marketfront/internal/infra/session"
	"marketfront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTokens implements service.TokenService with a fixed expiry.
type stubTokens struct {
	expiry time.Time
}

func (s *stubTokens) Issue(*entity.User) (string, error) {
	return "stub-token", nil
}

func (s *stubTokens) Inspect(string) (*entity.User, error) {
	return nil, errors.New("not issued by this service")
}

func (s *stubTokens) ExpiryOf(string) time.Time {
	return s.expiry
}

func newSessionService(sessionStore store.SessionStore, tokens *stubTokens, maxAge time.Duration) usecase.SessionUsecase {
	cfg := &config.Config{}
	cfg.Session.MaxAge = maxAge

	return NewSessionService(SessionServiceParams{
		Store:        sessionStore,
		TokenService: tokens,
		Config:       cfg,
		Logger:       testLogger(),
	})
}

func TestEstablishWritesStoreAndCache(t *testing.T) {
	sessionStore := infrasession.NewMemoryStore()
	srv := newSessionService(sessionStore, &stubTokens{}, time.Hour)

	user := &entity.User{ID: 1, Username: "customer", Role: entity.RoleCustomer}
	session, err := srv.Establish(context.Background(), "token-1", user)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "token-1", session.Token)

	// Durable record exists independently of the cache.
	stored, err := sessionStore.Load(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.Token, stored.Token)
	assert.Equal(t, user.ID, stored.User.ID)

	resolved, err := srv.Resolve(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, resolved.ID)
}

func TestEstablishBoundsExpiryToToken(t *testing.T) {
	tokenExpiry := time.Now().Add(10 * time.Minute)
	srv := newSessionService(infrasession.NewMemoryStore(), &stubTokens{expiry: tokenExpiry}, 24*time.Hour)

	session, err := srv.Establish(context.Background(), "short-lived", &entity.User{ID: 1})
	require.NoError(t, err)
	assert.WithinDuration(t, tokenExpiry, session.ExpiresAt, time.Second)
}

func TestResolveFallsBackToStore(t *testing.T) {
	sessionStore := infrasession.NewMemoryStore()
	seeded := &entity.Session{
		ID:        "restored",
		Token:     "token-r",
		User:      entity.User{ID: 2, Role: entity.RoleVendor},
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, sessionStore.Save(context.Background(), seeded))

	srv := newSessionService(sessionStore, &stubTokens{}, time.Hour)
	resolved, err := srv.Resolve(context.Background(), "restored")
	require.NoError(t, err)
	assert.Equal(t, int64(2), resolved.User.ID)
}

func TestResolveUnknownSession(t *testing.T) {
	srv := newSessionService(infrasession.NewMemoryStore(), &stubTokens{}, time.Hour)

	_, err := srv.Resolve(context.Background(), "missing")
	assert.True(t, errors.Is(err, store.ErrSessionNotFound))

	_, err = srv.Resolve(context.Background(), "")
	assert.True(t, errors.Is(err, store.ErrSessionNotFound))
}

func TestResolveClearsCorruptedRecord(t *testing.T) {
	sessionStore := infrasession.NewMemoryStore()
	seeded := &entity.Session{
		ID:        "garbled",
		Token:     "token-g",
		User:      entity.User{ID: 3},
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, sessionStore.Save(context.Background(), seeded))
	sessionStore.(interface{ Corrupt(string) }).Corrupt("garbled")

	srv := newSessionService(sessionStore, &stubTokens{}, time.Hour)

	// A record that fails to parse reads as logged out, not as an error page.
	_, err := srv.Resolve(context.Background(), "garbled")
	assert.True(t, errors.Is(err, store.ErrSessionNotFound))

	// And the record is gone, so the next read misses cleanly.
	_, err = sessionStore.Load(context.Background(), "garbled")
	assert.True(t, errors.Is(err, store.ErrSessionNotFound))
}

func TestClearRemovesEverywhere(t *testing.T) {
	sessionStore := infrasession.NewMemoryStore()
	srv := newSessionService(sessionStore, &stubTokens{}, time.Hour)

	session, err := srv.Establish(context.Background(), "token-x", &entity.User{ID: 4})
	require.NoError(t, err)

	require.NoError(t, srv.Clear(context.Background(), session.ID))

	_, err = srv.Resolve(context.Background(), session.ID)
	assert.True(t, errors.Is(err, store.ErrSessionNotFound))
	_, err = sessionStore.Load(context.Background(), session.ID)
	assert.True(t, errors.Is(err, store.ErrSessionNotFound))
}

func TestResolveExpiredSession(t *testing.T) {
	sessionStore := infrasession.NewMemoryStore()
	srv := newSessionService(sessionStore, &stubTokens{}, time.Hour)

	session, err := srv.Establish(context.Background(), "token-e", &entity.User{ID: 5})
	require.NoError(t, err)

	// Rewind the cached record's expiry.
	session.ExpiresAt = time.Now().Add(-time.Minute)

	_, err = srv.Resolve(context.Background(), session.ID)
	assert.True(t, errors.Is(err, store.ErrSessionNotFound))
}
