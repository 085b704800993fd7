package auth

import (
	"testing"
	"time"

	"marketfront/config"
	"marketfront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-signing-secret-long-enough-for-hs256"
	cfg.Session.MaxAge = time.Hour

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndInspect(t *testing.T) {
	svc := newTestJWTService(t)

	user := &entity.User{
		ID:       7,
		Username: "asha",
		Email:    "asha@example.com",
		Role:     entity.RoleVendor,
	}

	token, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Username, got.Username)
	assert.Equal(t, entity.RoleVendor, got.Role)
}

func TestJWTService_InspectRejectsTampering(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.Issue(&entity.User{ID: 1, Role: entity.RoleCustomer})
	require.NoError(t, err)

	_, err = svc.Inspect(token + "x")
	assert.Error(t, err)

	_, err = svc.Inspect("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_ExpiryOf(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.Issue(&entity.User{ID: 1})
	require.NoError(t, err)

	exp := svc.ExpiryOf(token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	// Opaque tokens from the real backend carry no readable expiry.
	assert.True(t, svc.ExpiryOf("opaque-backend-token").IsZero())
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
