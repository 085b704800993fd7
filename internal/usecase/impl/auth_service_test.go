package impl

import (
	"context"
	"testing"

	"marketfront/internal/domain/entity"
	domainerrors "marketfront/internal/domain/errors"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(authGW gateway.AuthGateway, vendorGW gateway.VendorGateway, sessions usecase.SessionUsecase) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		AuthGateway:   authGW,
		VendorGateway: vendorGW,
		Sessions:      sessions,
		Logger:        testLogger(),
	})
}

func TestClassifyIdentifier(t *testing.T) {
	tests := []struct {
		name         string
		identifier   string
		wantEmail    string
		wantUsername string
	}{
		{name: "email form", identifier: "jane@example.com", wantEmail: "jane@example.com"},
		{name: "username form", identifier: "jane", wantUsername: "jane"},
		{name: "at sign anywhere means email", identifier: "@oddball", wantEmail: "@oddball"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := classifyIdentifier(tt.identifier, "secret")
			assert.Equal(t, tt.wantEmail, creds.Email)
			assert.Equal(t, tt.wantUsername, creds.Username)
			assert.Equal(t, "secret", creds.Password)
		})
	}
}

func TestLoginEstablishesSession(t *testing.T) {
	user := &entity.User{ID: 7, Username: "jane", Role: entity.RoleCustomer}
	var gotCreds gateway.Credentials
	authGW := &stubAuthGateway{
		LoginFn: func(_ context.Context, creds gateway.Credentials) (*gateway.AuthResult, error) {
			gotCreds = creds

			return &gateway.AuthResult{Success: true, Token: "token-7", User: user}, nil
		},
	}
	sessions := &stubSessions{}
	srv := newAuthService(authGW, &stubVendorGateway{}, sessions)

	out, err := srv.Login(context.Background(), usecase.LoginInput{Identifier: "jane@example.com", Password: "pw"})
	require.NoError(t, err)
	require.NotNil(t, out.Session)
	assert.Equal(t, "token-7", out.Session.Token)
	assert.Equal(t, int64(7), out.Session.User.ID)
	assert.Equal(t, "jane@example.com", gotCreds.Email)
	assert.Empty(t, gotCreds.Username)
	require.Len(t, sessions.established, 1)
}

func TestLoginWithoutTokenFails(t *testing.T) {
	authGW := &stubAuthGateway{
		LoginFn: func(context.Context, gateway.Credentials) (*gateway.AuthResult, error) {
			return &gateway.AuthResult{Success: false, Message: "pending verification"}, nil
		},
	}
	sessions := &stubSessions{}
	srv := newAuthService(authGW, &stubVendorGateway{}, sessions)

	_, err := srv.Login(context.Background(), usecase.LoginInput{Identifier: "jane", Password: "pw"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Empty(t, sessions.established)
}

func TestLoginValidatesInput(t *testing.T) {
	srv := newAuthService(&stubAuthGateway{}, &stubVendorGateway{}, &stubSessions{})

	_, err := srv.Login(context.Background(), usecase.LoginInput{Identifier: "  ", Password: "pw"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRegisterAutoAuthenticates(t *testing.T) {
	authGW := &stubAuthGateway{
		RegisterFn: func(_ context.Context, payload gateway.RegistrationPayload) (*gateway.AuthResult, error) {
			return &gateway.AuthResult{
				Success: true,
				Message: "Registration successful",
				Token:   "fresh-token",
				User:    &entity.User{ID: 9, Username: payload.Username, Role: payload.Role},
			}, nil
		},
	}
	sessions := &stubSessions{}
	srv := newAuthService(authGW, &stubVendorGateway{}, sessions)

	out, err := srv.Register(context.Background(), usecase.RegisterInput{
		Username: "jane", Email: "jane@example.com", Password: "pw", Role: entity.RoleCustomer,
	})
	require.NoError(t, err)
	require.NotNil(t, out.Session)
	assert.Equal(t, "fresh-token", out.Session.Token)
	require.Len(t, sessions.established, 1)
}

func TestRegisterWithoutTokenDefersAuth(t *testing.T) {
	authGW := &stubAuthGateway{
		RegisterFn: func(context.Context, gateway.RegistrationPayload) (*gateway.AuthResult, error) {
			return &gateway.AuthResult{Success: true, Message: "Check your email to verify your account"}, nil
		},
	}
	sessions := &stubSessions{}
	srv := newAuthService(authGW, &stubVendorGateway{}, sessions)

	out, err := srv.Register(context.Background(), usecase.RegisterInput{
		Username: "jane", Email: "jane@example.com", Password: "pw",
	})
	require.NoError(t, err)
	assert.Nil(t, out.Session)
	assert.Equal(t, "Check your email to verify your account", out.Message)
	assert.Empty(t, sessions.established)
}

func TestLogoutClearsSession(t *testing.T) {
	sessions := &stubSessions{}
	srv := newAuthService(&stubAuthGateway{}, &stubVendorGateway{}, sessions)

	require.NoError(t, srv.Logout(context.Background(), "session-1"))
	assert.Equal(t, []string{"session-1"}, sessions.cleared)
}

func TestVendorDetailsDegradesToNil(t *testing.T) {
	vendorGW := &stubVendorGateway{
		ProfileFn: func(context.Context) (*entity.VendorProfile, error) {
			return nil, errors.New("backend down")
		},
	}
	srv := newAuthService(&stubAuthGateway{}, vendorGW, &stubSessions{})

	assert.Nil(t, srv.VendorDetails(context.Background()))
}

func TestVendorDetailsReturnsProfile(t *testing.T) {
	vendorGW := &stubVendorGateway{
		ProfileFn: func(context.Context) (*entity.VendorProfile, error) {
			return &entity.VendorProfile{ID: 5, StoreName: "ElectroHub"}, nil
		},
	}
	srv := newAuthService(&stubAuthGateway{}, vendorGW, &stubSessions{})

	profile := srv.VendorDetails(context.Background())
	require.NotNil(t, profile)
	assert.Equal(t, "ElectroHub", profile.StoreName)
}
