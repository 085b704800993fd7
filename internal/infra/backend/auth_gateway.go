package backend

import (
	"context"
	"net/url"

	"marketfront/internal/domain/gateway"

	"github.com/pkg/errors"
)

type authGateway struct {
	client *Client
}

// NewAuthGateway returns the HTTP implementation of the auth resource.
func NewAuthGateway(client *Client) gateway.AuthGateway {
	return &authGateway{client: client}
}

func (g *authGateway) Login(ctx context.Context, creds gateway.Credentials) (*gateway.AuthResult, error) {
	result := &gateway.AuthResult{}
	if err := g.client.Post(ctx, "/auth/login", creds, result); err != nil {
		return nil, errors.WithStack(err)
	}
	// The login endpoint returns token+user without a success flag.
	result.Success = result.Token != ""

	return result, nil
}

func (g *authGateway) Register(ctx context.Context, payload gateway.RegistrationPayload) (*gateway.AuthResult, error) {
	result := &gateway.AuthResult{}
	if err := g.client.Post(ctx, "/auth/register", payload, result); err != nil {
		return nil, errors.WithStack(err)
	}

	return result, nil
}

func (g *authGateway) ForgotPassword(ctx context.Context, email string) (*gateway.StatusMessage, error) {
	msg := &gateway.StatusMessage{}
	if err := g.client.Post(ctx, "/auth/forgot-password", map[string]string{"email": email}, msg); err != nil {
		return nil, errors.WithStack(err)
	}

	return msg, nil
}

func (g *authGateway) ResetPassword(ctx context.Context, token, newPassword string) (*gateway.StatusMessage, error) {
	body := map[string]string{"token": token, "newPassword": newPassword}
	msg := &gateway.StatusMessage{}
	if err := g.client.Post(ctx, "/auth/reset-password", body, msg); err != nil {
		return nil, errors.WithStack(err)
	}

	return msg, nil
}

func (g *authGateway) VerifyEmail(ctx context.Context, token string) (*gateway.StatusMessage, error) {
	query := url.Values{"token": {token}}
	msg := &gateway.StatusMessage{}
	if err := g.client.Get(ctx, "/auth/verify-email", query, msg); err != nil {
		return nil, errors.WithStack(err)
	}

	return msg, nil
}
