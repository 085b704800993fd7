package fixture

import (
	"context"

	"marketfront/internal/domain/entity"
	domainerrors "marketfront/internal/domain/errors"
	"marketfront/internal/domain/gateway"

	"github.com/pkg/errors"
)

type authGateway struct {
	f *Fixture
}

// NewAuthGateway returns the fixture implementation of the auth resource.
func NewAuthGateway(f *Fixture) gateway.AuthGateway {
	return &authGateway{f: f}
}

func (g *authGateway) Login(_ context.Context, creds gateway.Credentials) (*gateway.AuthResult, error) {
	user := g.f.findUser(creds.Email, creds.Username)
	if user == nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	g.f.mu.RLock()
	hash := g.f.passwords[user.ID]
	g.f.mu.RUnlock()
	if !g.f.hasher.Check(creds.Password, hash) {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := g.f.tokens.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "issue token")
	}

	return &gateway.AuthResult{Success: true, Token: token, User: user}, nil
}

func (g *authGateway) Register(_ context.Context, payload gateway.RegistrationPayload) (*gateway.AuthResult, error) {
	if payload.Username == "" || payload.Email == "" || payload.Password == "" {
		return &gateway.AuthResult{
			Success: false,
			Message: "Missing required fields for registration",
		}, nil
	}
	if g.f.findUser(payload.Email, payload.Username) != nil {
		return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
	}

	hash, err := g.f.hasher.Hash(payload.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	g.f.mu.Lock()
	user := &entity.User{
		ID:          g.f.nextID(),
		Username:    payload.Username,
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		Email:       payload.Email,
		PhoneNumber: payload.PhoneNumber,
		Role:        payload.Role,
		Address:     payload.Address,
	}
	g.f.users = append(g.f.users, user)
	g.f.passwords[user.ID] = hash

	message := "Registration successful"
	if payload.Role == entity.RoleVendor {
		message = "Vendor registration successful"
		g.f.vendors = append(g.f.vendors, &entity.VendorProfile{
			ID:               g.f.nextID(),
			UserID:           user.ID,
			StoreName:        payload.StoreName,
			StoreDescription: payload.StoreDescription,
			Specialty:        payload.Specialty,
			ApprovalStatus:   entity.ApprovalPending,
			JoinedDate:       daysAgo(0),
			ContactEmail:     payload.Email,
			ContactPhone:     payload.PhoneNumber,
		})
	}
	g.f.mu.Unlock()

	token, err := g.f.tokens.Issue(user)
	if err != nil {
		return nil, errors.Wrap(err, "issue token")
	}

	return &gateway.AuthResult{Success: true, Message: message, Token: token, User: user}, nil
}

func (g *authGateway) ForgotPassword(_ context.Context, email string) (*gateway.StatusMessage, error) {
	if email == "" {
		return &gateway.StatusMessage{Success: false, Message: "Email is required"}, nil
	}

	return &gateway.StatusMessage{Success: true, Message: "Password reset email sent"}, nil
}

func (g *authGateway) ResetPassword(_ context.Context, token, newPassword string) (*gateway.StatusMessage, error) {
	if token == "" || newPassword == "" {
		return &gateway.StatusMessage{Success: false, Message: "Token and new password are required"}, nil
	}

	return &gateway.StatusMessage{Success: true, Message: "Password has been reset successfully"}, nil
}

func (g *authGateway) VerifyEmail(_ context.Context, token string) (*gateway.StatusMessage, error) {
	if token == "" {
		return &gateway.StatusMessage{Success: false, Message: "Token is required"}, nil
	}

	return &gateway.StatusMessage{Success: true, Message: "Email verified successfully"}, nil
}
