// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"
)

// --- Input DTOs ---

// LoginInput carries the login form. Identifier is either an email address
// or a username; classification happens inside the service.
type LoginInput struct {
	Identifier string
	Password   string
}

// RegisterInput carries the registration form. Store fields apply to
// vendor sign-ups only.
type RegisterInput struct {
	Username         string
	FirstName        string
	LastName         string
	Email            string
	PhoneNumber      string
	Password         string
	Role             entity.Role
	Address          *entity.Address
	StoreName        string
	StoreDescription string
	Specialty        string
}

// --- Output DTOs ---

// AuthOutput returns the established session after login or registration.
// Session is nil when the backend accepted the request but deferred
// authentication, in which case Message explains the next step.
type AuthOutput struct {
	Session *entity.Session
	Message string
}

// AuthUsecase defines the authentication operations the page handlers
// depend on.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Logout(ctx context.Context, sessionID string) error

	ForgotPassword(ctx context.Context, email string) (*gateway.StatusMessage, error)
	ResetPassword(ctx context.Context, token, newPassword string) (*gateway.StatusMessage, error)
	VerifyEmail(ctx context.Context, token string) (*gateway.StatusMessage, error)

	// VendorDetails fetches the store profile for a logged-in vendor.
	// Returns nil when the profile cannot be loaded; the caller renders
	// the page without it.
	VendorDetails(ctx context.Context) *entity.VendorProfile
}
