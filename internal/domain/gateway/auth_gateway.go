package gateway

import (
	"context"

	"marketfront/internal/domain/entity"
)

// Credentials is the login payload. Exactly one of Email or Username is
// set, depending on how the identifier classified.
type Credentials struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

// RegistrationPayload is the structured registration form forwarded to the
// backend. Store fields are only populated for vendor sign-ups.
type RegistrationPayload struct {
	Username         string          `json:"username"`
	FirstName        string          `json:"firstName"`
	LastName         string          `json:"lastName"`
	Email            string          `json:"email"`
	PhoneNumber      string          `json:"phoneNumber"`
	Password         string          `json:"password"`
	Role             entity.Role     `json:"role"`
	Address          *entity.Address `json:"address,omitempty"`
	StoreName        string          `json:"storeName,omitempty"`
	StoreDescription string          `json:"storeDescription,omitempty"`
	Specialty        string          `json:"specialty,omitempty"`
}

// AuthResult is the backend's response to login and registration. Token
// and User are absent when the backend defers authentication (for example
// pending email verification after registration).
type AuthResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *entity.User `json:"user,omitempty"`
}

// AuthGateway wraps the backend's /auth resource.
type AuthGateway interface {
	Login(ctx context.Context, creds Credentials) (*AuthResult, error)
	Register(ctx context.Context, payload RegistrationPayload) (*AuthResult, error)
	ForgotPassword(ctx context.Context, email string) (*StatusMessage, error)
	ResetPassword(ctx context.Context, token, newPassword string) (*StatusMessage, error)
	VerifyEmail(ctx context.Context, token string) (*StatusMessage, error)
}
