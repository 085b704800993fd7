package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "marketfront/internal/delivery/context"
	"marketfront/internal/domain/entity"
	domainerrors "marketfront/internal/domain/errors"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	authGateway   gateway.AuthGateway
	vendorGateway gateway.VendorGateway
	sessions      usecase.SessionUsecase
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AuthGateway   gateway.AuthGateway
	VendorGateway gateway.VendorGateway
	Sessions      usecase.SessionUsecase
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		authGateway:   params.AuthGateway,
		vendorGateway: params.VendorGateway,
		sessions:      params.Sessions,
		logger:        params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// classifyIdentifier builds the credential payload from the login form's
// single identifier field. An identifier containing "@" is sent as the
// email, anything else as the username.
func classifyIdentifier(identifier, password string) gateway.Credentials {
	creds := gateway.Credentials{Password: password}
	if strings.Contains(identifier, "@") {
		creds.Email = identifier
	} else {
		creds.Username = identifier
	}

	return creds
}

// Login authenticates against the backend and establishes the session.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	identifier := strings.TrimSpace(input.Identifier)
	if identifier == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "identifier and password are required")
	}

	result, err := srv.authGateway.Login(ctx, classifyIdentifier(identifier, input.Password))
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("identifier", identifier), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}
	if result.Token == "" || result.User == nil {
		srv.log(ctx).Warn("Login response carried no token", slog.String("identifier", identifier))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	session, err := srv.sessions.Establish(ctx, result.Token, result.User)
	if err != nil {
		return nil, errors.Wrap(err, "failed to establish session after login")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", result.User.ID), slog.String("role", result.User.Role.String()))

	return &usecase.AuthOutput{Session: session, Message: result.Message}, nil
}

// Register submits the registration form. When the backend returns a
// token the new account is logged in immediately.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "username, email and password are required")
	}
	if !input.Role.IsValid() {
		input.Role = entity.RoleCustomer
	}

	result, err := srv.authGateway.Register(ctx, gateway.RegistrationPayload{
		Username:         input.Username,
		FirstName:        input.FirstName,
		LastName:         input.LastName,
		Email:            input.Email,
		PhoneNumber:      input.PhoneNumber,
		Password:         input.Password,
		Role:             input.Role,
		Address:          input.Address,
		StoreName:        input.StoreName,
		StoreDescription: input.StoreDescription,
		Specialty:        input.Specialty,
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "registration failed")
	}
	if !result.Success {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, result.Message)
	}

	output := &usecase.AuthOutput{Message: result.Message}
	if result.Token != "" && result.User != nil {
		session, err := srv.sessions.Establish(ctx, result.Token, result.User)
		if err != nil {
			return nil, errors.Wrap(err, "failed to establish session after registration")
		}
		output.Session = session
	}

	srv.log(ctx).Info("User registered", slog.String("email", input.Email), slog.String("role", input.Role.String()))

	return output, nil
}

// Logout clears the session everywhere it is recorded server-side. The
// delivery layer expires the cookies in the same request.
func (srv *authService) Logout(ctx context.Context, sessionID string) error {
	if err := srv.sessions.Clear(ctx, sessionID); err != nil {
		return errors.Wrap(err, "logout failed")
	}
	srv.log(ctx).Info("User logged out", slog.String("sessionID", sessionID))

	return nil
}

func (srv *authService) ForgotPassword(ctx context.Context, email string) (*gateway.StatusMessage, error) {
	if strings.TrimSpace(email) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email is required")
	}

	msg, err := srv.authGateway.ForgotPassword(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "forgot password request failed")
	}

	return msg, nil
}

func (srv *authService) ResetPassword(ctx context.Context, token, newPassword string) (*gateway.StatusMessage, error) {
	if token == "" || newPassword == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "token and new password are required")
	}

	msg, err := srv.authGateway.ResetPassword(ctx, token, newPassword)
	if err != nil {
		return nil, errors.Wrap(err, "password reset failed")
	}

	return msg, nil
}

func (srv *authService) VerifyEmail(ctx context.Context, token string) (*gateway.StatusMessage, error) {
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "verification token is required")
	}

	msg, err := srv.authGateway.VerifyEmail(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "email verification failed")
	}

	return msg, nil
}

// VendorDetails loads the store profile for the acting vendor. Any
// failure degrades to nil so the surrounding page still renders.
func (srv *authService) VendorDetails(ctx context.Context) *entity.VendorProfile {
	profile, err := srv.vendorGateway.Profile(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load vendor details", slog.Any("error", err))

		return nil
	}

	return profile
}
