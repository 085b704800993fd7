package handler

import (
	"log/slog"
	"net/http"

	"marketfront/internal/delivery/http/middleware"
	"marketfront/internal/delivery/http/response"
	"marketfront/internal/delivery/http/session"
	"marketfront/internal/domain/entity"
	"marketfront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the login, registration and account
// recovery endpoints. It is the only handler that writes session cookies.
type AuthHandler struct {
	uc      usecase.AuthUsecase
	manager *session.Manager
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, manager *session.Manager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:      uc,
		manager: manager,
		logger:  logger,
	}
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username         string          `json:"username" validate:"required"`
	FirstName        string          `json:"firstName" validate:"required"`
	LastName         string          `json:"lastName"`
	Email            string          `json:"email" validate:"required,email"`
	PhoneNumber      string          `json:"phoneNumber"`
	Password         string          `json:"password" validate:"required,min=8"`
	Role             entity.Role     `json:"role"`
	Address          *entity.Address `json:"address"`
	StoreName        string          `json:"storeName"`
	StoreDescription string          `json:"storeDescription"`
	Specialty        string          `json:"specialty"`
}

// Login handles the login form. A successful login writes the session
// cookie pair and tells the client which dashboard to navigate to.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Identifier and password are required")
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Identifier: input.Identifier,
		Password:   input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.manager.Write(c, output.Session); err != nil {
		return errors.WithStack(err)
	}

	return response.Redirect(c, output.Session.User, "Login successful", output.Session.User.Role.DashboardPath())
}

// Register handles the registration form. When the backend issues a token
// right away the new user is signed in; otherwise the message explains
// the next step (e.g. pending vendor approval).
func (h *AuthHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Some registration fields are missing or invalid")
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
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
		return errors.WithStack(err)
	}

	if output.Session == nil {
		return response.Success(c, http.StatusCreated, nil, output.Message)
	}

	if err := h.manager.Write(c, output.Session); err != nil {
		return errors.WithStack(err)
	}

	return response.Redirect(c, output.Session.User, output.Message, output.Session.User.Role.DashboardPath())
}

// Logout clears the session everywhere it is held and sends the visitor
// back to the landing page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if sessionID := h.manager.SessionID(c); sessionID != "" {
		if err := h.uc.Logout(c.Request().Context(), sessionID); err != nil {
			return errors.WithStack(err)
		}
	}
	h.manager.Clear(c)

	return response.Redirect(c, nil, "Logout successful", "/")
}

// Me reports the signed-in user for the current request, including the
// store profile when the account is a vendor.
func (h *AuthHandler) Me(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	if sess == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Not logged in")
	}

	view := map[string]any{"user": sess.User}
	if sess.User.Role == entity.RoleVendor {
		if details := h.uc.VendorDetails(c.Request().Context()); details != nil {
			view["vendorDetails"] = details
		}
	}

	return response.Success(c, http.StatusOK, view, "")
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword starts the password recovery flow.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var input forgotPasswordRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "A valid email address is required")
	}

	status, err := h.uc.ForgotPassword(c.Request().Context(), input.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, status.Message)
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// ResetPassword completes the password recovery flow.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var input resetPasswordRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Token and a new password of at least 8 characters are required")
	}

	status, err := h.uc.ResetPassword(c.Request().Context(), input.Token, input.NewPassword)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, status.Message)
}

// VerifyEmail confirms an email address from the token in the query.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "Verification token is required")
	}

	status, err := h.uc.VerifyEmail(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, status.Message)
}
