package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "marketfront/internal/delivery/context"
	"marketfront/internal/delivery/http/response"
	domainerrors "marketfront/internal/domain/errors"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/domain/store"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.writeError(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// Plain sentinel errors from the gateway layer
	switch {
	case errors.Is(err, gateway.ErrUnauthorized):
		m.writeError(c, http.StatusUnauthorized, "UNAUTHORIZED", "Please log in to continue", "")

		return
	case errors.Is(err, gateway.ErrNotFound):
		m.writeError(c, http.StatusNotFound, "NOT_FOUND", "Resource not found", "")

		return
	case errors.Is(err, store.ErrSessionNotFound):
		m.writeError(c, http.StatusUnauthorized, "SESSION_EXPIRED", "Your session has expired, please log in again", "")

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprintf("%v", httpErr.Message)
		m.writeError(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	// Default to internal error, log and return a generic message
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", "")
}

func (m *ErrorMiddleware) writeError(c echo.Context, code int, errorCode, message, details string) {
	if err := response.Error(c, code, errorCode, message, details); err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}
