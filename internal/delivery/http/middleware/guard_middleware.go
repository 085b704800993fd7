package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "marketfront/internal/delivery/context"
	"marketfront/internal/delivery/http/session"
	"marketfront/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// GuardMiddleware enforces the role-based route map at the edge. It reads
// only the mirrored user cookie: the decision trusts the cookie's shape,
// not a verified token, and the backend still authorizes every data call.
type GuardMiddleware struct {
	manager *session.Manager
	logger  *slog.Logger
}

// NewGuardMiddleware is the constructor for GuardMiddleware.
func NewGuardMiddleware(manager *session.Manager, logger *slog.Logger) *GuardMiddleware {
	return &GuardMiddleware{manager: manager, logger: logger}
}

// Handle redirects visitors who are outside their role's section. A user
// cookie that fails to parse is cleared and the visitor treated as
// anonymous.
func (m *GuardMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.manager.User(c)
		if err != nil {
			logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
			logger.Warn("Clearing unreadable user cookie", slog.Any("error", err))
			m.manager.Clear(c)
			user = nil
		}

		var role entity.Role
		if user != nil {
			role = user.Role
		}

		if target, redirect := Decide(role, c.Request().URL.Path); redirect {
			return c.Redirect(http.StatusFound, target)
		}

		return next(c)
	}
}

// Decide applies the route rules in precedence order and returns the
// redirect target when the visitor does not belong on the path. An empty
// role means anonymous.
func Decide(role entity.Role, path string) (string, bool) {
	// Signed-out visitors are sent to login from any protected section.
	if role == "" {
		if hasAnyPrefix(path, "/vendor", "/admin", "/customer") {
			return "/login", true
		}

		return "", false
	}

	// Vendors and admins browsing the shopping pages land on their own
	// dashboard instead.
	if (role == entity.RoleVendor || role == entity.RoleAdmin) && isShoppingPath(path) {
		return role.DashboardPath(), true
	}

	if role == entity.RoleCustomer && strings.HasPrefix(path, "/vendor") {
		return "/", true
	}

	if (role == entity.RoleCustomer || role == entity.RoleVendor) && strings.HasPrefix(path, "/admin") {
		return "/", true
	}

	return "", false
}

func isShoppingPath(path string) bool {
	return path == "/" || hasAnyPrefix(path, "/products", "/categories")
}

func hasAnyPrefix(path string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}
