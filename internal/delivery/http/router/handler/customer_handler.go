package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "marketfront/internal/delivery/context"
	"marketfront/internal/delivery/http/middleware"
	"marketfront/internal/delivery/http/response"
	"marketfront/internal/domain/entity"
	"marketfront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CustomerHandler serves the customer account dashboard.
type CustomerHandler struct {
	orders usecase.OrderUsecase
	carts  usecase.CartUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(orders usecase.OrderUsecase, carts usecase.CartUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		orders: orders,
		carts:  carts,
		logger: logger,
	}
}

// dashboardView aggregates the account page. Sections that failed to load
// are nil; the page renders what it has.
type dashboardView struct {
	User     entity.User                `json:"user"`
	Orders   *entity.Page[entity.Order] `json:"orders,omitempty"`
	Wishlist []entity.WishlistItem      `json:"wishlist,omitempty"`
	Cart     *entity.Cart               `json:"cart,omitempty"`
}

// Dashboard renders the account overview: recent orders, wishlist and the
// cart. Each section degrades independently so one failing backend call
// never blanks the whole page.
func (h *CustomerHandler) Dashboard(c echo.Context) error {
	sess := middleware.SessionFromContext(c)
	if sess == nil {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Please log in to view your account")
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	view := dashboardView{User: sess.User}

	orders, err := h.orders.Orders(ctx, entity.PageRequest{})
	if err != nil {
		logger.Warn("Dashboard orders unavailable", slog.Any("error", err))
	} else {
		view.Orders = orders
	}

	wishlist, err := h.carts.Wishlist(ctx)
	if err != nil {
		logger.Warn("Dashboard wishlist unavailable", slog.Any("error", err))
	} else {
		view.Wishlist = wishlist
	}

	cart, err := h.carts.Cart(ctx)
	if err != nil {
		logger.Warn("Dashboard cart unavailable", slog.Any("error", err))
	} else {
		view.Cart = cart
	}

	return response.Success(c, http.StatusOK, view, "")
}
