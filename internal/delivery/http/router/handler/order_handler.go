package handler

import (
	"log/slog"
	"net/http"

	"marketfront/internal/delivery/http/response"
	"marketfront/internal/domain/entity"
	"marketfront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler serves order history and checkout for signed-in customers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Orders lists the customer's orders, newest first.
func (h *OrderHandler) Orders(c echo.Context) error {
	page, err := h.uc.Orders(c.Request().Context(), pageRequest(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// OrderByID renders one order.
func (h *OrderHandler) OrderByID(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order identifier")
	}

	order, err := h.uc.OrderByID(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

type checkoutRequest struct {
	ShippingAddress entity.Address `json:"shippingAddress" validate:"required"`
	CouponCode      string         `json:"couponCode"`
}

// Checkout places an order from the current cart.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var input checkoutRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "A shipping address is required")
	}

	order, err := h.uc.Checkout(c.Request().Context(), usecase.CheckoutInput{
		ShippingAddress: input.ShippingAddress,
		CouponCode:      input.CouponCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed")
}

// CancelOrder cancels an order that has not shipped yet.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order identifier")
	}

	status, err := h.uc.CancelOrder(c.Request().Context(), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	if !status.Success {
		return response.BadRequest(c, "ORDER_NOT_CANCELLABLE", status.Message)
	}

	return response.Success(c, http.StatusOK, nil, status.Message)
}
