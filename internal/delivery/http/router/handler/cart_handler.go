package handler

import (
	"log/slog"
	"net/http"

	"marketfront/internal/delivery/http/response"
	"marketfront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler serves the cart and wishlist endpoints for signed-in
// customers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// Cart returns the current cart with backend-computed totals.
func (h *CartHandler) Cart(c echo.Context) error {
	cart, err := h.uc.Cart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

type addItemRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  int   `json:"quantity"`
}

// AddItem adds a product to the cart and returns the updated cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input addItemRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "A product is required")
	}

	cart, err := h.uc.AddItem(c.Request().Context(), input.ProductID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem changes a cart line's quantity. Zero or less removes it.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	itemID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item identifier")
	}

	var input updateItemRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	cart, err := h.uc.UpdateItem(c.Request().Context(), itemID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart updated")
}

// RemoveItem removes a cart line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	itemID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item identifier")
	}

	cart, err := h.uc.RemoveItem(c.Request().Context(), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed from cart")
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	cart, err := h.uc.ClearCart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart cleared")
}

// Wishlist returns the saved-for-later list.
func (h *CartHandler) Wishlist(c echo.Context) error {
	items, err := h.uc.Wishlist(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

type wishlistRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
}

// AddToWishlist saves a product for later.
func (h *CartHandler) AddToWishlist(c echo.Context) error {
	var input wishlistRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wishlist input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "A product is required")
	}

	status, err := h.uc.AddToWishlist(c.Request().Context(), input.ProductID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, status.Message)
}

// RemoveFromWishlist drops a product from the wishlist.
func (h *CartHandler) RemoveFromWishlist(c echo.Context) error {
	productID, err := pathID(c, "productId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product identifier")
	}

	status, err := h.uc.RemoveFromWishlist(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, status.Message)
}

// MoveToCart moves a wishlist product into the cart.
func (h *CartHandler) MoveToCart(c echo.Context) error {
	productID, err := pathID(c, "productId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product identifier")
	}

	cart, err := h.uc.MoveToCart(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item moved to cart")
}
