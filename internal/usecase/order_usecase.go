package usecase

import (
	"context"

	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"
)

// CheckoutInput is the order placement form.
type CheckoutInput struct {
	ShippingAddress entity.Address
	CouponCode      string
}

// OrderUsecase defines the order history and checkout operations.
// The request context must carry the session's bearer token.
type OrderUsecase interface {
	Orders(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.Order], error)
	OrderByID(ctx context.Context, orderID int64) (*entity.Order, error)

	// Checkout turns the current cart into an order.
	Checkout(ctx context.Context, input CheckoutInput) (*entity.Order, error)

	CancelOrder(ctx context.Context, orderID int64) (*gateway.StatusMessage, error)
}
