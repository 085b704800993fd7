package gateway

import (
	"context"

	"marketfront/internal/domain/entity"
)

// OrderInput is the checkout payload forwarded to the backend.
type OrderInput struct {
	Items           []OrderItemInput `json:"items"`
	ShippingAddress entity.Address   `json:"shippingAddress"`
	CouponCode      string           `json:"couponCode,omitempty"`
}

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// OrderGateway wraps the backend's /orders resource.
// All operations require a bearer token on the context.
type OrderGateway interface {
	Orders(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.Order], error)
	OrderByID(ctx context.Context, orderID int64) (*entity.Order, error)
	CreateOrder(ctx context.Context, input OrderInput) (*entity.Order, error)
	CancelOrder(ctx context.Context, orderID int64) (*StatusMessage, error)
}
