package usecase

import (
	"context"

	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"
)

// VendorUsecase defines the vendor portal operations. The request context
// must carry a VENDOR session's bearer token; product mutations further
// require an approved store.
type VendorUsecase interface {
	Dashboard(ctx context.Context) (*entity.VendorDashboard, error)
	Profile(ctx context.Context) (*entity.VendorProfile, error)
	UpdateProfile(ctx context.Context, input gateway.VendorProfileInput) (*entity.VendorProfile, error)

	Products(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.Product], error)
	AddProduct(ctx context.Context, input gateway.ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, productID int64, input gateway.ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID int64) (*gateway.StatusMessage, error)

	Orders(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.Order], error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*gateway.StatusMessage, error)
}
