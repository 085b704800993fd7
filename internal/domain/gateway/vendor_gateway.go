package gateway

import (
	"context"

	"marketfront/internal/domain/entity"
)

// VendorProfileInput is the editable subset of a vendor profile.
type VendorProfileInput struct {
	StoreName        string         `json:"storeName"`
	StoreDescription string         `json:"storeDescription"`
	StoreAddress     entity.Address `json:"storeAddress"`
	Specialty        string         `json:"specialty"`
	ContactEmail     string         `json:"contactEmail"`
	ContactPhone     string         `json:"contactPhone"`
}

// ProductInput is the add/edit product form forwarded by vendor pages.
type ProductInput struct {
	Name           string                 `json:"name"`
	Description    string                 `json:"description"`
	Price          float64                `json:"price"`
	OriginalPrice  float64                `json:"originalPrice,omitempty"`
	Images         []string               `json:"images,omitempty"`
	CategoryID     int64                  `json:"categoryId"`
	SubcategoryID  int64                  `json:"subcategoryId,omitempty"`
	Inventory      int                    `json:"inventory"`
	Specifications []entity.Specification `json:"specifications,omitempty"`
	Tags           []string               `json:"tags,omitempty"`
}

// VendorGateway wraps the backend's /vendors resource.
// All operations act on the vendor owning the bearer token.
type VendorGateway interface {
	Profile(ctx context.Context) (*entity.VendorProfile, error)
	UpdateProfile(ctx context.Context, input VendorProfileInput) (*entity.VendorProfile, error)
	Dashboard(ctx context.Context) (*entity.VendorDashboard, error)

	Products(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.Product], error)
	AddProduct(ctx context.Context, input ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, productID int64, input ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID int64) (*StatusMessage, error)

	Orders(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.Order], error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*StatusMessage, error)
}
