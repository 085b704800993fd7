package gateway

import (
	"context"

	"marketfront/internal/domain/entity"
)

// CategoryInput is the admin add/edit category form.
type CategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Featured    bool   `json:"featured"`
}

// AdminDashboard is the aggregate rendered on the admin landing page.
type AdminDashboard struct {
	VendorCount        int                    `json:"vendorCount"`
	PendingVendorCount int                    `json:"pendingVendorCount"`
	CustomerCount      int                    `json:"customerCount"`
	ProductCount       int                    `json:"productCount"`
	OrderCount         int                    `json:"orderCount"`
	TotalRevenue       float64                `json:"totalRevenue"`
	RecentVendors      []entity.VendorProfile `json:"recentVendors,omitempty"`
}

// AdminGateway wraps the backend's /admin resource. ADMIN role only.
type AdminGateway interface {
	Vendors(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.VendorProfile], error)
	VendorByID(ctx context.Context, vendorID int64) (*entity.VendorProfile, error)
	ApproveVendor(ctx context.Context, vendorID int64) (*entity.VendorProfile, error)
	RejectVendor(ctx context.Context, vendorID int64, reason string) (*entity.VendorProfile, error)

	Categories(ctx context.Context) ([]entity.Category, error)
	CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, input CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) (*StatusMessage, error)
	AddSubcategory(ctx context.Context, categoryID int64, input CategoryInput) (*entity.Category, error)
	UpdateSubcategory(ctx context.Context, categoryID, subcategoryID int64, input CategoryInput) (*StatusMessage, error)
	DeleteSubcategory(ctx context.Context, categoryID, subcategoryID int64) (*StatusMessage, error)

	Dashboard(ctx context.Context) (*AdminDashboard, error)
}
