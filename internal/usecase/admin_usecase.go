package usecase

import (
	"context"

	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"
)

// AdminUsecase defines the administration operations. The request context
// must carry an ADMIN session's bearer token.
type AdminUsecase interface {
	Dashboard(ctx context.Context) (*gateway.AdminDashboard, error)

	Vendors(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.VendorProfile], error)
	VendorByID(ctx context.Context, vendorID int64) (*entity.VendorProfile, error)
	ApproveVendor(ctx context.Context, vendorID int64) (*entity.VendorProfile, error)
	RejectVendor(ctx context.Context, vendorID int64, reason string) (*entity.VendorProfile, error)

	Categories(ctx context.Context) ([]entity.Category, error)
	CreateCategory(ctx context.Context, input gateway.CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, input gateway.CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) (*gateway.StatusMessage, error)
	AddSubcategory(ctx context.Context, categoryID int64, input gateway.CategoryInput) (*entity.Category, error)
	UpdateSubcategory(ctx context.Context, categoryID, subcategoryID int64, input gateway.CategoryInput) (*gateway.StatusMessage, error)
	DeleteSubcategory(ctx context.Context, categoryID, subcategoryID int64) (*gateway.StatusMessage, error)
}
