package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "marketfront/internal/delivery/context"
	"marketfront/internal/domain/entity"
	domainerrors "marketfront/internal/domain/errors"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	admin  gateway.AdminGateway
	logger *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	AdminGateway gateway.AdminGateway
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		admin:  params.AdminGateway,
		logger: params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *adminService) Dashboard(ctx context.Context) (*gateway.AdminDashboard, error) {
	dashboard, err := srv.admin.Dashboard(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load admin dashboard")
	}

	return dashboard, nil
}

func (srv *adminService) Vendors(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.VendorProfile], error) {
	vendors, err := srv.admin.Vendors(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load vendors")
	}

	return vendors, nil
}

func (srv *adminService) VendorByID(ctx context.Context, vendorID int64) (*entity.VendorProfile, error) {
	vendor, err := srv.admin.VendorByID(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load vendor %d", vendorID)
	}

	return vendor, nil
}

func (srv *adminService) ApproveVendor(ctx context.Context, vendorID int64) (*entity.VendorProfile, error) {
	vendor, err := srv.admin.ApproveVendor(ctx, vendorID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to approve vendor %d", vendorID)
	}
	srv.log(ctx).Info("Vendor approved", slog.Int64("vendorID", vendorID))

	return vendor, nil
}

func (srv *adminService) RejectVendor(ctx context.Context, vendorID int64, reason string) (*entity.VendorProfile, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "rejection reason is required")
	}

	vendor, err := srv.admin.RejectVendor(ctx, vendorID, reason)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reject vendor %d", vendorID)
	}
	srv.log(ctx).Info("Vendor rejected", slog.Int64("vendorID", vendorID), slog.String("reason", reason))

	return vendor, nil
}

func (srv *adminService) Categories(ctx context.Context) ([]entity.Category, error) {
	categories, err := srv.admin.Categories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load categories")
	}

	return categories, nil
}

// normalizeCategory validates the admin category form and derives the
// slug from the name when one was not supplied.
func normalizeCategory(input gateway.CategoryInput) (gateway.CategoryInput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return input, errors.Wrap(domainerrors.ErrValidationFailed, "Name is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return input, errors.Wrap(domainerrors.ErrValidationFailed, "Description is required")
	}
	if input.Slug == "" {
		input.Slug = entity.Slugify(input.Name)
	}
	if !entity.ValidSlug(input.Slug) {
		return input, errors.Wrap(domainerrors.ErrValidationFailed, "Slug may only contain lowercase letters, numbers and hyphens")
	}

	return input, nil
}

func (srv *adminService) CreateCategory(ctx context.Context, input gateway.CategoryInput) (*entity.Category, error) {
	input, err := normalizeCategory(input)
	if err != nil {
		return nil, err
	}

	category, err := srv.admin.CreateCategory(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}
	srv.log(ctx).Info("Category created", slog.Int64("categoryID", category.ID), slog.String("slug", category.Slug))

	return category, nil
}

func (srv *adminService) UpdateCategory(ctx context.Context, categoryID int64, input gateway.CategoryInput) (*entity.Category, error) {
	input, err := normalizeCategory(input)
	if err != nil {
		return nil, err
	}

	category, err := srv.admin.UpdateCategory(ctx, categoryID, input)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update category %d", categoryID)
	}
	srv.log(ctx).Info("Category updated", slog.Int64("categoryID", categoryID))

	return category, nil
}

func (srv *adminService) DeleteCategory(ctx context.Context, categoryID int64) (*gateway.StatusMessage, error) {
	msg, err := srv.admin.DeleteCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete category %d", categoryID)
	}
	srv.log(ctx).Info("Category deleted", slog.Int64("categoryID", categoryID))

	return msg, nil
}

func (srv *adminService) AddSubcategory(ctx context.Context, categoryID int64, input gateway.CategoryInput) (*entity.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "Name is required")
	}
	if input.Slug == "" {
		input.Slug = entity.Slugify(input.Name)
	}

	category, err := srv.admin.AddSubcategory(ctx, categoryID, input)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add subcategory to category %d", categoryID)
	}
	srv.log(ctx).Info("Subcategory added", slog.Int64("categoryID", categoryID), slog.String("name", input.Name))

	return category, nil
}

func (srv *adminService) UpdateSubcategory(ctx context.Context, categoryID, subcategoryID int64, input gateway.CategoryInput) (*gateway.StatusMessage, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "Name is required")
	}

	msg, err := srv.admin.UpdateSubcategory(ctx, categoryID, subcategoryID, input)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update subcategory %d", subcategoryID)
	}

	return msg, nil
}

func (srv *adminService) DeleteSubcategory(ctx context.Context, categoryID, subcategoryID int64) (*gateway.StatusMessage, error) {
	msg, err := srv.admin.DeleteSubcategory(ctx, categoryID, subcategoryID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete subcategory %d", subcategoryID)
	}

	return msg, nil
}
