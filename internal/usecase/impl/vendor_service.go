package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketfront/internal/delivery/context"
	"marketfront/internal/domain/entity"
	domainerrors "marketfront/internal/domain/errors"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// vendorService implements the VendorUsecase interface. Product mutations
// are gated on the store's approval status before reaching the backend,
// so an unapproved vendor gets a domain error instead of a backend 403.
type vendorService struct {
	vendors gateway.VendorGateway
	logger  *slog.Logger
}

// VendorServiceParams holds dependencies for vendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	VendorGateway gateway.VendorGateway
	Logger        *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	return &vendorService{
		vendors: params.VendorGateway,
		logger:  params.Logger,
	}
}

func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireApproved checks the acting vendor may manage products.
func (srv *vendorService) requireApproved(ctx context.Context) error {
	profile, err := srv.vendors.Profile(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load vendor profile")
	}
	if !profile.CanManageProducts() {
		return errors.WithStack(domainerrors.ErrVendorNotApproved)
	}

	return nil
}

func (srv *vendorService) Dashboard(ctx context.Context) (*entity.VendorDashboard, error) {
	dashboard, err := srv.vendors.Dashboard(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load vendor dashboard")
	}

	return dashboard, nil
}

func (srv *vendorService) Profile(ctx context.Context) (*entity.VendorProfile, error) {
	profile, err := srv.vendors.Profile(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load vendor profile")
	}

	return profile, nil
}

func (srv *vendorService) UpdateProfile(ctx context.Context, input gateway.VendorProfileInput) (*entity.VendorProfile, error) {
	if input.StoreName == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "store name is required")
	}

	profile, err := srv.vendors.UpdateProfile(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update vendor profile")
	}
	srv.log(ctx).Info("Vendor profile updated", slog.Int64("vendorID", profile.ID))

	return profile, nil
}

func (srv *vendorService) Products(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.Product], error) {
	products, err := srv.vendors.Products(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load vendor products")
	}

	return products, nil
}

func (srv *vendorService) AddProduct(ctx context.Context, input gateway.ProductInput) (*entity.Product, error) {
	if err := srv.requireApproved(ctx); err != nil {
		return nil, err
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := srv.vendors.AddProduct(ctx, input)
	if err != nil {
		srv.log(ctx).Error("Failed to add product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add product")
	}
	srv.log(ctx).Info("Product added", slog.Int64("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}

func (srv *vendorService) UpdateProduct(ctx context.Context, productID int64, input gateway.ProductInput) (*entity.Product, error) {
	if err := srv.requireApproved(ctx); err != nil {
		return nil, err
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := srv.vendors.UpdateProduct(ctx, productID, input)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update product %d", productID)
	}
	srv.log(ctx).Info("Product updated", slog.Int64("productID", productID))

	return product, nil
}

func (srv *vendorService) DeleteProduct(ctx context.Context, productID int64) (*gateway.StatusMessage, error) {
	if err := srv.requireApproved(ctx); err != nil {
		return nil, err
	}

	msg, err := srv.vendors.DeleteProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete product %d", productID)
	}
	srv.log(ctx).Info("Product deleted", slog.Int64("productID", productID))

	return msg, nil
}

func (srv *vendorService) Orders(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.Order], error) {
	orders, err := srv.vendors.Orders(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load vendor orders")
	}

	return orders, nil
}

func (srv *vendorService) UpdateOrderStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*gateway.StatusMessage, error) {
	switch status {
	case entity.OrderProcessing, entity.OrderShipped, entity.OrderDelivered, entity.OrderCancelled:
	default:
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unsupported order status %q", status)
	}

	msg, err := srv.vendors.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update status of order %d", orderID)
	}
	srv.log(ctx).Info("Order status updated", slog.Int64("orderID", orderID), slog.String("status", string(status)))

	return msg, nil
}

func validateProductInput(input gateway.ProductInput) error {
	if input.Name == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "product name is required")
	}
	if input.Price <= 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "product price must be positive")
	}
	if input.CategoryID == 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "product category is required")
	}
	if input.Inventory < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "inventory cannot be negative")
	}

	return nil
}
