package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketfront/internal/delivery/context"
	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface. Mutations re-read the
// cart afterwards so handlers always render the backend's authoritative
// totals rather than locally adjusted ones.
type cartService struct {
	carts  gateway.CartGateway
	logger *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartGateway gateway.CartGateway
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		carts:  params.CartGateway,
		logger: params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) Cart(ctx context.Context) (*entity.Cart, error) {
	cart, err := srv.carts.Cart(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

func (srv *cartService) AddItem(ctx context.Context, productID int64, quantity int) (*entity.Cart, error) {
	if _, err := srv.carts.AddItem(ctx, productID, quantity); err != nil {
		srv.log(ctx).Warn("Failed to add cart item", slog.Int64("productID", productID), slog.Any("error", err))

		return nil, errors.Wrapf(err, "failed to add product %d to cart", productID)
	}

	return srv.Cart(ctx)
}

func (srv *cartService) UpdateItem(ctx context.Context, itemID int64, quantity int) (*entity.Cart, error) {
	if _, err := srv.carts.UpdateItem(ctx, itemID, quantity); err != nil {
		return nil, errors.Wrapf(err, "failed to update cart item %d", itemID)
	}

	return srv.Cart(ctx)
}

func (srv *cartService) RemoveItem(ctx context.Context, itemID int64) (*entity.Cart, error) {
	if _, err := srv.carts.RemoveItem(ctx, itemID); err != nil {
		return nil, errors.Wrapf(err, "failed to remove cart item %d", itemID)
	}

	return srv.Cart(ctx)
}

func (srv *cartService) ClearCart(ctx context.Context) (*entity.Cart, error) {
	if _, err := srv.carts.ClearCart(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart")
	}

	return srv.Cart(ctx)
}

func (srv *cartService) Wishlist(ctx context.Context) ([]entity.WishlistItem, error) {
	items, err := srv.carts.Wishlist(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist")
	}

	return items, nil
}

func (srv *cartService) AddToWishlist(ctx context.Context, productID int64) (*gateway.StatusMessage, error) {
	msg, err := srv.carts.AddToWishlist(ctx, productID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add product %d to wishlist", productID)
	}

	return msg, nil
}

func (srv *cartService) RemoveFromWishlist(ctx context.Context, productID int64) (*gateway.StatusMessage, error) {
	msg, err := srv.carts.RemoveFromWishlist(ctx, productID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to remove product %d from wishlist", productID)
	}

	return msg, nil
}

// MoveToCart adds the product to the cart first; the wishlist entry is
// only removed once the add succeeded.
func (srv *cartService) MoveToCart(ctx context.Context, productID int64) (*entity.Cart, error) {
	if _, err := srv.carts.AddItem(ctx, productID, 1); err != nil {
		return nil, errors.Wrapf(err, "failed to move product %d to cart", productID)
	}

	if _, err := srv.carts.RemoveFromWishlist(ctx, productID); err != nil {
		srv.log(ctx).Warn("Product moved to cart but wishlist removal failed",
			slog.Int64("productID", productID), slog.Any("error", err))
	}

	return srv.Cart(ctx)
}
