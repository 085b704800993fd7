package usecase

import (
	"context"

	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"
)

// CartUsecase defines the cart and wishlist operations for signed-in
// customers. The request context must carry the session's bearer token.
type CartUsecase interface {
	Cart(ctx context.Context) (*entity.Cart, error)
	AddItem(ctx context.Context, productID int64, quantity int) (*entity.Cart, error)
	UpdateItem(ctx context.Context, itemID int64, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, itemID int64) (*entity.Cart, error)
	ClearCart(ctx context.Context) (*entity.Cart, error)

	Wishlist(ctx context.Context) ([]entity.WishlistItem, error)
	AddToWishlist(ctx context.Context, productID int64) (*gateway.StatusMessage, error)
	RemoveFromWishlist(ctx context.Context, productID int64) (*gateway.StatusMessage, error)

	// MoveToCart adds a wishlist product to the cart and removes it from
	// the wishlist when the add succeeds.
	MoveToCart(ctx context.Context, productID int64) (*entity.Cart, error)
}
