package gateway

import (
	"context"

	"marketfront/internal/domain/entity"
)

// CartGateway wraps the backend's /cart and /users/wishlist resources.
// All operations require a bearer token on the context.
type CartGateway interface {
	Cart(ctx context.Context) (*entity.Cart, error)
	AddItem(ctx context.Context, productID int64, quantity int) (*StatusMessage, error)
	UpdateItem(ctx context.Context, itemID int64, quantity int) (*StatusMessage, error)
	RemoveItem(ctx context.Context, itemID int64) (*StatusMessage, error)
	ClearCart(ctx context.Context) (*StatusMessage, error)

	Wishlist(ctx context.Context) ([]entity.WishlistItem, error)
	AddToWishlist(ctx context.Context, productID int64) (*StatusMessage, error)
	RemoveFromWishlist(ctx context.Context, productID int64) (*StatusMessage, error)
}
