package backend

import (
	"context"

	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"

	"github.com/pkg/errors"
)

type cartGateway struct {
	client *Client
}

// NewCartGateway returns the HTTP implementation of the cart and wishlist
// resources.
func NewCartGateway(client *Client) gateway.CartGateway {
	return &cartGateway{client: client}
}

func (g *cartGateway) Cart(ctx context.Context) (*entity.Cart, error) {
	cart := &entity.Cart{}
	if err := g.client.Get(ctx, "/cart", nil, cart); err != nil {
		return nil, errors.WithStack(err)
	}

	return cart, nil
}

func (g *cartGateway) AddItem(ctx context.Context, productID int64, quantity int) (*gateway.StatusMessage, error) {
	body := map[string]any{"productId": productID, "quantity": quantity}
	msg := &gateway.StatusMessage{}
	if err := g.client.Post(ctx, "/cart/items", body, msg); err != nil {
		return nil, errors.WithStack(err)
	}

	return msg, nil
}

func (g *cartGateway) UpdateItem(ctx context.Context, itemID int64, quantity int) (*gateway.StatusMessage, error) {
	body := map[string]any{"quantity": quantity}
	msg := &gateway.StatusMessage{}
	if err := g.client.Put(ctx, "/cart/items/"+entity.FormatID(itemID), body, msg); err != nil {
		return nil, errors.WithStack(err)
	}

	return msg, nil
}

func (g *cartGateway) RemoveItem(ctx context.Context, itemID int64) (*gateway.StatusMessage, error) {
	msg := &gateway.StatusMessage{}
	if err := g.client.Delete(ctx, "/cart/items/"+entity.FormatID(itemID), msg); err != nil {
		return nil, errors.WithStack(err)
	}

	return msg, nil
}

func (g *cartGateway) ClearCart(ctx context.Context) (*gateway.StatusMessage, error) {
	msg := &gateway.StatusMessage{}
	if err := g.client.Delete(ctx, "/cart", msg); err != nil {
		return nil, errors.WithStack(err)
	}

	return msg, nil
}

func (g *cartGateway) Wishlist(ctx context.Context) ([]entity.WishlistItem, error) {
	var items []entity.WishlistItem
	if err := g.client.Get(ctx, "/users/wishlist", nil, &items); err != nil {
		return nil, errors.WithStack(err)
	}

	return items, nil
}

func (g *cartGateway) AddToWishlist(ctx context.Context, productID int64) (*gateway.StatusMessage, error) {
	body := map[string]any{"productId": productID}
	msg := &gateway.StatusMessage{}
	if err := g.client.Post(ctx, "/users/wishlist", body, msg); err != nil {
		return nil, errors.WithStack(err)
	}

	return msg, nil
}

func (g *cartGateway) RemoveFromWishlist(ctx context.Context, productID int64) (*gateway.StatusMessage, error) {
	msg := &gateway.StatusMessage{}
	if err := g.client.Delete(ctx, "/users/wishlist/"+entity.FormatID(productID), msg); err != nil {
		return nil, errors.WithStack(err)
	}

	return msg, nil
}
