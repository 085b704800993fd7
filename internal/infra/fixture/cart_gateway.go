package fixture

import (
	"context"

	"marketfront/internal/domain/entity"
	domainerrors "marketfront/internal/domain/errors"
	"marketfront/internal/domain/gateway"

	"github.com/pkg/errors"
)

type cartGateway struct {
	f *Fixture
}

// NewCartGateway returns the fixture implementation of the cart and
// wishlist resources.
func NewCartGateway(f *Fixture) gateway.CartGateway {
	return &cartGateway{f: f}
}

// cartOf returns the acting user's cart, creating an empty one on first
// access. Callers must hold the write lock.
func (g *cartGateway) cartOf(userID int64) *entity.Cart {
	cart, ok := g.f.carts[userID]
	if !ok {
		cart = &entity.Cart{ID: g.f.nextID(), UserID: userID}
		g.f.carts[userID] = cart
	}

	return cart
}

func (g *cartGateway) Cart(ctx context.Context) (*entity.Cart, error) {
	user, err := g.f.actingUser(ctx)
	if err != nil {
		return nil, err
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	cart := *g.cartOf(user.ID)
	cart.Items = append([]entity.CartItem(nil), cart.Items...)

	return &cart, nil
}

func (g *cartGateway) AddItem(ctx context.Context, productID int64, quantity int) (*gateway.StatusMessage, error) {
	user, err := g.f.actingUser(ctx)
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		quantity = 1
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	product := g.f.productByID(productID)
	if product == nil {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound)
	}

	cart := g.cartOf(user.ID)
	for i := range cart.Items {
		if cart.Items[i].Product.ID == productID {
			cart.Items[i].Quantity += quantity
			recalculate(cart)

			return &gateway.StatusMessage{Success: true, Message: "Item quantity updated"}, nil
		}
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	cart.Items = append(cart.Items, entity.CartItem{
		ID: g.f.nextID(),
		Product: entity.ProductCard{
			ID: product.ID, Name: product.Name, Image: image,
			Price: product.Price, OriginalPrice: product.OriginalPrice,
			Rating: product.Rating, Vendor: product.Vendor,
		},
		Quantity: quantity,
		Price:    product.Price,
	})
	recalculate(cart)

	return &gateway.StatusMessage{Success: true, Message: "Item added to cart"}, nil
}

func (g *cartGateway) UpdateItem(ctx context.Context, itemID int64, quantity int) (*gateway.StatusMessage, error) {
	user, err := g.f.actingUser(ctx)
	if err != nil {
		return nil, err
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	cart := g.cartOf(user.ID)
	for i := range cart.Items {
		if cart.Items[i].ID != itemID {
			continue
		}
		if quantity < 1 {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		} else {
			cart.Items[i].Quantity = quantity
		}
		recalculate(cart)

		return &gateway.StatusMessage{Success: true, Message: "Cart updated"}, nil
	}

	return nil, errors.WithStack(gateway.ErrNotFound)
}

func (g *cartGateway) RemoveItem(ctx context.Context, itemID int64) (*gateway.StatusMessage, error) {
	user, err := g.f.actingUser(ctx)
	if err != nil {
		return nil, err
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	cart := g.cartOf(user.ID)
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			recalculate(cart)

			return &gateway.StatusMessage{Success: true, Message: "Item removed from cart"}, nil
		}
	}

	return nil, errors.WithStack(gateway.ErrNotFound)
}

func (g *cartGateway) ClearCart(ctx context.Context) (*gateway.StatusMessage, error) {
	user, err := g.f.actingUser(ctx)
	if err != nil {
		return nil, err
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	cart := g.cartOf(user.ID)
	cart.Items = nil
	cart.CouponCode = ""
	cart.CouponDiscount = 0
	recalculate(cart)

	return &gateway.StatusMessage{Success: true, Message: "Cart cleared"}, nil
}

func (g *cartGateway) Wishlist(ctx context.Context) ([]entity.WishlistItem, error) {
	user, err := g.f.actingUser(ctx)
	if err != nil {
		return nil, err
	}

	g.f.mu.RLock()
	defer g.f.mu.RUnlock()

	return append([]entity.WishlistItem(nil), g.f.wishlists[user.ID]...), nil
}

func (g *cartGateway) AddToWishlist(ctx context.Context, productID int64) (*gateway.StatusMessage, error) {
	user, err := g.f.actingUser(ctx)
	if err != nil {
		return nil, err
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	product := g.f.productByID(productID)
	if product == nil {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound)
	}

	for _, item := range g.f.wishlists[user.ID] {
		if item.ProductID == productID {
			return &gateway.StatusMessage{Success: true, Message: "Item already in wishlist"}, nil
		}
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	g.f.wishlists[user.ID] = append(g.f.wishlists[user.ID], entity.WishlistItem{
		ID:        g.f.nextID(),
		ProductID: productID,
		Product: entity.ProductCard{
			ID: product.ID, Name: product.Name, Image: image,
			Price: product.Price, OriginalPrice: product.OriginalPrice,
			Rating: product.Rating, Vendor: product.Vendor,
		},
		AddedAt: daysAgo(0),
	})

	return &gateway.StatusMessage{Success: true, Message: "Item added to wishlist"}, nil
}

func (g *cartGateway) RemoveFromWishlist(ctx context.Context, productID int64) (*gateway.StatusMessage, error) {
	user, err := g.f.actingUser(ctx)
	if err != nil {
		return nil, err
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	items := g.f.wishlists[user.ID]
	for i := range items {
		if items[i].ProductID == productID {
			g.f.wishlists[user.ID] = append(items[:i], items[i+1:]...)

			return &gateway.StatusMessage{Success: true, Message: "Item removed from wishlist"}, nil
		}
	}

	return nil, errors.WithStack(gateway.ErrNotFound)
}
