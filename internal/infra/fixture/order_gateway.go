package fixture

import (
	"context"

	"marketfront/internal/domain/entity"
	domainerrors "marketfront/internal/domain/errors"
	"marketfront/internal/domain/gateway"

	"github.com/pkg/errors"
)

type orderGateway struct {
	f *Fixture
}

// NewOrderGateway returns the fixture implementation of the orders resource.
func NewOrderGateway(f *Fixture) gateway.OrderGateway {
	return &orderGateway{f: f}
}

func (g *orderGateway) Orders(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.Order], error) {
	user, err := g.f.actingUser(ctx)
	if err != nil {
		return nil, err
	}

	g.f.mu.RLock()
	orders := append([]entity.Order(nil), g.f.orders[user.ID]...)
	g.f.mu.RUnlock()

	size := page.Size
	if size <= 0 {
		size = 10
	}
	number := page.Page
	if number < 0 {
		number = 0
	}
	start := number * size
	if start > len(orders) {
		start = len(orders)
	}
	end := start + size
	if end > len(orders) {
		end = len(orders)
	}

	return &entity.Page[entity.Order]{
		Content:       orders[start:end],
		TotalPages:    (len(orders) + size - 1) / size,
		TotalElements: len(orders),
		Size:          size,
		Number:        number,
	}, nil
}

func (g *orderGateway) OrderByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	user, err := g.f.actingUser(ctx)
	if err != nil {
		return nil, err
	}

	g.f.mu.RLock()
	defer g.f.mu.RUnlock()

	for _, order := range g.f.orders[user.ID] {
		if order.ID == orderID {
			return &order, nil
		}
	}

	return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
}

func (g *orderGateway) CreateOrder(ctx context.Context, input gateway.OrderInput) (*entity.Order, error) {
	user, err := g.f.actingUser(ctx)
	if err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	order := entity.Order{
		ID:              g.f.nextID(),
		UserID:          user.ID,
		Status:          entity.OrderPending,
		ShippingAddress: &input.ShippingAddress,
		CreatedAt:       daysAgo(0),
	}
	order.OrderNumber = orderNumber(order.ID)

	for _, line := range input.Items {
		product := g.f.productByID(line.ProductID)
		if product == nil {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}
		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		order.Items = append(order.Items, entity.OrderItem{
			ID:           g.f.nextID(),
			ProductID:    product.ID,
			ProductName:  product.Name,
			ProductImage: image,
			Quantity:     quantity,
			Price:        product.Price,
			VendorID:     product.Vendor.ID,
			VendorName:   product.Vendor.Name,
		})
		order.Subtotal += product.Price * float64(quantity)
	}

	order.Tax = float64(int(order.Subtotal * 0.18))
	if order.Subtotal < 5000 {
		order.Shipping = 100
	}
	order.Total = order.Subtotal + order.Tax + order.Shipping - order.Discount
	g.f.orders[user.ID] = append([]entity.Order{order}, g.f.orders[user.ID]...)

	// Checkout consumes the cart.
	if cart, ok := g.f.carts[user.ID]; ok {
		cart.Items = nil
		cart.CouponCode = ""
		cart.CouponDiscount = 0
		recalculate(cart)
	}

	return &order, nil
}

func (g *orderGateway) CancelOrder(ctx context.Context, orderID int64) (*gateway.StatusMessage, error) {
	user, err := g.f.actingUser(ctx)
	if err != nil {
		return nil, err
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	orders := g.f.orders[user.ID]
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		if !orders[i].Status.Cancellable() {
			return &gateway.StatusMessage{
				Success: false,
				Message: "Order can no longer be cancelled",
			}, nil
		}
		orders[i].Status = entity.OrderCancelled

		return &gateway.StatusMessage{Success: true, Message: "Order cancelled"}, nil
	}

	return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
}
