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

// orderService implements the OrderUsecase interface.
type orderService struct {
	orders gateway.OrderGateway
	carts  gateway.CartGateway
	logger *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderGateway gateway.OrderGateway
	CartGateway  gateway.CartGateway
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orders: params.OrderGateway,
		carts:  params.CartGateway,
		logger: params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderService) Orders(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.Order], error) {
	orders, err := srv.orders.Orders(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}

	return orders, nil
}

func (srv *orderService) OrderByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	order, err := srv.orders.OrderByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load order %d", orderID)
	}

	return order, nil
}

// Checkout reads the current cart and submits its lines as a new order.
func (srv *orderService) Checkout(ctx context.Context, input usecase.CheckoutInput) (*entity.Order, error) {
	cart, err := srv.carts.Cart(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart for checkout")
	}
	if len(cart.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "cart is empty")
	}

	items := make([]gateway.OrderItemInput, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, gateway.OrderItemInput{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
		})
	}

	order, err := srv.orders.CreateOrder(ctx, gateway.OrderInput{
		Items:           items,
		ShippingAddress: input.ShippingAddress,
		CouponCode:      input.CouponCode,
	})
	if err != nil {
		srv.log(ctx).Error("Checkout failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "checkout failed")
	}

	srv.log(ctx).Info("Order placed", slog.Int64("orderID", order.ID), slog.String("orderNumber", order.OrderNumber))

	return order, nil
}

func (srv *orderService) CancelOrder(ctx context.Context, orderID int64) (*gateway.StatusMessage, error) {
	msg, err := srv.orders.CancelOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to cancel order %d", orderID)
	}
	if msg.Success {
		srv.log(ctx).Info("Order cancelled", slog.Int64("orderID", orderID))
	}

	return msg, nil
}
