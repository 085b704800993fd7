package impl

import (
	"context"
	"testing"

	"marketfront/internal/domain/entity"
	domainerrors "marketfront/internal/domain/errors"
	"marketfront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService(orders *stubOrderGateway, carts *stubCartGateway) usecase.OrderUsecase {
	return NewOrderService(OrderServiceParams{
		OrderGateway: orders,
		CartGateway:  carts,
		Logger:       testLogger(),
	})
}

func TestCheckoutSubmitsCartLines(t *testing.T) {
	orders := &stubOrderGateway{}
	carts := &stubCartGateway{
		cart: &entity.Cart{
			Items: []entity.CartItem{
				{ID: 1, Product: entity.ProductCard{ID: 10}, Quantity: 2},
				{ID: 2, Product: entity.ProductCard{ID: 11}, Quantity: 1},
			},
		},
	}
	srv := newOrderService(orders, carts)

	order, err := srv.Checkout(context.Background(), usecase.CheckoutInput{
		ShippingAddress: entity.Address{City: "Mumbai"},
		CouponCode:      "WELCOME10",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)

	require.NotNil(t, orders.created)
	require.Len(t, orders.created.Items, 2)
	assert.Equal(t, int64(10), orders.created.Items[0].ProductID)
	assert.Equal(t, 2, orders.created.Items[0].Quantity)
	assert.Equal(t, "WELCOME10", orders.created.CouponCode)
	assert.Equal(t, "Mumbai", orders.created.ShippingAddress.City)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	orders := &stubOrderGateway{}
	carts := &stubCartGateway{cart: &entity.Cart{}}
	srv := newOrderService(orders, carts)

	_, err := srv.Checkout(context.Background(), usecase.CheckoutInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Nil(t, orders.created)
}

func TestCheckoutPropagatesCartFailure(t *testing.T) {
	carts := &stubCartGateway{CartErr: errors.New("backend unavailable")}
	srv := newOrderService(&stubOrderGateway{}, carts)

	_, err := srv.Checkout(context.Background(), usecase.CheckoutInput{})
	assert.Error(t, err)
}
