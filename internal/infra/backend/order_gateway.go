package backend

import (
	"context"

	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"

	"github.com/pkg/errors"
)

type orderGateway struct {
	client *Client
}

// NewOrderGateway returns the HTTP implementation of the orders resource.
func NewOrderGateway(client *Client) gateway.OrderGateway {
	return &orderGateway{client: client}
}

func (g *orderGateway) Orders(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.Order], error) {
	out := &entity.Page[entity.Order]{}
	if err := g.client.Get(ctx, "/orders", pageQuery(page), out); err != nil {
		return nil, errors.WithStack(err)
	}

	return out, nil
}

func (g *orderGateway) OrderByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	order := &entity.Order{}
	if err := g.client.Get(ctx, "/orders/"+entity.FormatID(orderID), nil, order); err != nil {
		return nil, errors.WithStack(err)
	}

	return order, nil
}

func (g *orderGateway) CreateOrder(ctx context.Context, input gateway.OrderInput) (*entity.Order, error) {
	order := &entity.Order{}
	if err := g.client.Post(ctx, "/orders", input, order); err != nil {
		return nil, errors.WithStack(err)
	}

	return order, nil
}

func (g *orderGateway) CancelOrder(ctx context.Context, orderID int64) (*gateway.StatusMessage, error) {
	msg := &gateway.StatusMessage{}
	path := "/orders/" + entity.FormatID(orderID) + "/cancel"
	if err := g.client.Post(ctx, path, nil, msg); err != nil {
		return nil, errors.WithStack(err)
	}

	return msg, nil
}
