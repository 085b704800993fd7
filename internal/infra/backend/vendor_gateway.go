package backend

import (
	"context"

	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"

	"github.com/pkg/errors"
)

type vendorGateway struct {
	client *Client
}

// NewVendorGateway returns the HTTP implementation of the vendors resource.
func NewVendorGateway(client *Client) gateway.VendorGateway {
	return &vendorGateway{client: client}
}

func (g *vendorGateway) Profile(ctx context.Context) (*entity.VendorProfile, error) {
	profile := &entity.VendorProfile{}
	if err := g.client.Get(ctx, "/vendors/profile", nil, profile); err != nil {
		return nil, errors.WithStack(err)
	}

	return profile, nil
}

func (g *vendorGateway) UpdateProfile(ctx context.Context, input gateway.VendorProfileInput) (*entity.VendorProfile, error) {
	profile := &entity.VendorProfile{}
	if err := g.client.Put(ctx, "/vendors/profile", input, profile); err != nil {
		return nil, errors.WithStack(err)
	}

	return profile, nil
}

func (g *vendorGateway) Dashboard(ctx context.Context) (*entity.VendorDashboard, error) {
	dashboard := &entity.VendorDashboard{}
	if err := g.client.Get(ctx, "/vendors/dashboard", nil, dashboard); err != nil {
		return nil, errors.WithStack(err)
	}

	return dashboard, nil
}

func (g *vendorGateway) Products(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.Product], error) {
	out := &entity.Page[entity.Product]{}
	if err := g.client.Get(ctx, "/vendors/products", pageQuery(page), out); err != nil {
		return nil, errors.WithStack(err)
	}

	return out, nil
}

func (g *vendorGateway) AddProduct(ctx context.Context, input gateway.ProductInput) (*entity.Product, error) {
	product := &entity.Product{}
	if err := g.client.Post(ctx, "/vendors/products", input, product); err != nil {
		return nil, errors.WithStack(err)
	}

	return product, nil
}

func (g *vendorGateway) UpdateProduct(ctx context.Context, productID int64, input gateway.ProductInput) (*entity.Product, error) {
	product := &entity.Product{}
	if err := g.client.Put(ctx, "/vendors/products/"+entity.FormatID(productID), input, product); err != nil {
		return nil, errors.WithStack(err)
	}

	return product, nil
}

func (g *vendorGateway) DeleteProduct(ctx context.Context, productID int64) (*gateway.StatusMessage, error) {
	msg := &gateway.StatusMessage{}
	if err := g.client.Delete(ctx, "/vendors/products/"+entity.FormatID(productID), msg); err != nil {
		return nil, errors.WithStack(err)
	}

	return msg, nil
}

func (g *vendorGateway) Orders(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.Order], error) {
	out := &entity.Page[entity.Order]{}
	if err := g.client.Get(ctx, "/vendors/orders", pageQuery(page), out); err != nil {
		return nil, errors.WithStack(err)
	}

	return out, nil
}

func (g *vendorGateway) UpdateOrderStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*gateway.StatusMessage, error) {
	body := map[string]any{"status": status}
	msg := &gateway.StatusMessage{}
	path := "/vendors/orders/" + entity.FormatID(orderID) + "/status"
	if err := g.client.Put(ctx, path, body, msg); err != nil {
		return nil, errors.WithStack(err)
	}

	return msg, nil
}
