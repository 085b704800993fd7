package backend

import (
	"context"

	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"

	"github.com/pkg/errors"
)

type adminGateway struct {
	client *Client
}

// NewAdminGateway returns the HTTP implementation of the admin resource.
func NewAdminGateway(client *Client) gateway.AdminGateway {
	return &adminGateway{client: client}
}

func (g *adminGateway) Vendors(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.VendorProfile], error) {
	out := &entity.Page[entity.VendorProfile]{}
	if err := g.client.Get(ctx, "/admin/vendors", pageQuery(page), out); err != nil {
		return nil, errors.WithStack(err)
	}

	return out, nil
}

func (g *adminGateway) VendorByID(ctx context.Context, vendorID int64) (*entity.VendorProfile, error) {
	profile := &entity.VendorProfile{}
	if err := g.client.Get(ctx, "/admin/vendors/"+entity.FormatID(vendorID), nil, profile); err != nil {
		return nil, errors.WithStack(err)
	}

	return profile, nil
}

func (g *adminGateway) ApproveVendor(ctx context.Context, vendorID int64) (*entity.VendorProfile, error) {
	profile := &entity.VendorProfile{}
	path := "/admin/vendors/" + entity.FormatID(vendorID) + "/approve"
	if err := g.client.Post(ctx, path, nil, profile); err != nil {
		return nil, errors.WithStack(err)
	}

	return profile, nil
}

func (g *adminGateway) RejectVendor(ctx context.Context, vendorID int64, reason string) (*entity.VendorProfile, error) {
	body := map[string]any{"reason": reason}
	profile := &entity.VendorProfile{}
	path := "/admin/vendors/" + entity.FormatID(vendorID) + "/reject"
	if err := g.client.Post(ctx, path, body, profile); err != nil {
		return nil, errors.WithStack(err)
	}

	return profile, nil
}

func (g *adminGateway) Categories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := g.client.Get(ctx, "/admin/categories", nil, &categories); err != nil {
		return nil, errors.WithStack(err)
	}

	return categories, nil
}

func (g *adminGateway) CreateCategory(ctx context.Context, input gateway.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{}
	if err := g.client.Post(ctx, "/admin/categories", input, category); err != nil {
		return nil, errors.WithStack(err)
	}

	return category, nil
}

func (g *adminGateway) UpdateCategory(ctx context.Context, categoryID int64, input gateway.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{}
	if err := g.client.Put(ctx, "/admin/categories/"+entity.FormatID(categoryID), input, category); err != nil {
		return nil, errors.WithStack(err)
	}

	return category, nil
}

func (g *adminGateway) DeleteCategory(ctx context.Context, categoryID int64) (*gateway.StatusMessage, error) {
	msg := &gateway.StatusMessage{}
	if err := g.client.Delete(ctx, "/admin/categories/"+entity.FormatID(categoryID), msg); err != nil {
		return nil, errors.WithStack(err)
	}

	return msg, nil
}

func (g *adminGateway) AddSubcategory(ctx context.Context, categoryID int64, input gateway.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{}
	path := "/admin/categories/" + entity.FormatID(categoryID) + "/subcategories"
	if err := g.client.Post(ctx, path, input, category); err != nil {
		return nil, errors.WithStack(err)
	}

	return category, nil
}

func (g *adminGateway) UpdateSubcategory(ctx context.Context, categoryID, subcategoryID int64, input gateway.CategoryInput) (*gateway.StatusMessage, error) {
	msg := &gateway.StatusMessage{}
	path := "/admin/categories/" + entity.FormatID(categoryID) + "/subcategories/" + entity.FormatID(subcategoryID)
	if err := g.client.Put(ctx, path, input, msg); err != nil {
		return nil, errors.WithStack(err)
	}

	return msg, nil
}

func (g *adminGateway) DeleteSubcategory(ctx context.Context, categoryID, subcategoryID int64) (*gateway.StatusMessage, error) {
	msg := &gateway.StatusMessage{}
	path := "/admin/categories/" + entity.FormatID(categoryID) + "/subcategories/" + entity.FormatID(subcategoryID)
	if err := g.client.Delete(ctx, path, msg); err != nil {
		return nil, errors.WithStack(err)
	}

	return msg, nil
}

func (g *adminGateway) Dashboard(ctx context.Context) (*gateway.AdminDashboard, error) {
	dashboard := &gateway.AdminDashboard{}
	if err := g.client.Get(ctx, "/admin/dashboard", nil, dashboard); err != nil {
		return nil, errors.WithStack(err)
	}

	return dashboard, nil
}
