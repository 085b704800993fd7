package fixture

import (
	"context"

	"marketfront/internal/domain/entity"
	domainerrors "marketfront/internal/domain/errors"
	"marketfront/internal/domain/gateway"

	"github.com/pkg/errors"
)

type adminGateway struct {
	f *Fixture
}

// NewAdminGateway returns the fixture implementation of the admin resource.
func NewAdminGateway(f *Fixture) gateway.AdminGateway {
	return &adminGateway{f: f}
}

func (g *adminGateway) requireAdmin(ctx context.Context) error {
	user, err := g.f.actingUser(ctx)
	if err != nil {
		return err
	}
	if user.Role != entity.RoleAdmin {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	return nil
}

func (g *adminGateway) Vendors(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.VendorProfile], error) {
	if err := g.requireAdmin(ctx); err != nil {
		return nil, err
	}

	g.f.mu.RLock()
	vendors := make([]entity.VendorProfile, 0, len(g.f.vendors))
	for _, v := range g.f.vendors {
		vendors = append(vendors, *v)
	}
	g.f.mu.RUnlock()

	size := page.Size
	if size <= 0 {
		size = 10
	}
	start := page.Page * size
	if start < 0 || start > len(vendors) {
		start = len(vendors)
	}
	end := start + size
	if end > len(vendors) {
		end = len(vendors)
	}

	return &entity.Page[entity.VendorProfile]{
		Content:       vendors[start:end],
		TotalPages:    (len(vendors) + size - 1) / size,
		TotalElements: len(vendors),
		Size:          size,
		Number:        page.Page,
	}, nil
}

func (g *adminGateway) VendorByID(ctx context.Context, vendorID int64) (*entity.VendorProfile, error) {
	if err := g.requireAdmin(ctx); err != nil {
		return nil, err
	}

	g.f.mu.RLock()
	defer g.f.mu.RUnlock()

	for _, v := range g.f.vendors {
		if v.ID == vendorID {
			profile := *v

			return &profile, nil
		}
	}

	return nil, errors.WithStack(domainerrors.ErrVendorNotFound)
}

func (g *adminGateway) ApproveVendor(ctx context.Context, vendorID int64) (*entity.VendorProfile, error) {
	return g.setApproval(ctx, vendorID, entity.ApprovalApproved, "")
}

func (g *adminGateway) RejectVendor(ctx context.Context, vendorID int64, reason string) (*entity.VendorProfile, error) {
	return g.setApproval(ctx, vendorID, entity.ApprovalRejected, reason)
}

func (g *adminGateway) setApproval(ctx context.Context, vendorID int64, status entity.ApprovalStatus, reason string) (*entity.VendorProfile, error) {
	if err := g.requireAdmin(ctx); err != nil {
		return nil, err
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	for _, v := range g.f.vendors {
		if v.ID != vendorID {
			continue
		}
		v.ApprovalStatus = status
		v.RejectionReason = reason
		profile := *v

		return &profile, nil
	}

	return nil, errors.WithStack(domainerrors.ErrVendorNotFound)
}

func (g *adminGateway) Categories(ctx context.Context) ([]entity.Category, error) {
	if err := g.requireAdmin(ctx); err != nil {
		return nil, err
	}

	g.f.mu.RLock()
	defer g.f.mu.RUnlock()

	return append([]entity.Category(nil), g.f.categories...), nil
}

func (g *adminGateway) CreateCategory(ctx context.Context, input gateway.CategoryInput) (*entity.Category, error) {
	if err := g.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := validateCategory(input); err != nil {
		return nil, err
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	slug := input.Slug
	if slug == "" {
		slug = entity.Slugify(input.Name)
	}
	category := entity.Category{
		ID:          g.f.nextID(),
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Image:       input.Image,
		Featured:    input.Featured,
	}
	g.f.categories = append(g.f.categories, category)

	return &category, nil
}

func (g *adminGateway) UpdateCategory(ctx context.Context, categoryID int64, input gateway.CategoryInput) (*entity.Category, error) {
	if err := g.requireAdmin(ctx); err != nil {
		return nil, err
	}
	if err := validateCategory(input); err != nil {
		return nil, err
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	for i := range g.f.categories {
		if g.f.categories[i].ID != categoryID {
			continue
		}
		category := &g.f.categories[i]
		category.Name = input.Name
		category.Description = input.Description
		category.Image = input.Image
		category.Featured = input.Featured
		if input.Slug != "" {
			category.Slug = input.Slug
		}
		updated := *category

		return &updated, nil
	}

	return nil, errors.WithStack(domainerrors.ErrCategoryNotFound)
}

func (g *adminGateway) DeleteCategory(ctx context.Context, categoryID int64) (*gateway.StatusMessage, error) {
	if err := g.requireAdmin(ctx); err != nil {
		return nil, err
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	for i := range g.f.categories {
		if g.f.categories[i].ID == categoryID {
			g.f.categories = append(g.f.categories[:i], g.f.categories[i+1:]...)

			return &gateway.StatusMessage{Success: true, Message: "Category deleted"}, nil
		}
	}

	return nil, errors.WithStack(domainerrors.ErrCategoryNotFound)
}

func (g *adminGateway) AddSubcategory(ctx context.Context, categoryID int64, input gateway.CategoryInput) (*entity.Category, error) {
	if err := g.requireAdmin(ctx); err != nil {
		return nil, err
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	for i := range g.f.categories {
		if g.f.categories[i].ID != categoryID {
			continue
		}
		slug := input.Slug
		if slug == "" {
			slug = entity.Slugify(input.Name)
		}
		sub := entity.Category{
			ID:   g.f.nextID(),
			Name: input.Name,
			Slug: slug,
		}
		g.f.categories[i].Subcategories = append(g.f.categories[i].Subcategories, sub)
		updated := g.f.categories[i]

		return &updated, nil
	}

	return nil, errors.WithStack(domainerrors.ErrCategoryNotFound)
}

func (g *adminGateway) UpdateSubcategory(ctx context.Context, categoryID, subcategoryID int64, input gateway.CategoryInput) (*gateway.StatusMessage, error) {
	if err := g.requireAdmin(ctx); err != nil {
		return nil, err
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	for i := range g.f.categories {
		if g.f.categories[i].ID != categoryID {
			continue
		}
		subs := g.f.categories[i].Subcategories
		for j := range subs {
			if subs[j].ID != subcategoryID {
				continue
			}
			subs[j].Name = input.Name
			if input.Slug != "" {
				subs[j].Slug = input.Slug
			}

			return &gateway.StatusMessage{Success: true, Message: "Subcategory updated"}, nil
		}
	}

	return nil, errors.WithStack(domainerrors.ErrCategoryNotFound)
}

func (g *adminGateway) DeleteSubcategory(ctx context.Context, categoryID, subcategoryID int64) (*gateway.StatusMessage, error) {
	if err := g.requireAdmin(ctx); err != nil {
		return nil, err
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	for i := range g.f.categories {
		if g.f.categories[i].ID != categoryID {
			continue
		}
		subs := g.f.categories[i].Subcategories
		for j := range subs {
			if subs[j].ID == subcategoryID {
				g.f.categories[i].Subcategories = append(subs[:j], subs[j+1:]...)

				return &gateway.StatusMessage{Success: true, Message: "Subcategory deleted"}, nil
			}
		}
	}

	return nil, errors.WithStack(domainerrors.ErrCategoryNotFound)
}

func (g *adminGateway) Dashboard(ctx context.Context) (*gateway.AdminDashboard, error) {
	if err := g.requireAdmin(ctx); err != nil {
		return nil, err
	}

	g.f.mu.RLock()
	defer g.f.mu.RUnlock()

	dashboard := &gateway.AdminDashboard{ProductCount: len(g.f.products)}
	for _, v := range g.f.vendors {
		dashboard.VendorCount++
		if v.ApprovalStatus == entity.ApprovalPending {
			dashboard.PendingVendorCount++
		}
		if len(dashboard.RecentVendors) < 5 {
			dashboard.RecentVendors = append(dashboard.RecentVendors, *v)
		}
	}
	for _, u := range g.f.users {
		if u.Role == entity.RoleCustomer {
			dashboard.CustomerCount++
		}
	}
	for _, orders := range g.f.orders {
		for _, order := range orders {
			dashboard.OrderCount++
			if order.Status != entity.OrderCancelled {
				dashboard.TotalRevenue += order.Total
			}
		}
	}

	return dashboard, nil
}

// validateCategory enforces the admin form's required fields. The backend
// rejects these with a message the form surfaces verbatim.
func validateCategory(input gateway.CategoryInput) error {
	if input.Name == "" {
		return domainerrors.NewBackendError(400, "Name is required", "")
	}
	if input.Description == "" {
		return domainerrors.NewBackendError(400, "Description is required", "")
	}

	return nil
}
