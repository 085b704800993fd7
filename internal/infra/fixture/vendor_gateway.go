package fixture

import (
	"context"

	"marketfront/internal/domain/entity"
	domainerrors "marketfront/internal/domain/errors"
	"marketfront/internal/domain/gateway"

	"github.com/pkg/errors"
)

type vendorGateway struct {
	f *Fixture
}

// NewVendorGateway returns the fixture implementation of the vendors resource.
func NewVendorGateway(f *Fixture) gateway.VendorGateway {
	return &vendorGateway{f: f}
}

// actingVendor resolves the bearer token to a vendor profile.
func (g *vendorGateway) actingVendor(ctx context.Context) (*entity.VendorProfile, error) {
	user, err := g.f.actingUser(ctx)
	if err != nil {
		return nil, err
	}
	if user.Role != entity.RoleVendor {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	g.f.mu.RLock()
	defer g.f.mu.RUnlock()

	vendor := g.f.vendorByUserID(user.ID)
	if vendor == nil {
		return nil, errors.WithStack(domainerrors.ErrVendorNotFound)
	}

	return vendor, nil
}

func (g *vendorGateway) Profile(ctx context.Context) (*entity.VendorProfile, error) {
	vendor, err := g.actingVendor(ctx)
	if err != nil {
		return nil, err
	}

	profile := *vendor

	return &profile, nil
}

func (g *vendorGateway) UpdateProfile(ctx context.Context, input gateway.VendorProfileInput) (*entity.VendorProfile, error) {
	vendor, err := g.actingVendor(ctx)
	if err != nil {
		return nil, err
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	vendor.StoreName = input.StoreName
	vendor.StoreDescription = input.StoreDescription
	vendor.StoreAddress = input.StoreAddress
	vendor.Specialty = input.Specialty
	vendor.ContactEmail = input.ContactEmail
	vendor.ContactPhone = input.ContactPhone

	profile := *vendor

	return &profile, nil
}

func (g *vendorGateway) Dashboard(ctx context.Context) (*entity.VendorDashboard, error) {
	vendor, err := g.actingVendor(ctx)
	if err != nil {
		return nil, err
	}

	g.f.mu.RLock()
	defer g.f.mu.RUnlock()

	dashboard := &entity.VendorDashboard{VendorProfile: *vendor}
	for _, p := range g.f.products {
		if p.Vendor.ID != vendor.ID {
			continue
		}
		dashboard.ProductCount++
		if len(dashboard.RecentProducts) < 5 {
			dashboard.RecentProducts = append(dashboard.RecentProducts, entity.ProductSummary{
				ID: p.ID, Name: p.Name, Price: p.Price,
				Inventory: p.Inventory, Category: p.Category, CreatedAt: p.CreatedAt,
			})
		}
	}
	for _, orders := range g.f.orders {
		for _, order := range orders {
			var total float64
			var count int
			for _, item := range order.Items {
				if item.VendorID == vendor.ID {
					total += item.Price * float64(item.Quantity)
					count += item.Quantity
				}
			}
			if count == 0 {
				continue
			}
			dashboard.OrderCount++
			dashboard.TotalRevenue += total
			if len(dashboard.RecentOrders) < 5 {
				dashboard.RecentOrders = append(dashboard.RecentOrders, entity.OrderSummary{
					ID: order.ID, OrderNumber: order.OrderNumber,
					CreatedAt: order.CreatedAt, Status: string(order.Status),
					Total: total, ItemCount: count,
				})
			}
			if order.CreatedAt.After(daysAgo(30)) {
				dashboard.MonthlyRevenue += total
			} else if order.CreatedAt.After(daysAgo(60)) {
				dashboard.PreviousMonthRevenue += total
			}
		}
	}

	return dashboard, nil
}

func (g *vendorGateway) Products(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.Product], error) {
	vendor, err := g.actingVendor(ctx)
	if err != nil {
		return nil, err
	}

	g.f.mu.RLock()
	matched := entity.FilterProducts(g.f.products, entity.ProductFilter{VendorIDs: []int64{vendor.ID}})
	g.f.mu.RUnlock()

	return paginate(matched, page), nil
}

func (g *vendorGateway) AddProduct(ctx context.Context, input gateway.ProductInput) (*entity.Product, error) {
	vendor, err := g.actingVendor(ctx)
	if err != nil {
		return nil, err
	}
	if !vendor.CanManageProducts() {
		return nil, errors.WithStack(domainerrors.ErrVendorNotApproved)
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	category := entity.CategoryRef{ID: input.CategoryID}
	var subcategory *entity.CategoryRef
	for _, c := range g.f.categories {
		if c.ID == input.CategoryID {
			category = entity.CategoryRef{ID: c.ID, Name: c.Name, Slug: c.Slug}
			for _, sub := range c.Subcategories {
				if sub.ID == input.SubcategoryID {
					subcategory = &entity.CategoryRef{ID: sub.ID, Name: sub.Name, Slug: sub.Slug}
				}
			}
		}
	}

	product := entity.Product{
		ID:             g.f.nextID(),
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		OriginalPrice:  input.OriginalPrice,
		Images:         input.Images,
		Category:       category,
		Subcategory:    subcategory,
		Vendor:         entity.VendorRef{ID: vendor.ID, Name: vendor.StoreName},
		Inventory:      input.Inventory,
		Specifications: input.Specifications,
		Tags:           input.Tags,
		InStock:        input.Inventory > 0,
		CreatedAt:      daysAgo(0),
	}
	product.SKU = "PROD-" + entity.FormatID(product.ID)
	g.f.products = append(g.f.products, product)
	vendor.ProductCount++

	return &product, nil
}

func (g *vendorGateway) UpdateProduct(ctx context.Context, productID int64, input gateway.ProductInput) (*entity.Product, error) {
	vendor, err := g.actingVendor(ctx)
	if err != nil {
		return nil, err
	}
	if !vendor.CanManageProducts() {
		return nil, errors.WithStack(domainerrors.ErrVendorNotApproved)
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	product := g.f.productByID(productID)
	if product == nil || product.Vendor.ID != vendor.ID {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound)
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.OriginalPrice = input.OriginalPrice
	if len(input.Images) > 0 {
		product.Images = input.Images
	}
	product.Inventory = input.Inventory
	product.InStock = input.Inventory > 0
	product.Specifications = input.Specifications
	product.Tags = input.Tags

	updated := *product

	return &updated, nil
}

func (g *vendorGateway) DeleteProduct(ctx context.Context, productID int64) (*gateway.StatusMessage, error) {
	vendor, err := g.actingVendor(ctx)
	if err != nil {
		return nil, err
	}
	if !vendor.CanManageProducts() {
		return nil, errors.WithStack(domainerrors.ErrVendorNotApproved)
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	for i := range g.f.products {
		if g.f.products[i].ID == productID && g.f.products[i].Vendor.ID == vendor.ID {
			g.f.products = append(g.f.products[:i], g.f.products[i+1:]...)
			vendor.ProductCount--

			return &gateway.StatusMessage{Success: true, Message: "Product deleted"}, nil
		}
	}

	return nil, errors.WithStack(domainerrors.ErrProductNotFound)
}

func (g *vendorGateway) Orders(ctx context.Context, page entity.PageRequest) (*entity.Page[entity.Order], error) {
	vendor, err := g.actingVendor(ctx)
	if err != nil {
		return nil, err
	}

	g.f.mu.RLock()
	var matched []entity.Order
	for _, orders := range g.f.orders {
		for _, order := range orders {
			for _, item := range order.Items {
				if item.VendorID == vendor.ID {
					matched = append(matched, order)

					break
				}
			}
		}
	}
	g.f.mu.RUnlock()

	size := page.Size
	if size <= 0 {
		size = 10
	}
	start := page.Page * size
	if start < 0 || start > len(matched) {
		start = len(matched)
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}

	return &entity.Page[entity.Order]{
		Content:       matched[start:end],
		TotalPages:    (len(matched) + size - 1) / size,
		TotalElements: len(matched),
		Size:          size,
		Number:        page.Page,
	}, nil
}

func (g *vendorGateway) UpdateOrderStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*gateway.StatusMessage, error) {
	vendor, err := g.actingVendor(ctx)
	if err != nil {
		return nil, err
	}

	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	for userID := range g.f.orders {
		for i := range g.f.orders[userID] {
			order := &g.f.orders[userID][i]
			if order.ID != orderID {
				continue
			}
			for _, item := range order.Items {
				if item.VendorID == vendor.ID {
					order.Status = status

					return &gateway.StatusMessage{Success: true, Message: "Order status updated"}, nil
				}
			}
		}
	}

	return nil, errors.WithStack(domainerrors.ErrOrderNotFound)
}
