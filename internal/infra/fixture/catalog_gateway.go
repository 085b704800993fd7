package fixture

import (
	"context"
	"sort"

	"marketfront/internal/domain/entity"
	domainerrors "marketfront/internal/domain/errors"
	"marketfront/internal/domain/gateway"

	"github.com/pkg/errors"
)

type catalogGateway struct {
	f *Fixture
}

// NewCatalogGateway returns the fixture implementation of the catalog resource.
func NewCatalogGateway(f *Fixture) gateway.CatalogGateway {
	return &catalogGateway{f: f}
}

func (g *catalogGateway) Categories(_ context.Context) ([]entity.Category, error) {
	g.f.mu.RLock()
	defer g.f.mu.RUnlock()

	out := make([]entity.Category, len(g.f.categories))
	copy(out, g.f.categories)

	return out, nil
}

func (g *catalogGateway) FeaturedCategories(ctx context.Context) ([]entity.Category, error) {
	all, err := g.Categories(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entity.Category, 0, len(all))
	for _, c := range all {
		if c.Featured {
			out = append(out, c)
		}
	}

	return out, nil
}

func (g *catalogGateway) CategoryByIDOrSlug(_ context.Context, idOrSlug string) (*entity.Category, error) {
	g.f.mu.RLock()
	defer g.f.mu.RUnlock()

	for i := range g.f.categories {
		if g.f.categories[i].MatchesIDOrSlug(idOrSlug) {
			category := g.f.categories[i]

			return &category, nil
		}
	}

	return nil, errors.WithStack(domainerrors.ErrCategoryNotFound)
}

func (g *catalogGateway) ProductsByCategory(_ context.Context, categoryID int64, page entity.PageRequest) (*entity.Page[entity.Product], error) {
	g.f.mu.RLock()
	matched := entity.FilterProducts(g.f.products, entity.ProductFilter{CategoryIDs: []int64{categoryID}})
	g.f.mu.RUnlock()

	return paginate(matched, page), nil
}

func (g *catalogGateway) Products(ctx context.Context, query gateway.ProductQuery) (*entity.Page[entity.Product], error) {
	g.f.mu.RLock()
	snapshot := make([]entity.Product, len(g.f.products))
	copy(snapshot, g.f.products)
	g.f.mu.RUnlock()

	filter := entity.ProductFilter{Search: query.Search}
	if query.Category != "" {
		if category, err := g.CategoryByIDOrSlug(ctx, query.Category); err == nil {
			filter.CategoryIDs = []int64{category.ID}
		}
	}

	matched := entity.FilterProducts(snapshot, filter)
	matched = entity.SortProducts(matched, query.Sort)

	return paginate(matched, entity.PageRequest{Page: query.Page, Size: query.Size}), nil
}

func (g *catalogGateway) ProductByID(_ context.Context, id int64) (*entity.Product, error) {
	g.f.mu.RLock()
	defer g.f.mu.RUnlock()

	if p := g.f.productByID(id); p != nil {
		product := *p
		product.Reviews = append([]entity.Review(nil), g.f.reviews[id]...)

		return &product, nil
	}

	return nil, errors.WithStack(domainerrors.ErrProductNotFound)
}

func (g *catalogGateway) TrendingProducts(_ context.Context) ([]entity.Product, error) {
	g.f.mu.RLock()
	snapshot := make([]entity.Product, len(g.f.products))
	copy(snapshot, g.f.products)
	g.f.mu.RUnlock()

	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].ReviewCount > snapshot[j].ReviewCount
	})
	if len(snapshot) > 8 {
		snapshot = snapshot[:8]
	}

	return snapshot, nil
}

func (g *catalogGateway) RecommendedProducts(_ context.Context) ([]entity.Product, error) {
	g.f.mu.RLock()
	snapshot := make([]entity.Product, len(g.f.products))
	copy(snapshot, g.f.products)
	g.f.mu.RUnlock()

	snapshot = entity.SortProducts(snapshot, entity.SortRating)
	if len(snapshot) > 8 {
		snapshot = snapshot[:8]
	}

	return snapshot, nil
}

func (g *catalogGateway) SimilarProducts(ctx context.Context, productID int64) ([]entity.Product, error) {
	product, err := g.ProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	g.f.mu.RLock()
	defer g.f.mu.RUnlock()

	out := make([]entity.Product, 0, 4)
	for _, p := range g.f.products {
		if p.ID == productID || p.Category.ID != product.Category.ID {
			continue
		}
		out = append(out, p)
		if len(out) == 4 {
			break
		}
	}

	return out, nil
}

func (g *catalogGateway) ProductReviews(_ context.Context, productID int64) ([]entity.Review, error) {
	g.f.mu.RLock()
	defer g.f.mu.RUnlock()

	if g.f.productByID(productID) == nil {
		return nil, errors.WithStack(domainerrors.ErrProductNotFound)
	}

	return append([]entity.Review(nil), g.f.reviews[productID]...), nil
}

func (g *catalogGateway) AddReview(ctx context.Context, productID int64, input gateway.ReviewInput) (*entity.Review, error) {
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

	review := entity.Review{
		ID:        g.f.nextID(),
		User:      entity.UserRef{ID: user.ID, Name: user.FullName(), Username: user.Username},
		Rating:    input.Rating,
		Title:     input.Title,
		Comment:   input.Comment,
		CreatedAt: daysAgo(0),
	}
	g.f.reviews[productID] = append(g.f.reviews[productID], review)
	product.ReviewCount++

	return &review, nil
}

func (g *catalogGateway) MarkReviewHelpful(_ context.Context, reviewID int64) (*gateway.StatusMessage, error) {
	g.f.mu.Lock()
	defer g.f.mu.Unlock()

	for productID := range g.f.reviews {
		for i := range g.f.reviews[productID] {
			if g.f.reviews[productID][i].ID == reviewID {
				g.f.reviews[productID][i].HelpfulCount++

				return &gateway.StatusMessage{Success: true, Message: "Review marked as helpful"}, nil
			}
		}
	}

	return nil, errors.WithStack(gateway.ErrNotFound)
}

// paginate slices the matched items into the backend's page envelope.
// Page numbering is zero-based.
func paginate(items []entity.Product, page entity.PageRequest) *entity.Page[entity.Product] {
	size := page.Size
	if size <= 0 {
		size = 12
	}
	number := page.Page
	if number < 0 {
		number = 0
	}

	totalPages := (len(items) + size - 1) / size
	start := number * size
	if start > len(items) {
		start = len(items)
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}

	return &entity.Page[entity.Product]{
		Content:       items[start:end],
		TotalPages:    totalPages,
		TotalElements: len(items),
		Size:          size,
		Number:        number,
	}
}
