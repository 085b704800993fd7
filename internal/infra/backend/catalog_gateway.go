package backend

import (
	"context"
	"net/url"
	"strconv"

	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"

	"github.com/pkg/errors"
)

type catalogGateway struct {
	client *Client
}

// NewCatalogGateway returns the HTTP implementation of the categories and
// products resources.
func NewCatalogGateway(client *Client) gateway.CatalogGateway {
	return &catalogGateway{client: client}
}

func (g *catalogGateway) Categories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := g.client.Get(ctx, "/categories", nil, &categories); err != nil {
		return nil, errors.WithStack(err)
	}

	return categories, nil
}

func (g *catalogGateway) FeaturedCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := g.client.Get(ctx, "/categories/featured", nil, &categories); err != nil {
		return nil, errors.WithStack(err)
	}

	return categories, nil
}

func (g *catalogGateway) CategoryByIDOrSlug(ctx context.Context, idOrSlug string) (*entity.Category, error) {
	category := &entity.Category{}
	if err := g.client.Get(ctx, "/categories/"+url.PathEscape(idOrSlug), nil, category); err != nil {
		return nil, errors.WithStack(err)
	}

	return category, nil
}

func (g *catalogGateway) ProductsByCategory(ctx context.Context, categoryID int64, page entity.PageRequest) (*entity.Page[entity.Product], error) {
	out := &entity.Page[entity.Product]{}
	path := "/categories/" + entity.FormatID(categoryID) + "/products"
	if err := g.client.Get(ctx, path, pageQuery(page), out); err != nil {
		return nil, errors.WithStack(err)
	}

	return out, nil
}

func (g *catalogGateway) Products(ctx context.Context, query gateway.ProductQuery) (*entity.Page[entity.Product], error) {
	values := url.Values{}
	values.Set("page", strconv.Itoa(query.Page))
	if query.Size > 0 {
		values.Set("size", strconv.Itoa(query.Size))
	}
	values.Set("sort", query.Sort.QueryParam())
	if query.Search != "" {
		values.Set("search", query.Search)
	}
	if query.Category != "" {
		values.Set("category", query.Category)
	}

	out := &entity.Page[entity.Product]{}
	if err := g.client.Get(ctx, "/products", values, out); err != nil {
		return nil, errors.WithStack(err)
	}

	return out, nil
}

func (g *catalogGateway) ProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	product := &entity.Product{}
	if err := g.client.Get(ctx, "/products/"+entity.FormatID(id), nil, product); err != nil {
		return nil, errors.WithStack(err)
	}

	return product, nil
}

func (g *catalogGateway) TrendingProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := g.client.Get(ctx, "/products/trending", nil, &products); err != nil {
		return nil, errors.WithStack(err)
	}

	return products, nil
}

func (g *catalogGateway) RecommendedProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := g.client.Get(ctx, "/products/recommended", nil, &products); err != nil {
		return nil, errors.WithStack(err)
	}

	return products, nil
}

func (g *catalogGateway) SimilarProducts(ctx context.Context, productID int64) ([]entity.Product, error) {
	var products []entity.Product
	path := "/products/" + entity.FormatID(productID) + "/similar"
	if err := g.client.Get(ctx, path, nil, &products); err != nil {
		return nil, errors.WithStack(err)
	}

	return products, nil
}

func (g *catalogGateway) ProductReviews(ctx context.Context, productID int64) ([]entity.Review, error) {
	var reviews []entity.Review
	path := "/products/" + entity.FormatID(productID) + "/reviews"
	if err := g.client.Get(ctx, path, nil, &reviews); err != nil {
		return nil, errors.WithStack(err)
	}

	return reviews, nil
}

func (g *catalogGateway) AddReview(ctx context.Context, productID int64, input gateway.ReviewInput) (*entity.Review, error) {
	review := &entity.Review{}
	path := "/products/" + entity.FormatID(productID) + "/reviews"
	if err := g.client.Post(ctx, path, input, review); err != nil {
		return nil, errors.WithStack(err)
	}

	return review, nil
}

func (g *catalogGateway) MarkReviewHelpful(ctx context.Context, reviewID int64) (*gateway.StatusMessage, error) {
	msg := &gateway.StatusMessage{}
	path := "/reviews/" + entity.FormatID(reviewID) + "/helpful"
	if err := g.client.Post(ctx, path, nil, msg); err != nil {
		return nil, errors.WithStack(err)
	}

	return msg, nil
}

// pageQuery translates a PageRequest into backend query parameters.
func pageQuery(page entity.PageRequest) url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(page.Page))
	if page.Size > 0 {
		values.Set("size", strconv.Itoa(page.Size))
	}
	if page.Sort != "" {
		values.Set("sort", page.Sort)
	}

	return values
}
