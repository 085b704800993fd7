package gateway

import (
	"context"

	"marketfront/internal/domain/entity"
)

// ProductQuery carries the catalog list parameters passed through to the
// backend as query-string values.
type ProductQuery struct {
	Page     int
	Size     int
	Sort     entity.ProductSort
	Search   string
	Category string
}

// ReviewInput is the submit-review form body.
type ReviewInput struct {
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// CatalogGateway wraps the backend's /categories and /products resources.
type CatalogGateway interface {
	Categories(ctx context.Context) ([]entity.Category, error)
	FeaturedCategories(ctx context.Context) ([]entity.Category, error)
	CategoryByIDOrSlug(ctx context.Context, idOrSlug string) (*entity.Category, error)
	ProductsByCategory(ctx context.Context, categoryID int64, page entity.PageRequest) (*entity.Page[entity.Product], error)

	Products(ctx context.Context, query ProductQuery) (*entity.Page[entity.Product], error)
	ProductByID(ctx context.Context, id int64) (*entity.Product, error)
	TrendingProducts(ctx context.Context) ([]entity.Product, error)
	RecommendedProducts(ctx context.Context) ([]entity.Product, error)
	SimilarProducts(ctx context.Context, productID int64) ([]entity.Product, error)

	ProductReviews(ctx context.Context, productID int64) ([]entity.Review, error)
	AddReview(ctx context.Context, productID int64, input ReviewInput) (*entity.Review, error)
	MarkReviewHelpful(ctx context.Context, reviewID int64) (*StatusMessage, error)
}
