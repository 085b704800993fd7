package usecase

import (
	"context"

	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"
)

// HomeView is the aggregate behind the landing page.
type HomeView struct {
	FeaturedCategories []entity.Category `json:"featuredCategories"`
	TrendingProducts   []entity.Product  `json:"trendingProducts"`
	RecommendedProducts []entity.Product `json:"recommendedProducts"`
}

// ProductListQuery carries the full product listing controls: the
// backend-paged parameters plus the snapshot-local refinements.
type ProductListQuery struct {
	Page     int
	Size     int
	Sort     entity.ProductSort
	Search   string
	Category string

	MinPrice    float64
	MaxPrice    float64
	InStockOnly bool
	OnSaleOnly  bool
}

// ProductListView is a page of products after snapshot refinement.
type ProductListView struct {
	Products      []entity.Product   `json:"products"`
	TotalPages    int                `json:"totalPages"`
	TotalElements int                `json:"totalElements"`
	Page          int                `json:"page"`
	Size          int                `json:"size"`
	Sort          entity.ProductSort `json:"sort"`
	Stale         bool               `json:"stale,omitempty"`
}

// CategoryView is the category page aggregate: the category record plus
// its first page of products.
type CategoryView struct {
	Category *entity.Category             `json:"category"`
	Products *entity.Page[entity.Product] `json:"products"`
}

// ProductDetailView is the product page aggregate.
type ProductDetailView struct {
	Product         *entity.Product  `json:"product"`
	Reviews         []entity.Review  `json:"reviews"`
	SimilarProducts []entity.Product `json:"similarProducts"`
}

// CatalogUsecase defines the browsing operations for the public pages.
type CatalogUsecase interface {
	Home(ctx context.Context) (*HomeView, error)
	Categories(ctx context.Context) ([]entity.Category, error)
	CategoryPage(ctx context.Context, idOrSlug string, page entity.PageRequest) (*CategoryView, error)
	Products(ctx context.Context, query ProductListQuery) (*ProductListView, error)
	ProductDetail(ctx context.Context, id int64) (*ProductDetailView, error)

	AddReview(ctx context.Context, productID int64, input gateway.ReviewInput) (*entity.Review, error)
	MarkReviewHelpful(ctx context.Context, reviewID int64) (*gateway.StatusMessage, error)
}
