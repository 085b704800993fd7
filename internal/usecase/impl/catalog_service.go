package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	deliverycontext "marketfront/internal/delivery/context"
	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface. It keeps the
// most recent product listing as a snapshot so price, stock and sale
// refinements run locally without another backend round trip.
type catalogService struct {
	catalog gateway.CatalogGateway
	logger  *slog.Logger

	// generation orders concurrent listing fetches. A response only
	// replaces the snapshot when no newer fetch has started since it was
	// issued, so a slow early response never clobbers a later one.
	generation atomic.Int64

	mu       sync.RWMutex
	snapshot []entity.Product
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogGateway gateway.CatalogGateway
	Logger         *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalog: params.CatalogGateway,
		logger:  params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Home assembles the landing page aggregate. The product rails degrade to
// empty lists individually; only a categories failure fails the page.
func (srv *catalogService) Home(ctx context.Context) (*usecase.HomeView, error) {
	featured, err := srv.catalog.FeaturedCategories(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load featured categories", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load featured categories")
	}

	view := &usecase.HomeView{FeaturedCategories: featured}

	if trending, err := srv.catalog.TrendingProducts(ctx); err != nil {
		srv.log(ctx).Warn("Failed to load trending products", slog.Any("error", err))
	} else {
		view.TrendingProducts = trending
	}

	if recommended, err := srv.catalog.RecommendedProducts(ctx); err != nil {
		srv.log(ctx).Warn("Failed to load recommended products", slog.Any("error", err))
	} else {
		view.RecommendedProducts = recommended
	}

	return view, nil
}

func (srv *catalogService) Categories(ctx context.Context) ([]entity.Category, error) {
	categories, err := srv.catalog.Categories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load categories")
	}

	return categories, nil
}

func (srv *catalogService) CategoryPage(ctx context.Context, idOrSlug string, page entity.PageRequest) (*usecase.CategoryView, error) {
	category, err := srv.catalog.CategoryByIDOrSlug(ctx, idOrSlug)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load category %q", idOrSlug)
	}

	products, err := srv.catalog.ProductsByCategory(ctx, category.ID, page)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load products for category %d", category.ID)
	}

	return &usecase.CategoryView{Category: category, Products: products}, nil
}

// Products fetches a listing page and refines it against the local
// filter dimensions. Responses superseded by a newer fetch are still
// returned to their caller, flagged stale, but never become the snapshot.
func (srv *catalogService) Products(ctx context.Context, query usecase.ProductListQuery) (*usecase.ProductListView, error) {
	gen := srv.generation.Add(1)

	fetched, err := srv.catalog.Products(ctx, gateway.ProductQuery{
		Page:     query.Page,
		Size:     query.Size,
		Sort:     query.Sort,
		Search:   query.Search,
		Category: query.Category,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to load product listing", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load product listing")
	}

	stale := srv.generation.Load() != gen
	if !stale {
		srv.mu.Lock()
		if srv.generation.Load() == gen {
			srv.snapshot = fetched.Content
		} else {
			stale = true
		}
		srv.mu.Unlock()
	}
	if stale {
		srv.log(ctx).Debug("Discarding superseded listing response", slog.Int64("generation", gen))
	}

	refined := entity.FilterProducts(fetched.Content, entity.ProductFilter{
		MinPrice:    query.MinPrice,
		MaxPrice:    query.MaxPrice,
		InStockOnly: query.InStockOnly,
		OnSaleOnly:  query.OnSaleOnly,
	})

	return &usecase.ProductListView{
		Products:      refined,
		TotalPages:    fetched.TotalPages,
		TotalElements: fetched.TotalElements,
		Page:          fetched.Number,
		Size:          fetched.Size,
		Sort:          query.Sort,
		Stale:         stale,
	}, nil
}

func (srv *catalogService) ProductDetail(ctx context.Context, id int64) (*usecase.ProductDetailView, error) {
	product, err := srv.catalog.ProductByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load product %d", id)
	}

	view := &usecase.ProductDetailView{Product: product, Reviews: product.Reviews}
	if len(view.Reviews) == 0 {
		if reviews, err := srv.catalog.ProductReviews(ctx, id); err != nil {
			srv.log(ctx).Warn("Failed to load product reviews", slog.Int64("productID", id), slog.Any("error", err))
		} else {
			view.Reviews = reviews
		}
	}

	if similar, err := srv.catalog.SimilarProducts(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to load similar products", slog.Int64("productID", id), slog.Any("error", err))
	} else {
		view.SimilarProducts = similar
	}

	return view, nil
}

func (srv *catalogService) AddReview(ctx context.Context, productID int64, input gateway.ReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}

	review, err := srv.catalog.AddReview(ctx, productID, input)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add review for product %d", productID)
	}
	srv.log(ctx).Info("Review added", slog.Int64("productID", productID), slog.Int("rating", input.Rating))

	return review, nil
}

func (srv *catalogService) MarkReviewHelpful(ctx context.Context, reviewID int64) (*gateway.StatusMessage, error) {
	msg, err := srv.catalog.MarkReviewHelpful(ctx, reviewID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to mark review %d helpful", reviewID)
	}

	return msg, nil
}
