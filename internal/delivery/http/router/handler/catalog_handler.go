package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"marketfront/internal/delivery/http/response"
	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the public browsing pages: home, product listing,
// category pages, product detail and reviews.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// Home renders the landing page aggregate.
func (h *CatalogHandler) Home(c echo.Context) error {
	view, err := h.uc.Home(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Products renders the product listing with the full set of query
// controls: pagination, sort, search and the local refinements.
func (h *CatalogHandler) Products(c echo.Context) error {
	query := usecase.ProductListQuery{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Sort:     entity.ProductSort(c.QueryParam("sort")),
	}
	query.Page, _ = strconv.Atoi(c.QueryParam("page"))
	query.Size, _ = strconv.Atoi(c.QueryParam("size"))
	query.MinPrice, _ = strconv.ParseFloat(c.QueryParam("minPrice"), 64)
	query.MaxPrice, _ = strconv.ParseFloat(c.QueryParam("maxPrice"), 64)
	query.InStockOnly, _ = strconv.ParseBool(c.QueryParam("inStock"))
	query.OnSaleOnly, _ = strconv.ParseBool(c.QueryParam("onSale"))

	view, err := h.uc.Products(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// ProductDetail renders one product with its reviews and similar items.
func (h *CatalogHandler) ProductDetail(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product identifier")
	}

	view, err := h.uc.ProductDetail(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Categories lists every category with its subcategories.
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// CategoryPage renders one category and its first page of products. The
// path segment accepts either the numeric ID or the slug.
func (h *CatalogHandler) CategoryPage(c echo.Context) error {
	view, err := h.uc.CategoryPage(c.Request().Context(), c.Param("idOrSlug"), pageRequest(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

type reviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Title   string `json:"title"`
	Comment string `json:"comment" validate:"required"`
}

// AddReview posts a review on a product. Requires a signed-in session.
func (h *CatalogHandler) AddReview(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product identifier")
	}

	var input reviewRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "A rating between 1 and 5 and a comment are required")
	}

	review, err := h.uc.AddReview(c.Request().Context(), productID, gateway.ReviewInput{
		Rating:  input.Rating,
		Title:   input.Title,
		Comment: input.Comment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review added")
}

// MarkReviewHelpful bumps the helpful counter on a review.
func (h *CatalogHandler) MarkReviewHelpful(c echo.Context) error {
	reviewID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review identifier")
	}

	status, err := h.uc.MarkReviewHelpful(c.Request().Context(), reviewID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, status.Message)
}
