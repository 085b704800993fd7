package handler

import (
	"log/slog"
	"net/http"

	"marketfront/internal/delivery/http/response"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler serves the marketplace administration pages: vendor
// approval and category management.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// Dashboard renders the marketplace-wide aggregates.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	view, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Vendors lists vendor applications and stores.
func (h *AdminHandler) Vendors(c echo.Context) error {
	page, err := h.uc.Vendors(c.Request().Context(), pageRequest(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

// VendorByID renders one vendor application.
func (h *AdminHandler) VendorByID(c echo.Context) error {
	vendorID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor identifier")
	}

	vendor, err := h.uc.VendorByID(c.Request().Context(), vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "")
}

// ApproveVendor approves a pending vendor application.
func (h *AdminHandler) ApproveVendor(c echo.Context) error {
	vendorID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor identifier")
	}

	vendor, err := h.uc.ApproveVendor(c.Request().Context(), vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "Vendor approved")
}

type rejectVendorRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// RejectVendor rejects a pending vendor application with a reason the
// vendor will see.
func (h *AdminHandler) RejectVendor(c echo.Context) error {
	vendorID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vendor identifier")
	}

	var input rejectVendorRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "A rejection reason is required")
	}

	vendor, err := h.uc.RejectVendor(c.Request().Context(), vendorID, input.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, vendor, "Vendor rejected")
}

// Categories lists the catalog taxonomy for management.
func (h *AdminHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

type categoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Featured    bool   `json:"featured"`
}

func (r *categoryRequest) toInput() gateway.CategoryInput {
	return gateway.CategoryInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Image:       r.Image,
		Featured:    r.Featured,
	}
}

// CreateCategory adds a top-level category. Field-level validation with
// per-field messages happens in the usecase.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var input categoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Category created")
}

// UpdateCategory edits a top-level category.
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category identifier")
	}

	var input categoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid category input")
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), categoryID, input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category updated")
}

// DeleteCategory removes a category and its subcategories.
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category identifier")
	}

	status, err := h.uc.DeleteCategory(c.Request().Context(), categoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, status.Message)
}

// AddSubcategory adds a subcategory under a category.
func (h *AdminHandler) AddSubcategory(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category identifier")
	}

	var input categoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subcategory input")
	}

	category, err := h.uc.AddSubcategory(c.Request().Context(), categoryID, input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, category, "Subcategory added")
}

// UpdateSubcategory edits a subcategory.
func (h *AdminHandler) UpdateSubcategory(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category identifier")
	}
	subcategoryID, err := pathID(c, "subId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subcategory identifier")
	}

	var input categoryRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subcategory input")
	}

	status, err := h.uc.UpdateSubcategory(c.Request().Context(), categoryID, subcategoryID, input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, status.Message)
}

// DeleteSubcategory removes a subcategory.
func (h *AdminHandler) DeleteSubcategory(c echo.Context) error {
	categoryID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid category identifier")
	}
	subcategoryID, err := pathID(c, "subId")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subcategory identifier")
	}

	status, err := h.uc.DeleteSubcategory(c.Request().Context(), categoryID, subcategoryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, status.Message)
}
