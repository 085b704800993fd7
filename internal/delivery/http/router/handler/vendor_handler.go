package handler

import (
	"log/slog"
	"net/http"

	"marketfront/internal/delivery/http/response"
	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VendorHandler serves the vendor portal: dashboard, store profile,
// product management and order fulfilment.
type VendorHandler struct {
	uc     usecase.VendorUsecase
	logger *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler, injected by Fx.
func NewVendorHandler(uc usecase.VendorUsecase, logger *slog.Logger) *VendorHandler {
	return &VendorHandler{
		uc:     uc,
		logger: logger,
	}
}

// Dashboard renders the vendor overview with revenue aggregates.
func (h *VendorHandler) Dashboard(c echo.Context) error {
	view, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// Profile returns the vendor's store profile, including approval status.
func (h *VendorHandler) Profile(c echo.Context) error {
	profile, err := h.uc.Profile(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

type vendorProfileRequest struct {
	StoreName        string         `json:"storeName" validate:"required"`
	StoreDescription string         `json:"storeDescription"`
	StoreAddress     entity.Address `json:"storeAddress"`
	Specialty        string         `json:"specialty"`
	ContactEmail     string         `json:"contactEmail"`
	ContactPhone     string         `json:"contactPhone"`
}

// UpdateProfile saves the store profile form.
func (h *VendorHandler) UpdateProfile(c echo.Context) error {
	var input vendorProfileRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Store name is required")
	}

	profile, err := h.uc.UpdateProfile(c.Request().Context(), gateway.VendorProfileInput{
		StoreName:        input.StoreName,
		StoreDescription: input.StoreDescription,
		StoreAddress:     input.StoreAddress,
		Specialty:        input.Specialty,
		ContactEmail:     input.ContactEmail,
		ContactPhone:     input.ContactPhone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated")
}

// Products lists the vendor's own products.
func (h *VendorHandler) Products(c echo.Context) error {
	page, err := h.uc.Products(c.Request().Context(), pageRequest(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

type productRequest struct {
	Name           string                 `json:"name" validate:"required"`
	Description    string                 `json:"description"`
	Price          float64                `json:"price" validate:"required,gt=0"`
	OriginalPrice  float64                `json:"originalPrice"`
	Images         []string               `json:"images"`
	CategoryID     int64                  `json:"categoryId" validate:"required"`
	SubcategoryID  int64                  `json:"subcategoryId"`
	Inventory      int                    `json:"inventory" validate:"min=0"`
	Specifications []entity.Specification `json:"specifications"`
	Tags           []string               `json:"tags"`
}

func (r *productRequest) toInput() gateway.ProductInput {
	return gateway.ProductInput{
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		OriginalPrice:  r.OriginalPrice,
		Images:         r.Images,
		CategoryID:     r.CategoryID,
		SubcategoryID:  r.SubcategoryID,
		Inventory:      r.Inventory,
		Specifications: r.Specifications,
		Tags:           r.Tags,
	}
}

// AddProduct creates a product. Approved stores only.
func (h *VendorHandler) AddProduct(c echo.Context) error {
	var input productRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Name, a positive price and a category are required")
	}

	product, err := h.uc.AddProduct(c.Request().Context(), input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product added")
}

// UpdateProduct edits one of the vendor's products.
func (h *VendorHandler) UpdateProduct(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product identifier")
	}

	var input productRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Name, a positive price and a category are required")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), productID, input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// DeleteProduct removes one of the vendor's products.
func (h *VendorHandler) DeleteProduct(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product identifier")
	}

	status, err := h.uc.DeleteProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, status.Message)
}

// Orders lists orders containing the vendor's products.
func (h *VendorHandler) Orders(c echo.Context) error {
	page, err := h.uc.Orders(c.Request().Context(), pageRequest(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page, "")
}

type orderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// UpdateOrderStatus moves an order through fulfilment.
func (h *VendorHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order identifier")
	}

	var input orderStatusRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "A status is required")
	}

	status, err := h.uc.UpdateOrderStatus(c.Request().Context(), orderID, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, status.Message)
}
