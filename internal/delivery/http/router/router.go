// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketfront/internal/delivery/http/middleware"
	"marketfront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	CustomerHandler *handler.CustomerHandler
	VendorHandler   *handler.VendorHandler
	AdminHandler    *handler.AdminHandler

	SessionMiddleware *middleware.SessionMiddleware
	GuardMiddleware   *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the routes for the application. Session
// resolution and the role route guard run on everything; the guard's
// redirects keep each role inside its own section.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.Use(p.SessionMiddleware.Resolve)
	e.Use(p.GuardMiddleware.Handle)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.POST("/logout", p.AuthHandler.Logout)
		authGroup.GET("/me", p.AuthHandler.Me)
		authGroup.POST("/forgot-password", p.AuthHandler.ForgotPassword)
		authGroup.POST("/reset-password", p.AuthHandler.ResetPassword)
		authGroup.GET("/verify-email", p.AuthHandler.VerifyEmail)
	}

	// Public catalog pages
	e.GET("/", p.CatalogHandler.Home)
	e.GET("/products", p.CatalogHandler.Products)
	e.GET("/products/:id", p.CatalogHandler.ProductDetail)
	e.POST("/products/:id/reviews", p.CatalogHandler.AddReview)
	e.POST("/reviews/:id/helpful", p.CatalogHandler.MarkReviewHelpful)
	e.GET("/categories", p.CatalogHandler.Categories)
	e.GET("/categories/:idOrSlug", p.CatalogHandler.CategoryPage)

	// Cart and wishlist, signed-in customers
	e.GET("/cart", p.CartHandler.Cart)
	e.POST("/cart/items", p.CartHandler.AddItem)
	e.PUT("/cart/items/:id", p.CartHandler.UpdateItem)
	e.DELETE("/cart/items/:id", p.CartHandler.RemoveItem)
	e.DELETE("/cart", p.CartHandler.ClearCart)
	e.GET("/wishlist", p.CartHandler.Wishlist)
	e.POST("/wishlist", p.CartHandler.AddToWishlist)
	e.DELETE("/wishlist/:productId", p.CartHandler.RemoveFromWishlist)
	e.POST("/wishlist/:productId/move-to-cart", p.CartHandler.MoveToCart)

	// Orders and checkout
	e.GET("/orders", p.OrderHandler.Orders)
	e.GET("/orders/:id", p.OrderHandler.OrderByID)
	e.POST("/orders/:id/cancel", p.OrderHandler.CancelOrder)
	e.POST("/checkout", p.OrderHandler.Checkout)

	// Customer account section, guarded by role
	customerGroup := e.Group("/customer")
	{
		customerGroup.GET("/dashboard", p.CustomerHandler.Dashboard)
	}

	// Vendor portal, guarded by role
	vendorGroup := e.Group("/vendor")
	{
		vendorGroup.GET("/dashboard", p.VendorHandler.Dashboard)
		vendorGroup.GET("/profile", p.VendorHandler.Profile)
		vendorGroup.PUT("/profile", p.VendorHandler.UpdateProfile)
		vendorGroup.GET("/products", p.VendorHandler.Products)
		vendorGroup.POST("/products", p.VendorHandler.AddProduct)
		vendorGroup.PUT("/products/:id", p.VendorHandler.UpdateProduct)
		vendorGroup.DELETE("/products/:id", p.VendorHandler.DeleteProduct)
		vendorGroup.GET("/orders", p.VendorHandler.Orders)
		vendorGroup.PUT("/orders/:id/status", p.VendorHandler.UpdateOrderStatus)
	}

	// Admin section, guarded by role
	adminGroup := e.Group("/admin")
	{
		adminGroup.GET("/dashboard", p.AdminHandler.Dashboard)
		adminGroup.GET("/vendors", p.AdminHandler.Vendors)
		adminGroup.GET("/vendors/:id", p.AdminHandler.VendorByID)
		adminGroup.POST("/vendors/:id/approve", p.AdminHandler.ApproveVendor)
		adminGroup.POST("/vendors/:id/reject", p.AdminHandler.RejectVendor)
		adminGroup.GET("/categories", p.AdminHandler.Categories)
		adminGroup.POST("/categories", p.AdminHandler.CreateCategory)
		adminGroup.PUT("/categories/:id", p.AdminHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:id", p.AdminHandler.DeleteCategory)
		adminGroup.POST("/categories/:id/subcategories", p.AdminHandler.AddSubcategory)
		adminGroup.PUT("/categories/:id/subcategories/:subId", p.AdminHandler.UpdateSubcategory)
		adminGroup.DELETE("/categories/:id/subcategories/:subId", p.AdminHandler.DeleteSubcategory)
	}
}
