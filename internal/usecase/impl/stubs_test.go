package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/usecase"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubAuthGateway implements gateway.AuthGateway with function fields so
// each test supplies only the behavior it exercises.
type stubAuthGateway struct {
	LoginFn    func(ctx context.Context, creds gateway.Credentials) (*gateway.AuthResult, error)
	RegisterFn func(ctx context.Context, payload gateway.RegistrationPayload) (*gateway.AuthResult, error)
}

func (s *stubAuthGateway) Login(ctx context.Context, creds gateway.Credentials) (*gateway.AuthResult, error) {
	return s.LoginFn(ctx, creds)
}

func (s *stubAuthGateway) Register(ctx context.Context, payload gateway.RegistrationPayload) (*gateway.AuthResult, error) {
	return s.RegisterFn(ctx, payload)
}

func (s *stubAuthGateway) ForgotPassword(context.Context, string) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true}, nil
}

func (s *stubAuthGateway) ResetPassword(context.Context, string, string) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true}, nil
}

func (s *stubAuthGateway) VerifyEmail(context.Context, string) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true}, nil
}

// stubVendorGateway implements gateway.VendorGateway. Only the methods a
// test overrides matter; the rest return zero values.
type stubVendorGateway struct {
	ProfileFn    func(ctx context.Context) (*entity.VendorProfile, error)
	AddProductFn func(ctx context.Context, input gateway.ProductInput) (*entity.Product, error)
}

func (s *stubVendorGateway) Profile(ctx context.Context) (*entity.VendorProfile, error) {
	return s.ProfileFn(ctx)
}

func (s *stubVendorGateway) UpdateProfile(_ context.Context, input gateway.VendorProfileInput) (*entity.VendorProfile, error) {
	return &entity.VendorProfile{StoreName: input.StoreName}, nil
}

func (s *stubVendorGateway) Dashboard(context.Context) (*entity.VendorDashboard, error) {
	return &entity.VendorDashboard{}, nil
}

func (s *stubVendorGateway) Products(context.Context, entity.PageRequest) (*entity.Page[entity.Product], error) {
	return &entity.Page[entity.Product]{}, nil
}

func (s *stubVendorGateway) AddProduct(ctx context.Context, input gateway.ProductInput) (*entity.Product, error) {
	return s.AddProductFn(ctx, input)
}

func (s *stubVendorGateway) UpdateProduct(_ context.Context, productID int64, input gateway.ProductInput) (*entity.Product, error) {
	return &entity.Product{ID: productID, Name: input.Name}, nil
}

func (s *stubVendorGateway) DeleteProduct(context.Context, int64) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true}, nil
}

func (s *stubVendorGateway) Orders(context.Context, entity.PageRequest) (*entity.Page[entity.Order], error) {
	return &entity.Page[entity.Order]{}, nil
}

func (s *stubVendorGateway) UpdateOrderStatus(context.Context, int64, entity.OrderStatus) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true}, nil
}

// stubSessions records Establish and Clear calls.
type stubSessions struct {
	established []*entity.Session
	cleared     []string
}

func (s *stubSessions) Establish(_ context.Context, token string, user *entity.User) (*entity.Session, error) {
	session := &entity.Session{
		ID:        "session-1",
		Token:     token,
		User:      *user,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	s.established = append(s.established, session)

	return session, nil
}

func (s *stubSessions) Resolve(_ context.Context, sessionID string) (*entity.Session, error) {
	for _, session := range s.established {
		if session.ID == sessionID {
			return session, nil
		}
	}

	return nil, nil
}

func (s *stubSessions) Clear(_ context.Context, sessionID string) error {
	s.cleared = append(s.cleared, sessionID)

	return nil
}

// stubCatalogGateway implements gateway.CatalogGateway.
type stubCatalogGateway struct {
	ProductsFn    func(ctx context.Context, query gateway.ProductQuery) (*entity.Page[entity.Product], error)
	ProductByIDFn func(ctx context.Context, id int64) (*entity.Product, error)
}

func (s *stubCatalogGateway) Categories(context.Context) ([]entity.Category, error) {
	return nil, nil
}

func (s *stubCatalogGateway) FeaturedCategories(context.Context) ([]entity.Category, error) {
	return nil, nil
}

func (s *stubCatalogGateway) CategoryByIDOrSlug(context.Context, string) (*entity.Category, error) {
	return &entity.Category{}, nil
}

func (s *stubCatalogGateway) ProductsByCategory(context.Context, int64, entity.PageRequest) (*entity.Page[entity.Product], error) {
	return &entity.Page[entity.Product]{}, nil
}

func (s *stubCatalogGateway) Products(ctx context.Context, query gateway.ProductQuery) (*entity.Page[entity.Product], error) {
	return s.ProductsFn(ctx, query)
}

func (s *stubCatalogGateway) ProductByID(ctx context.Context, id int64) (*entity.Product, error) {
	return s.ProductByIDFn(ctx, id)
}

func (s *stubCatalogGateway) TrendingProducts(context.Context) ([]entity.Product, error) {
	return nil, nil
}

func (s *stubCatalogGateway) RecommendedProducts(context.Context) ([]entity.Product, error) {
	return nil, nil
}

func (s *stubCatalogGateway) SimilarProducts(context.Context, int64) ([]entity.Product, error) {
	return nil, nil
}

func (s *stubCatalogGateway) ProductReviews(context.Context, int64) ([]entity.Review, error) {
	return nil, nil
}

func (s *stubCatalogGateway) AddReview(context.Context, int64, gateway.ReviewInput) (*entity.Review, error) {
	return &entity.Review{}, nil
}

func (s *stubCatalogGateway) MarkReviewHelpful(context.Context, int64) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true}, nil
}

// stubCartGateway implements gateway.CartGateway backed by a mutable cart.
type stubCartGateway struct {
	cart     *entity.Cart
	CartErr  error
	addCalls []int64
}

func (s *stubCartGateway) Cart(context.Context) (*entity.Cart, error) {
	if s.CartErr != nil {
		return nil, s.CartErr
	}

	return s.cart, nil
}

func (s *stubCartGateway) AddItem(_ context.Context, productID int64, _ int) (*gateway.StatusMessage, error) {
	s.addCalls = append(s.addCalls, productID)

	return &gateway.StatusMessage{Success: true}, nil
}

func (s *stubCartGateway) UpdateItem(context.Context, int64, int) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true}, nil
}

func (s *stubCartGateway) RemoveItem(context.Context, int64) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true}, nil
}

func (s *stubCartGateway) ClearCart(context.Context) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true}, nil
}

func (s *stubCartGateway) Wishlist(context.Context) ([]entity.WishlistItem, error) {
	return nil, nil
}

func (s *stubCartGateway) AddToWishlist(context.Context, int64) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true}, nil
}

func (s *stubCartGateway) RemoveFromWishlist(context.Context, int64) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true}, nil
}

// stubOrderGateway implements gateway.OrderGateway and records the order
// input passed to CreateOrder.
type stubOrderGateway struct {
	created *gateway.OrderInput
}

func (s *stubOrderGateway) Orders(context.Context, entity.PageRequest) (*entity.Page[entity.Order], error) {
	return &entity.Page[entity.Order]{}, nil
}

func (s *stubOrderGateway) OrderByID(_ context.Context, orderID int64) (*entity.Order, error) {
	return &entity.Order{ID: orderID}, nil
}

func (s *stubOrderGateway) CreateOrder(_ context.Context, input gateway.OrderInput) (*entity.Order, error) {
	s.created = &input

	return &entity.Order{ID: 99, OrderNumber: "ORD-10099", Status: entity.OrderPending}, nil
}

func (s *stubOrderGateway) CancelOrder(context.Context, int64) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true}, nil
}

// stubAdminGateway implements gateway.AdminGateway and records the last
// category input it received.
type stubAdminGateway struct {
	lastCategory gateway.CategoryInput
}

func (s *stubAdminGateway) Vendors(context.Context, entity.PageRequest) (*entity.Page[entity.VendorProfile], error) {
	return &entity.Page[entity.VendorProfile]{}, nil
}

func (s *stubAdminGateway) VendorByID(_ context.Context, vendorID int64) (*entity.VendorProfile, error) {
	return &entity.VendorProfile{ID: vendorID}, nil
}

func (s *stubAdminGateway) ApproveVendor(_ context.Context, vendorID int64) (*entity.VendorProfile, error) {
	return &entity.VendorProfile{ID: vendorID, ApprovalStatus: entity.ApprovalApproved}, nil
}

func (s *stubAdminGateway) RejectVendor(_ context.Context, vendorID int64, reason string) (*entity.VendorProfile, error) {
	return &entity.VendorProfile{ID: vendorID, ApprovalStatus: entity.ApprovalRejected, RejectionReason: reason}, nil
}

func (s *stubAdminGateway) Categories(context.Context) ([]entity.Category, error) {
	return nil, nil
}

func (s *stubAdminGateway) CreateCategory(_ context.Context, input gateway.CategoryInput) (*entity.Category, error) {
	s.lastCategory = input

	return &entity.Category{ID: 10, Name: input.Name, Slug: input.Slug}, nil
}

func (s *stubAdminGateway) UpdateCategory(_ context.Context, categoryID int64, input gateway.CategoryInput) (*entity.Category, error) {
	s.lastCategory = input

	return &entity.Category{ID: categoryID, Name: input.Name, Slug: input.Slug}, nil
}

func (s *stubAdminGateway) DeleteCategory(context.Context, int64) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true}, nil
}

func (s *stubAdminGateway) AddSubcategory(_ context.Context, categoryID int64, input gateway.CategoryInput) (*entity.Category, error) {
	s.lastCategory = input

	return &entity.Category{ID: categoryID}, nil
}

func (s *stubAdminGateway) UpdateSubcategory(context.Context, int64, int64, gateway.CategoryInput) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true}, nil
}

func (s *stubAdminGateway) DeleteSubcategory(context.Context, int64, int64) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true}, nil
}

func (s *stubAdminGateway) Dashboard(context.Context) (*gateway.AdminDashboard, error) {
	return &gateway.AdminDashboard{}, nil
}

var _ usecase.SessionUsecase = (*stubSessions)(nil)

var (
	_ gateway.AuthGateway    = (*stubAuthGateway)(nil)
	_ gateway.VendorGateway  = (*stubVendorGateway)(nil)
	_ gateway.CatalogGateway = (*stubCatalogGateway)(nil)
	_ gateway.CartGateway    = (*stubCartGateway)(nil)
	_ gateway.OrderGateway   = (*stubOrderGateway)(nil)
	_ gateway.AdminGateway   = (*stubAdminGateway)(nil)
)
