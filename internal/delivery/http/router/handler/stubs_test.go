package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"marketfront/config"
	"marketfront/internal/delivery/http/validator"
	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/usecase"

	"github.com/labstack/echo/v4"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.UserCookie = "user"
	cfg.Session.IDCookie = "session_id"
	cfg.Session.MaxAge = 24 * time.Hour

	return cfg
}

func jsonRequest(method, target string, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

// --- usecase stubs ---

type stubAuthUsecase struct {
	LoginFn    func(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error)
	RegisterFn func(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error)
	loggedOut  []string
}

func (s *stubAuthUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	return s.LoginFn(ctx, input)
}

func (s *stubAuthUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return s.RegisterFn(ctx, input)
}

func (s *stubAuthUsecase) Logout(_ context.Context, sessionID string) error {
	s.loggedOut = append(s.loggedOut, sessionID)

	return nil
}

func (s *stubAuthUsecase) ForgotPassword(context.Context, string) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true, Message: "Password reset email sent"}, nil
}

func (s *stubAuthUsecase) ResetPassword(context.Context, string, string) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true, Message: "Password has been reset"}, nil
}

func (s *stubAuthUsecase) VerifyEmail(context.Context, string) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true, Message: "Email verified"}, nil
}

func (s *stubAuthUsecase) VendorDetails(context.Context) *entity.VendorProfile {
	return nil
}

type stubCatalogUsecase struct {
	ProductsFn func(ctx context.Context, query usecase.ProductListQuery) (*usecase.ProductListView, error)
	DetailFn   func(ctx context.Context, id int64) (*usecase.ProductDetailView, error)
}

func (s *stubCatalogUsecase) Home(context.Context) (*usecase.HomeView, error) {
	return &usecase.HomeView{}, nil
}

func (s *stubCatalogUsecase) Categories(context.Context) ([]entity.Category, error) {
	return nil, nil
}

func (s *stubCatalogUsecase) CategoryPage(context.Context, string, entity.PageRequest) (*usecase.CategoryView, error) {
	return &usecase.CategoryView{}, nil
}

func (s *stubCatalogUsecase) Products(ctx context.Context, query usecase.ProductListQuery) (*usecase.ProductListView, error) {
	return s.ProductsFn(ctx, query)
}

func (s *stubCatalogUsecase) ProductDetail(ctx context.Context, id int64) (*usecase.ProductDetailView, error) {
	return s.DetailFn(ctx, id)
}

func (s *stubCatalogUsecase) AddReview(context.Context, int64, gateway.ReviewInput) (*entity.Review, error) {
	return &entity.Review{ID: 1}, nil
}

func (s *stubCatalogUsecase) MarkReviewHelpful(context.Context, int64) (*gateway.StatusMessage, error) {
	return &gateway.StatusMessage{Success: true, Message: "Marked as helpful"}, nil
}

type stubOrderUsecase struct {
	CheckoutFn func(ctx context.Context, input usecase.CheckoutInput) (*entity.Order, error)
	CancelFn   func(ctx context.Context, orderID int64) (*gateway.StatusMessage, error)
}

func (s *stubOrderUsecase) Orders(context.Context, entity.PageRequest) (*entity.Page[entity.Order], error) {
	return &entity.Page[entity.Order]{}, nil
}

func (s *stubOrderUsecase) OrderByID(context.Context, int64) (*entity.Order, error) {
	return &entity.Order{}, nil
}

func (s *stubOrderUsecase) Checkout(ctx context.Context, input usecase.CheckoutInput) (*entity.Order, error) {
	return s.CheckoutFn(ctx, input)
}

func (s *stubOrderUsecase) CancelOrder(ctx context.Context, orderID int64) (*gateway.StatusMessage, error) {
	return s.CancelFn(ctx, orderID)
}

var (
	_ usecase.AuthUsecase    = (*stubAuthUsecase)(nil)
	_ usecase.CatalogUsecase = (*stubCatalogUsecase)(nil)
	_ usecase.OrderUsecase   = (*stubOrderUsecase)(nil)
)
