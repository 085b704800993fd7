package fixture

import (
	"context"
	"testing"
	"time"

	"marketfront/config"
	"marketfront/internal/domain/entity"
	domainerrors "marketfront/internal/domain/errors"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/infra/auth"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFixture(t *testing.T) *Fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Session.MaxAge = time.Hour

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	f, err := NewFixture(auth.NewBcryptHasher(), tokens)
	require.NoError(t, err)

	return f
}

func loginAs(t *testing.T, f *Fixture, username string) context.Context {
	t.Helper()

	result, err := NewAuthGateway(f).Login(context.Background(), gateway.Credentials{
		Username: username,
		Password: seedPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	return gateway.WithToken(context.Background(), result.Token)
}

func TestLoginByEmailAndUsername(t *testing.T) {
	f := newTestFixture(t)
	gw := NewAuthGateway(f)

	byEmail, err := gw.Login(context.Background(), gateway.Credentials{
		Email:    "vendor@example.com",
		Password: seedPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendor, byEmail.User.Role)

	byUsername, err := gw.Login(context.Background(), gateway.Credentials{
		Username: "admin",
		Password: seedPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, byUsername.User.Role)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	f := newTestFixture(t)

	_, err := NewAuthGateway(f).Login(context.Background(), gateway.Credentials{
		Username: "customer",
		Password: "wrong",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	f := newTestFixture(t)

	_, err := NewAuthGateway(f).Register(context.Background(), gateway.RegistrationPayload{
		Username: "customer",
		Email:    "someone@example.com",
		Password: "password456",
		Role:     entity.RoleCustomer,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestRegisterVendorCreatesPendingProfile(t *testing.T) {
	f := newTestFixture(t)

	result, err := NewAuthGateway(f).Register(context.Background(), gateway.RegistrationPayload{
		Username:  "freshstore",
		Email:     "fresh@example.com",
		Password:  "password456",
		Role:      entity.RoleVendor,
		StoreName: "Fresh Store",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Token)

	ctx := gateway.WithToken(context.Background(), result.Token)
	profile, err := NewVendorGateway(f).Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalPending, profile.ApprovalStatus)
	assert.False(t, profile.CanManageProducts())
}

func TestCartAddUpdateRemove(t *testing.T) {
	f := newTestFixture(t)
	ctx := loginAs(t, f, "customer")
	gw := NewCartGateway(f)

	before, err := gw.Cart(ctx)
	require.NoError(t, err)

	_, err = gw.AddItem(ctx, 6, 2)
	require.NoError(t, err)

	cart, err := gw.Cart(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.TotalItems+2, cart.TotalItems)
	assert.Equal(t, cart.Subtotal+cart.Tax+cart.Shipping, cart.Total)

	var added entity.CartItem
	for _, item := range cart.Items {
		if item.Product.ID == 6 {
			added = item
		}
	}
	require.NotZero(t, added.ID)

	_, err = gw.UpdateItem(ctx, added.ID, 1)
	require.NoError(t, err)

	_, err = gw.RemoveItem(ctx, added.ID)
	require.NoError(t, err)

	after, err := gw.Cart(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.TotalItems, after.TotalItems)
}

func TestCartRequiresToken(t *testing.T) {
	f := newTestFixture(t)

	_, err := NewCartGateway(f).Cart(context.Background())
	assert.True(t, errors.Is(err, gateway.ErrUnauthorized))
}

func TestCheckoutConsumesCart(t *testing.T) {
	f := newTestFixture(t)
	ctx := loginAs(t, f, "customer")

	order, err := NewOrderGateway(f).CreateOrder(ctx, gateway.OrderInput{
		Items:           []gateway.OrderItemInput{{ProductID: 1, Quantity: 1}},
		ShippingAddress: entity.Address{City: "Mumbai", Country: "India"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.NotEmpty(t, order.OrderNumber)

	cart, err := NewCartGateway(f).Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestPendingVendorCannotManageProducts(t *testing.T) {
	f := newTestFixture(t)
	ctx := loginAs(t, f, "newvendor")

	_, err := NewVendorGateway(f).AddProduct(ctx, gateway.ProductInput{
		Name: "Linen Shirt", Price: 1499, CategoryID: 2, Inventory: 10,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrVendorNotApproved))
}

func TestApprovalUnlocksProductManagement(t *testing.T) {
	f := newTestFixture(t)
	adminCtx := loginAs(t, f, "admin")
	vendorCtx := loginAs(t, f, "newvendor")

	profile, err := NewAdminGateway(f).ApproveVendor(adminCtx, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalApproved, profile.ApprovalStatus)

	product, err := NewVendorGateway(f).AddProduct(vendorCtx, gateway.ProductInput{
		Name: "Linen Shirt", Price: 1499, CategoryID: 2, Inventory: 10,
	})
	require.NoError(t, err)
	assert.True(t, product.InStock)
	assert.Equal(t, "Fashion", product.Category.Name)
}

func TestAdminGatewayRejectsNonAdmin(t *testing.T) {
	f := newTestFixture(t)
	ctx := loginAs(t, f, "customer")

	_, err := NewAdminGateway(f).Vendors(ctx, entity.PageRequest{})
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCategoryValidationMessages(t *testing.T) {
	f := newTestFixture(t)
	ctx := loginAs(t, f, "admin")
	gw := NewAdminGateway(f)

	_, err := gw.CreateCategory(ctx, gateway.CategoryInput{Name: "Books"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Description is required", appErr.Message())

	created, err := gw.CreateCategory(ctx, gateway.CategoryInput{
		Name:        "Men's & Boys' Wear!",
		Description: "Apparel",
	})
	require.NoError(t, err)
	assert.Equal(t, "mens-boys-wear", created.Slug)
}

func TestRejectVendorRecordsReason(t *testing.T) {
	f := newTestFixture(t)
	ctx := loginAs(t, f, "admin")

	profile, err := NewAdminGateway(f).RejectVendor(ctx, 2, "Incomplete documentation")
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalRejected, profile.ApprovalStatus)
	assert.Equal(t, "Incomplete documentation", profile.RejectionReason)
}
