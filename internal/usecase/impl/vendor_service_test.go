package impl

import (
	"context"
	"testing"

	"marketfront/internal/domain/entity"
	domainerrors "marketfront/internal/domain/errors"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVendorService(vendors gateway.VendorGateway) usecase.VendorUsecase {
	return NewVendorService(VendorServiceParams{
		VendorGateway: vendors,
		Logger:        testLogger(),
	})
}

func approvedVendorGateway() *stubVendorGateway {
	return &stubVendorGateway{
		ProfileFn: func(context.Context) (*entity.VendorProfile, error) {
			return &entity.VendorProfile{ID: 1, ApprovalStatus: entity.ApprovalApproved}, nil
		},
		AddProductFn: func(_ context.Context, input gateway.ProductInput) (*entity.Product, error) {
			return &entity.Product{ID: 42, Name: input.Name}, nil
		},
	}
}

func TestAddProductRequiresApproval(t *testing.T) {
	vendors := &stubVendorGateway{
		ProfileFn: func(context.Context) (*entity.VendorProfile, error) {
			return &entity.VendorProfile{ID: 1, ApprovalStatus: entity.ApprovalPending}, nil
		},
	}
	srv := newVendorService(vendors)

	_, err := srv.AddProduct(context.Background(), gateway.ProductInput{
		Name: "Widget", Price: 100, CategoryID: 1,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrVendorNotApproved))
}

func TestAddProductValidatesInput(t *testing.T) {
	srv := newVendorService(approvedVendorGateway())

	tests := []struct {
		name  string
		input gateway.ProductInput
	}{
		{name: "missing name", input: gateway.ProductInput{Price: 100, CategoryID: 1}},
		{name: "non-positive price", input: gateway.ProductInput{Name: "Widget", CategoryID: 1}},
		{name: "missing category", input: gateway.ProductInput{Name: "Widget", Price: 100}},
		{name: "negative inventory", input: gateway.ProductInput{Name: "Widget", Price: 100, CategoryID: 1, Inventory: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.AddProduct(context.Background(), tt.input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestAddProductSucceedsForApprovedVendor(t *testing.T) {
	srv := newVendorService(approvedVendorGateway())

	product, err := srv.AddProduct(context.Background(), gateway.ProductInput{
		Name: "Widget", Price: 100, CategoryID: 1, Inventory: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), product.ID)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	srv := newVendorService(approvedVendorGateway())

	_, err := srv.UpdateOrderStatus(context.Background(), 1, entity.OrderStatus("MISPLACED"))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = srv.UpdateOrderStatus(context.Background(), 1, entity.OrderShipped)
	assert.NoError(t, err)
}

func TestUpdateProfileRequiresStoreName(t *testing.T) {
	srv := newVendorService(approvedVendorGateway())

	_, err := srv.UpdateProfile(context.Background(), gateway.VendorProfileInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
