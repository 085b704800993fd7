package impl

import (
	"context"
	"testing"

	domainerrors "marketfront/internal/domain/errors"
	"marketfront/internal/domain/gateway"
	"marketfront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminService(admin gateway.AdminGateway) usecase.AdminUsecase {
	return NewAdminService(AdminServiceParams{
		AdminGateway: admin,
		Logger:       testLogger(),
	})
}

func TestCreateCategoryRequiresDescription(t *testing.T) {
	srv := newAdminService(&stubAdminGateway{})

	_, err := srv.CreateCategory(context.Background(), gateway.CategoryInput{Name: "Books"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Contains(t, err.Error(), "Description is required")
}

func TestCreateCategoryDerivesSlug(t *testing.T) {
	admin := &stubAdminGateway{}
	srv := newAdminService(admin)

	_, err := srv.CreateCategory(context.Background(), gateway.CategoryInput{
		Name:        "Men's & Boys' Wear!",
		Description: "Apparel",
	})
	require.NoError(t, err)
	assert.Equal(t, "mens-boys-wear", admin.lastCategory.Slug)
}

func TestCreateCategoryRejectsBadSlug(t *testing.T) {
	srv := newAdminService(&stubAdminGateway{})

	_, err := srv.CreateCategory(context.Background(), gateway.CategoryInput{
		Name:        "Books",
		Description: "Reading",
		Slug:        "Not A Slug",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRejectVendorRequiresReason(t *testing.T) {
	srv := newAdminService(&stubAdminGateway{})

	_, err := srv.RejectVendor(context.Background(), 2, "  ")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	vendor, err := srv.RejectVendor(context.Background(), 2, "Incomplete documentation")
	require.NoError(t, err)
	assert.Equal(t, "Incomplete documentation", vendor.RejectionReason)
}

func TestAddSubcategoryDerivesSlug(t *testing.T) {
	admin := &stubAdminGateway{}
	srv := newAdminService(admin)

	_, err := srv.AddSubcategory(context.Background(), 1, gateway.CategoryInput{Name: "Smart Watches"})
	require.NoError(t, err)
	assert.Equal(t, "smart-watches", admin.lastCategory.Slug)
}
