package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() []Product {
	return []Product{
		{ID: 1, Name: "Wireless Headphones", Description: "Noise cancelling", Price: 2999, OriginalPrice: 3999, Category: CategoryRef{ID: 1}, Vendor: VendorRef{ID: 1}, Rating: 4.5, InStock: true, CreatedAt: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Leather Wallet", Description: "Hand stitched", Price: 899, Category: CategoryRef{ID: 2}, Vendor: VendorRef{ID: 2}, Rating: 4.1, InStock: true, Featured: true, CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Name: "Desk Lamp", Description: "Warm light", Price: 1299, Category: CategoryRef{ID: 3}, Vendor: VendorRef{ID: 1}, Rating: 4.5, InStock: false, CreatedAt: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)},
		{ID: 4, Name: "Headphone Stand", Description: "Aluminium", Price: 1299, OriginalPrice: 1499, Category: CategoryRef{ID: 1}, Vendor: VendorRef{ID: 3}, Rating: 3.9, InStock: true, CreatedAt: time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)},
	}
}

func TestFilterProducts_Dimensions(t *testing.T) {
	snapshot := sampleSnapshot()

	tests := []struct {
		name    string
		filter  ProductFilter
		wantIDs []int64
	}{
		{name: "no constraints", filter: ProductFilter{}, wantIDs: []int64{1, 2, 3, 4}},
		{name: "by category", filter: ProductFilter{CategoryIDs: []int64{1}}, wantIDs: []int64{1, 4}},
		{name: "by vendor", filter: ProductFilter{VendorIDs: []int64{1}}, wantIDs: []int64{1, 3}},
		{name: "price range", filter: ProductFilter{MinPrice: 1000, MaxPrice: 2000}, wantIDs: []int64{3, 4}},
		{name: "in stock only", filter: ProductFilter{InStockOnly: true}, wantIDs: []int64{1, 2, 4}},
		{name: "on sale only", filter: ProductFilter{OnSaleOnly: true}, wantIDs: []int64{1, 4}},
		{name: "search matches name", filter: ProductFilter{Search: "headphone"}, wantIDs: []int64{1, 4}},
		{name: "search matches description", filter: ProductFilter{Search: "stitched"}, wantIDs: []int64{2}},
		{name: "combined", filter: ProductFilter{CategoryIDs: []int64{1}, InStockOnly: true, Search: "wireless"}, wantIDs: []int64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProducts(snapshot, tt.filter)
			assert.Equal(t, tt.wantIDs, productIDs(got))
		})
	}
}

func TestFilterProducts_Idempotent(t *testing.T) {
	snapshot := sampleSnapshot()
	filter := ProductFilter{InStockOnly: true, MinPrice: 900}

	once := FilterProducts(snapshot, filter)
	twice := FilterProducts(once, filter)

	assert.Equal(t, once, twice)
}

func TestFilterProducts_SnapshotUntouched(t *testing.T) {
	snapshot := sampleSnapshot()
	before := productIDs(snapshot)

	FilterProducts(snapshot, ProductFilter{OnSaleOnly: true})
	SortProducts(snapshot, SortPriceDesc)

	assert.Equal(t, before, productIDs(snapshot))
}

func TestSortProducts_Orderings(t *testing.T) {
	snapshot := sampleSnapshot()

	assert.Equal(t, []int64{2, 3, 4, 1}, productIDs(SortProducts(snapshot, SortPriceAsc)))
	assert.Equal(t, []int64{1, 3, 4, 2}, productIDs(SortProducts(snapshot, SortPriceDesc)))
	assert.Equal(t, []int64{1, 3, 2, 4}, productIDs(SortProducts(snapshot, SortRating)))
	assert.Equal(t, []int64{4, 2, 3, 1}, productIDs(SortProducts(snapshot, SortNewest)))
	assert.Equal(t, []int64{2, 1, 3, 4}, productIDs(SortProducts(snapshot, SortFeatured)))
}

func TestSortProducts_StableOnEqualKeys(t *testing.T) {
	snapshot := sampleSnapshot()

	// Products 3 and 4 share a price; 1 and 3 share a rating. Sorting twice
	// with the same direction must not reorder equal keys.
	once := SortProducts(snapshot, SortPriceAsc)
	twice := SortProducts(once, SortPriceAsc)
	require.Equal(t, productIDs(once), productIDs(twice))

	byRating := SortProducts(snapshot, SortRating)
	assert.Equal(t, []int64{1, 3, 2, 4}, productIDs(byRating), "equal ratings keep snapshot order")
}

func TestProduct_SaleDerivations(t *testing.T) {
	onSale := Product{Price: 2999, OriginalPrice: 3999}
	assert.True(t, onSale.IsOnSale())
	assert.Equal(t, 25, onSale.DiscountPercentage())

	fullPrice := Product{Price: 899}
	assert.False(t, fullPrice.IsOnSale())
	assert.Zero(t, fullPrice.DiscountPercentage())

	misconfigured := Product{Price: 1000, OriginalPrice: 500}
	assert.False(t, misconfigured.IsOnSale())
	assert.Zero(t, misconfigured.DiscountPercentage())
}

func TestProductSort_QueryParam(t *testing.T) {
	assert.Equal(t, "price,asc", SortPriceAsc.QueryParam())
	assert.Equal(t, "price,desc", SortPriceDesc.QueryParam())
	assert.Equal(t, "rating,desc", SortRating.QueryParam())
	assert.Equal(t, "createdAt,desc", SortNewest.QueryParam())
	assert.Equal(t, "featured,desc", SortFeatured.QueryParam())
	assert.Equal(t, "featured,desc", ProductSort("bogus").QueryParam())
}

func productIDs(products []Product) []int64 {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	return ids
}
