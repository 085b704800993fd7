package entity

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Product is a catalog item as returned by the backend. Backend-owned;
// held here only as a render-scoped snapshot.
type Product struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	OriginalPrice  float64         `json:"originalPrice,omitempty"` // Zero when the product is not discounted.
	Images         []string        `json:"images,omitempty"`
	Category       CategoryRef     `json:"category"`
	Subcategory    *CategoryRef    `json:"subcategory,omitempty"`
	Vendor         VendorRef       `json:"vendor"`
	Rating         float64         `json:"rating"`
	ReviewCount    int             `json:"reviewCount"`
	Inventory      int             `json:"inventory"`
	Specifications []Specification `json:"specifications,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
	InStock        bool            `json:"inStock"`
	SKU            string          `json:"sku,omitempty"`
	Featured       bool            `json:"featured,omitempty"`
	Reviews        []Review        `json:"reviews,omitempty"`
	CreatedAt      time.Time       `json:"createdAt,omitempty"`
}

// VendorRef is the minimal vendor reference embedded in products and cart lines.
type VendorRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Specification is a single name/value row in a product's spec table.
type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// IsOnSale reports whether the product carries a struck-through original
// price higher than the current price. Display attribute, derived.
func (p *Product) IsOnSale() bool {
	return p.OriginalPrice > p.Price
}

// DiscountPercentage derives the rounded percentage off the original price.
// Zero when the product is not on sale.
func (p *Product) DiscountPercentage() int {
	if !p.IsOnSale() || p.OriginalPrice <= 0 {
		return 0
	}

	return int(math.Round((p.OriginalPrice - p.Price) / p.OriginalPrice * 100))
}

// ProductFilter narrows a fetched product snapshot. Zero values mean
// "no constraint" for that dimension.
type ProductFilter struct {
	CategoryIDs []int64
	VendorIDs   []int64
	MinPrice    float64
	MaxPrice    float64
	InStockOnly bool
	OnSaleOnly  bool
	Search      string
}

// ProductSort names a supported ordering of a product snapshot.
type ProductSort string

const (
	// SortFeatured surfaces featured products first. Default ordering.
	SortFeatured ProductSort = "featured"
	// SortPriceAsc orders by price, cheapest first.
	SortPriceAsc ProductSort = "price-low-high"
	// SortPriceDesc orders by price, most expensive first.
	SortPriceDesc ProductSort = "price-high-low"
	// SortRating orders by rating, best first.
	SortRating ProductSort = "rating"
	// SortNewest orders by creation time, most recent first.
	SortNewest ProductSort = "newest"
)

// QueryParam converts the sort option into the backend's sort parameter.
func (s ProductSort) QueryParam() string {
	switch s {
	case SortPriceAsc:
		return "price,asc"
	case SortPriceDesc:
		return "price,desc"
	case SortRating:
		return "rating,desc"
	case SortNewest:
		return "createdAt,desc"
	default:
		return "featured,desc"
	}
}

// FilterProducts returns the items of the snapshot matching the filter.
// The snapshot itself is never mutated, and applying the same filter twice
// yields the same result as applying it once.
func FilterProducts(snapshot []Product, f ProductFilter) []Product {
	out := make([]Product, 0, len(snapshot))
	needle := strings.ToLower(strings.TrimSpace(f.Search))

	for _, p := range snapshot {
		if len(f.CategoryIDs) > 0 && !containsID(f.CategoryIDs, p.Category.ID) {
			continue
		}
		if len(f.VendorIDs) > 0 && !containsID(f.VendorIDs, p.Vendor.ID) {
			continue
		}
		if p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		if f.InStockOnly && !p.InStock {
			continue
		}
		if f.OnSaleOnly && !p.IsOnSale() {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			continue
		}

		out = append(out, p)
	}

	return out
}

// SortProducts returns a newly ordered copy of the snapshot. The sort is
// stable: items with equal keys keep their snapshot order.
func SortProducts(snapshot []Product, by ProductSort) []Product {
	out := make([]Product, len(snapshot))
	copy(out, snapshot)

	switch by {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Featured && !out[j].Featured })
	}

	return out
}

func containsID(ids []int64, id int64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}

	return false
}
