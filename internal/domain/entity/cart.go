package entity

import "time"

// Cart is the shopper's current cart as returned by the backend.
type Cart struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"userId"`
	Items          []CartItem `json:"items"`
	TotalItems     int        `json:"totalItems"`
	Subtotal       float64    `json:"subtotal"`
	Tax            float64    `json:"tax"`
	Shipping       float64    `json:"shipping"`
	Total          float64    `json:"total"`
	CouponCode     string     `json:"couponCode,omitempty"`
	CouponDiscount float64    `json:"couponDiscount"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// CartItem is a single line in the cart.
type CartItem struct {
	ID       int64       `json:"id"`
	Product  ProductCard `json:"product"`
	Quantity int         `json:"quantity"`
	Price    float64     `json:"price"`
}

// ProductCard is the trimmed product shape embedded in cart and wishlist lines.
type ProductCard struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Image         string    `json:"image,omitempty"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty"`
	Rating        float64   `json:"rating,omitempty"`
	Vendor        VendorRef `json:"vendor"`
}

// WishlistItem is a saved-for-later product reference.
type WishlistItem struct {
	ID        int64       `json:"id"`
	ProductID int64       `json:"productId"`
	Product   ProductCard `json:"product"`
	AddedAt   time.Time   `json:"addedAt"`
}
