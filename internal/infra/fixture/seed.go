package fixture

import (
	"fmt"

	"marketfront/internal/domain/entity"

	"github.com/pkg/errors"
)

// Seeded accounts. All three share the password "password123".
const seedPassword = "password123"

func (f *Fixture) seed() error {
	hash, err := f.hasher.Hash(seedPassword)
	if err != nil {
		return errors.Wrap(err, "hash seed password")
	}

	f.seedUsers(hash)
	f.seedVendors()
	f.seedCatalog()
	f.seedShopping()

	return nil
}

func (f *Fixture) seedUsers(hash string) {
	address := &entity.Address{
		Country:   "India",
		State:     "Maharashtra",
		City:      "Mumbai",
		ZipCode:   "400001",
		Street:    "123 Main St",
		IsDefault: true,
	}

	f.users = []*entity.User{
		{
			ID: 1, Username: "customer", FirstName: "John", LastName: "Doe",
			Email: "customer@example.com", PhoneNumber: "+91 9876543210",
			Role: entity.RoleCustomer, Address: address,
		},
		{
			ID: 2, Username: "vendor", FirstName: "Vikram", LastName: "Shah",
			Email: "vendor@example.com", PhoneNumber: "+91 9876543211",
			Role: entity.RoleVendor,
		},
		{
			ID: 3, Username: "admin", FirstName: "Asha", LastName: "Rao",
			Email: "admin@example.com", PhoneNumber: "+91 9876543212",
			Role: entity.RoleAdmin,
		},
		{
			ID: 4, Username: "newvendor", FirstName: "Priya", LastName: "Mehta",
			Email: "newvendor@example.com", PhoneNumber: "+91 9876543213",
			Role: entity.RoleVendor,
		},
	}
	for _, u := range f.users {
		f.passwords[u.ID] = hash
	}
}

func (f *Fixture) seedVendors() {
	f.vendors = []*entity.VendorProfile{
		{
			ID: 1, UserID: 2, StoreName: "ElectroHub",
			StoreDescription: "Latest gadgets and electronics at great prices",
			StoreAddress: entity.Address{
				Country: "India", State: "Karnataka", City: "Bengaluru",
				ZipCode: "560001", Street: "42 MG Road",
			},
			ApprovalStatus: entity.ApprovalApproved,
			Rating:         4.8, ProductCount: 4, Specialty: "Electronics",
			JoinedDate:   daysAgo(400),
			ContactEmail: "vendor@example.com", ContactPhone: "+91 9876543211",
		},
		{
			ID: 2, UserID: 4, StoreName: "FashionFiesta",
			StoreDescription: "Trendy clothing and accessories",
			StoreAddress: entity.Address{
				Country: "India", State: "Maharashtra", City: "Mumbai",
				ZipCode: "400002", Street: "7 Linking Road",
			},
			ApprovalStatus: entity.ApprovalPending,
			Specialty:      "Fashion",
			JoinedDate:     daysAgo(3),
			ContactEmail:   "newvendor@example.com", ContactPhone: "+91 9876543213",
		},
	}
}

func (f *Fixture) seedCatalog() {
	f.categories = []entity.Category{
		{
			ID: 1, Name: "Electronics", Slug: "electronics",
			Description: "Latest gadgets and electronic items",
			Image:       "/electronics-category.png",
			Featured:    true, ProductCount: 5240,
			Subcategories: []entity.Category{
				{ID: 1, Name: "Smartphones", Slug: "smartphones", ProductCount: 1250},
				{ID: 2, Name: "Laptops", Slug: "laptops", ProductCount: 980},
				{ID: 3, Name: "Audio", Slug: "audio", ProductCount: 1540},
				{ID: 4, Name: "Cameras", Slug: "cameras", ProductCount: 760},
			},
		},
		{
			ID: 2, Name: "Fashion", Slug: "fashion",
			Description: "Trendy clothing and accessories",
			Image:       "/fashion-category.png",
			Featured:    true, ProductCount: 8760,
			Subcategories: []entity.Category{
				{ID: 5, Name: "Men's Clothing", Slug: "mens-clothing", ProductCount: 2340},
				{ID: 6, Name: "Women's Clothing", Slug: "womens-clothing", ProductCount: 3120},
				{ID: 7, Name: "Footwear", Slug: "footwear", ProductCount: 1850},
				{ID: 8, Name: "Accessories", Slug: "accessories", ProductCount: 1450},
			},
		},
		{
			ID: 3, Name: "Home & Kitchen", Slug: "home-kitchen",
			Description: "Everything for your home",
			Image:       "/home-category.png",
			Featured:    false, ProductCount: 3180,
			Subcategories: []entity.Category{
				{ID: 9, Name: "Furniture", Slug: "furniture", ProductCount: 640},
				{ID: 10, Name: "Cookware", Slug: "cookware", ProductCount: 890},
			},
		},
	}

	electroHub := entity.VendorRef{ID: 1, Name: "ElectroHub"}
	fashionFiesta := entity.VendorRef{ID: 2, Name: "FashionFiesta"}
	electronics := entity.CategoryRef{ID: 1, Name: "Electronics", Slug: "electronics"}
	fashion := entity.CategoryRef{ID: 2, Name: "Fashion", Slug: "fashion"}
	smartphones := entity.CategoryRef{ID: 1, Name: "Smartphones", Slug: "smartphones"}
	laptops := entity.CategoryRef{ID: 2, Name: "Laptops", Slug: "laptops"}
	audio := entity.CategoryRef{ID: 3, Name: "Audio", Slug: "audio"}

	f.products = []entity.Product{
		{
			ID: 1, Name: "Nimbus X1 Smartphone",
			Description: "6.5 inch AMOLED display, 128GB storage and a 50MP camera.",
			Price:       15999, OriginalPrice: 18999,
			Images:   []string{"/products/nimbus-x1-front.png", "/products/nimbus-x1-back.png"},
			Category: electronics, Subcategory: &smartphones, Vendor: electroHub,
			Rating: 4.5, ReviewCount: 312, Inventory: 45,
			Specifications: []entity.Specification{
				{Name: "Display", Value: "6.5 inch AMOLED"},
				{Name: "Storage", Value: "128GB"},
				{Name: "Warranty", Value: "1 Year"},
			},
			Tags: []string{"smartphone", "bestseller"}, InStock: true,
			SKU: "PROD-1", Featured: true, CreatedAt: daysAgo(20),
		},
		{
			ID: 2, Name: "AeroBook 14 Laptop",
			Description: "Slim 14 inch laptop with 16GB RAM and all-day battery.",
			Price:       54999,
			Images:      []string{"/products/aerobook-14.png"},
			Category:    electronics, Subcategory: &laptops, Vendor: electroHub,
			Rating: 4.7, ReviewCount: 188, Inventory: 12,
			Tags: []string{"laptop", "premium"}, InStock: true,
			SKU: "PROD-2", Featured: true, CreatedAt: daysAgo(45),
		},
		{
			ID: 3, Name: "PulseBeat Wireless Earbuds",
			Description: "Active noise cancellation with 30 hour battery life.",
			Price:       2499, OriginalPrice: 3999,
			Images:   []string{"/products/pulsebeat-earbuds.png"},
			Category: electronics, Subcategory: &audio, Vendor: electroHub,
			Rating: 4.2, ReviewCount: 540, Inventory: 160,
			Tags: []string{"audio", "bestseller"}, InStock: true,
			SKU: "PROD-3", CreatedAt: daysAgo(10),
		},
		{
			ID: 4, Name: "VoltCharge 65W Adapter",
			Description: "GaN fast charger with dual USB-C ports.",
			Price:       1799,
			Images:      []string{"/products/voltcharge-65w.png"},
			Category:    electronics, Vendor: electroHub,
			Rating: 4.0, ReviewCount: 95, Inventory: 0,
			Tags: []string{"charger"}, InStock: false,
			SKU: "PROD-4", CreatedAt: daysAgo(60),
		},
		{
			ID: 5, Name: "Classic Denim Jacket",
			Description: "Stonewashed denim jacket with a relaxed fit.",
			Price:       2299, OriginalPrice: 2999,
			Images:   []string{"/products/denim-jacket.png"},
			Category: fashion, Vendor: fashionFiesta,
			Rating: 4.4, ReviewCount: 76, Inventory: 30,
			Tags: []string{"jacket", "denim"}, InStock: true,
			SKU: "PROD-5", CreatedAt: daysAgo(5),
		},
		{
			ID: 6, Name: "Trail Runner Sneakers",
			Description: "Lightweight running shoes with breathable mesh upper.",
			Price:       3499,
			Images:      []string{"/products/trail-runner.png"},
			Category:    fashion, Vendor: fashionFiesta,
			Rating: 4.6, ReviewCount: 203, Inventory: 58,
			Tags: []string{"footwear", "sports"}, InStock: true,
			SKU: "PROD-6", Featured: true, CreatedAt: daysAgo(15),
		},
	}

	f.reviews[1] = []entity.Review{
		{
			ID: 1, User: entity.UserRef{ID: 101, Name: "Rahul Nair", Username: "rahuln"},
			Rating: 5, Title: "Great phone for the price",
			Comment:  "Display is stunning and the battery easily lasts a full day.",
			Verified: true, HelpfulCount: 14, CreatedAt: daysAgo(8),
		},
		{
			ID: 2, User: entity.UserRef{ID: 102, Name: "Sneha Iyer", Username: "snehai"},
			Rating: 4, Title: "Solid, camera could be better",
			Comment:  "Performance is smooth. Low-light photos are average.",
			Verified: true, HelpfulCount: 6, CreatedAt: daysAgo(4),
		},
	}
	f.reviews[3] = []entity.Review{
		{
			ID: 3, User: entity.UserRef{ID: 103, Name: "Arjun Patel", Username: "arjunp"},
			Rating: 4, Title: "Good value earbuds",
			Comment:  "ANC works well indoors. Case feels a bit plasticky.",
			Verified: false, HelpfulCount: 9, CreatedAt: daysAgo(12),
		},
	}
}

// seedShopping gives the seeded customer a cart, wishlist and order
// history so the signed-in pages render non-empty out of the box.
func (f *Fixture) seedShopping() {
	nimbus := entity.ProductCard{
		ID: 1, Name: "Nimbus X1 Smartphone", Image: "/products/nimbus-x1-front.png",
		Price: 15999, OriginalPrice: 18999, Rating: 4.5,
		Vendor: entity.VendorRef{ID: 1, Name: "ElectroHub"},
	}
	earbuds := entity.ProductCard{
		ID: 3, Name: "PulseBeat Wireless Earbuds", Image: "/products/pulsebeat-earbuds.png",
		Price: 2499, OriginalPrice: 3999, Rating: 4.2,
		Vendor: entity.VendorRef{ID: 1, Name: "ElectroHub"},
	}
	sneakers := entity.ProductCard{
		ID: 6, Name: "Trail Runner Sneakers", Image: "/products/trail-runner.png",
		Price: 3499, Rating: 4.6,
		Vendor: entity.VendorRef{ID: 2, Name: "FashionFiesta"},
	}

	cart := &entity.Cart{
		ID: 1, UserID: 1,
		Items: []entity.CartItem{
			{ID: 1, Product: nimbus, Quantity: 1, Price: 15999},
			{ID: 2, Product: earbuds, Quantity: 2, Price: 2499},
		},
	}
	recalculate(cart)
	f.carts[1] = cart

	f.wishlists[1] = []entity.WishlistItem{
		{ID: 1, ProductID: 6, Product: sneakers, AddedAt: daysAgo(6)},
	}

	f.orders[1] = []entity.Order{
		{
			ID: 1, OrderNumber: "ORD-10001", UserID: 1, Status: entity.OrderDelivered,
			Items: []entity.OrderItem{
				{
					ID: 1, ProductID: 3, ProductName: "PulseBeat Wireless Earbuds",
					ProductImage: "/products/pulsebeat-earbuds.png",
					Quantity:     1, Price: 2499, VendorID: 1, VendorName: "ElectroHub",
				},
			},
			Subtotal: 2499, Tax: 450, Shipping: 100, Total: 3049,
			ShippingAddress: f.users[0].Address, CreatedAt: daysAgo(25),
		},
		{
			ID: 2, OrderNumber: "ORD-10002", UserID: 1, Status: entity.OrderProcessing,
			Items: []entity.OrderItem{
				{
					ID: 2, ProductID: 5, ProductName: "Classic Denim Jacket",
					ProductImage: "/products/denim-jacket.png",
					Quantity:     1, Price: 2299, VendorID: 2, VendorName: "FashionFiesta",
				},
			},
			Subtotal: 2299, Tax: 414, Shipping: 100, Total: 2813,
			ShippingAddress: f.users[0].Address, CreatedAt: daysAgo(2),
		},
	}
}

// recalculate rederives the cart totals from its lines. GST at 18 percent,
// flat shipping of 100 waived above 5000, matching the backend's rules.
func recalculate(cart *entity.Cart) {
	cart.TotalItems = 0
	cart.Subtotal = 0
	for _, item := range cart.Items {
		cart.TotalItems += item.Quantity
		cart.Subtotal += item.Price * float64(item.Quantity)
	}
	cart.Tax = float64(int(cart.Subtotal * 0.18))
	if cart.Subtotal > 0 && cart.Subtotal < 5000 {
		cart.Shipping = 100
	} else {
		cart.Shipping = 0
	}
	cart.Total = cart.Subtotal + cart.Tax + cart.Shipping - cart.CouponDiscount
	cart.UpdatedAt = daysAgo(0)
}

func orderNumber(id int64) string {
	return fmt.Sprintf("ORD-%05d", 10000+id)
}
