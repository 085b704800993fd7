package entity

import "time"

// ApprovalStatus is the vendor lifecycle state gating product management.
type ApprovalStatus string

const (
	// ApprovalPending means the application is awaiting admin review.
	ApprovalPending ApprovalStatus = "PENDING"
	// ApprovalApproved means the vendor may manage products.
	ApprovalApproved ApprovalStatus = "APPROVED"
	// ApprovalRejected means the application was declined with a reason.
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// IsValid checks if the ApprovalStatus is a valid value.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	default:
		return false
	}
}

// VendorProfile is the store record attached to a VENDOR account.
// Owned by the backend; fetched read-mostly by the vendor dashboard.
type VendorProfile struct {
	ID               int64          `json:"id"`
	UserID           int64          `json:"userId"`
	StoreName        string         `json:"storeName"`
	StoreDescription string         `json:"storeDescription"`
	StoreAddress     Address        `json:"storeAddress"`
	ApprovalStatus   ApprovalStatus `json:"approvalStatus"`
	RejectionReason  string         `json:"rejectionReason,omitempty"`
	Rating           float64        `json:"rating"`
	ProductCount     int            `json:"productCount"`
	Specialty        string         `json:"specialty"`
	JoinedDate       time.Time      `json:"joinedDate"`
	ContactEmail     string         `json:"contactEmail"`
	ContactPhone     string         `json:"contactPhone"`
}

// CanManageProducts reports whether the product-management surface is
// enabled for this vendor. Only approved vendors may mutate their catalog.
func (v *VendorProfile) CanManageProducts() bool {
	return v.ApprovalStatus == ApprovalApproved
}

// ProductSummary is the condensed product row shown on the vendor dashboard.
type ProductSummary struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Price     float64      `json:"price"`
	Inventory int          `json:"inventory"`
	Category  CategoryRef  `json:"category"`
	CreatedAt time.Time    `json:"createdAt"`
}

// OrderSummary is the condensed order row shown on the vendor dashboard.
type OrderSummary struct {
	ID          int64     `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	Status      string    `json:"status"`
	Total       float64   `json:"total"`
	ItemCount   int       `json:"itemCount"`
}

// VendorDashboard is the aggregate the vendor dashboard page renders.
type VendorDashboard struct {
	VendorProfile        VendorProfile    `json:"vendorProfile"`
	ProductCount         int              `json:"productCount"`
	RecentProducts       []ProductSummary `json:"recentProducts"`
	OrderCount           int              `json:"orderCount"`
	RecentOrders         []OrderSummary   `json:"recentOrders"`
	TotalRevenue         float64          `json:"totalRevenue"`
	MonthlyRevenue       float64          `json:"monthlyRevenue"`
	PreviousMonthRevenue float64          `json:"previousMonthRevenue"`
}
