// Package entity contains the core business objects of the project.
package entity

// Role represents the marketplace role attached to a user account.
type Role string

const (
	// RoleCustomer indicates a regular shopper account.
	RoleCustomer Role = "CUSTOMER"
	// RoleVendor indicates a seller account with a store profile.
	RoleVendor Role = "VENDOR"
	// RoleAdmin indicates a marketplace administrator account.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

// DashboardPath returns the landing page a user of this role is sent to
// when they try to browse outside their own section.
func (r Role) DashboardPath() string {
	switch r {
	case RoleVendor:
		return "/vendor/dashboard"
	case RoleAdmin:
		return "/admin/dashboard"
	default:
		return "/"
	}
}
